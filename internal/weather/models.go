package weather

// WeatherBlock is the provider's per-observation condition descriptor.
type WeatherBlock struct {
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// CurrentPayload mirrors the fields we consume from the provider's
// current-weather response.
type CurrentPayload struct {
	Name string `json:"name"`
	Sys  struct {
		Country string `json:"country"`
		Sunrise int64  `json:"sunrise"`
		Sunset  int64  `json:"sunset"`
	} `json:"sys"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Weather []WeatherBlock `json:"weather"`
}

// ForecastSample is one provider-reported 3-hour forecast observation.
// DtTxt is the provider's textual timestamp, used only to detect the
// noon slot when picking a representative daily icon.
type ForecastSample struct {
	Dt   int64 `json:"dt"`
	Main struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
	Weather []WeatherBlock `json:"weather"`
	DtTxt   string         `json:"dt_txt"`
}

// ForecastPayload mirrors the provider's 5-day/3-hour forecast response.
// List stays nil when the provider omits the field, which is how a
// malformed payload is told apart from a present-but-empty one.
type ForecastPayload struct {
	List []ForecastSample `json:"list"`
}

// CurrentView is the simplified current-conditions model served to clients.
type CurrentView struct {
	LocationName string  `json:"locationName"`
	Temperature  int     `json:"temperature"`
	FeelsLike    int     `json:"feelsLike"`
	Description  string  `json:"description"`
	Icon         string  `json:"icon"`
	Humidity     int     `json:"humidity"`
	WindSpeed    float64 `json:"windSpeed"`
	Sunrise      string  `json:"sunrise"`
	Sunset       string  `json:"sunset"`
}

// HourlyView is one entry of the 24-hour forecast strip.
type HourlyView struct {
	Time        string `json:"time"`
	Temperature int    `json:"temperature"`
	Icon        string `json:"icon"`
}

// DailySummary is one aggregated day of the 5-day forecast.
type DailySummary struct {
	Day     string `json:"day"`
	TempMax int    `json:"temp_max"`
	TempMin int    `json:"temp_min"`
	Icon    string `json:"icon"`
}
