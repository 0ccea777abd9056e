package weather

import (
	"fmt"
	"math"
	"time"
)

const (
	// hourlyEntries covers the next ~24 hours of 3-hour samples.
	hourlyEntries = 8

	clockLayout = "15:04"
)

// FormatCurrent projects a raw current-weather payload into a CurrentView.
// Wind speed is converted from m/s to km/h and rounded to one decimal;
// sunrise and sunset become local "HH:MM" strings.
func FormatCurrent(p *CurrentPayload) (*CurrentView, error) {
	if len(p.Weather) == 0 {
		return nil, fmt.Errorf("%w: current payload has no weather block", ErrMalformedData)
	}

	return &CurrentView{
		LocationName: p.Name + ", " + p.Sys.Country,
		Temperature:  roundInt(p.Main.Temp),
		FeelsLike:    roundInt(p.Main.FeelsLike),
		Description:  p.Weather[0].Description,
		Icon:         p.Weather[0].Icon,
		Humidity:     p.Main.Humidity,
		WindSpeed:    math.Round(p.Wind.Speed*3.6*10) / 10,
		Sunrise:      time.Unix(p.Sys.Sunrise, 0).Format(clockLayout),
		Sunset:       time.Unix(p.Sys.Sunset, 0).Format(clockLayout),
	}, nil
}

// FormatHourly projects the first 8 forecast samples, in payload order,
// into HourlyView entries. Any sample missing its weather block fails the
// whole call; there is no partial output.
func FormatHourly(p *ForecastPayload) ([]HourlyView, error) {
	if p.List == nil {
		return nil, fmt.Errorf("%w: forecast payload has no list", ErrMalformedData)
	}

	n := len(p.List)
	if n > hourlyEntries {
		n = hourlyEntries
	}

	out := make([]HourlyView, 0, n)
	for _, s := range p.List[:n] {
		if len(s.Weather) == 0 {
			return nil, fmt.Errorf("%w: forecast sample at %d has no weather block", ErrMalformedData, s.Dt)
		}
		out = append(out, HourlyView{
			Time:        time.Unix(s.Dt, 0).Format(clockLayout),
			Temperature: roundInt(s.Main.Temp),
			Icon:        s.Weather[0].Icon,
		})
	}
	return out, nil
}

func roundInt(v float64) int {
	return int(math.Round(v))
}
