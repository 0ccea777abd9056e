package openweather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sony/gobreaker"

	"github.com/i474232898/weather-forecast-service/internal/weather"
)

const (
	defaultBaseURL = "https://api.openweathermap.org/data/2.5"

	currentPath  = "/weather"
	forecastPath = "/forecast"
)

// Client talks to the OpenWeatherMap current-weather and 5-day/3-hour
// forecast resources. Outbound calls pass through a circuit breaker; an
// open breaker surfaces as weather.ErrProviderUnavailable.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	circuit    *gobreaker.CircuitBreaker
}

// NewClient creates a Client against the production OpenWeatherMap API.
func NewClient(httpClient *http.Client, apiKey string) *Client {
	return NewClientWithBaseURL(httpClient, apiKey, defaultBaseURL)
}

// NewClientWithBaseURL creates a Client against a custom base URL,
// primarily for tests against a stub server.
func NewClientWithBaseURL(httpClient *http.Client, apiKey, baseURL string) *Client {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "openweather",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &Client{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: httpClient,
		circuit:    cb,
	}
}

// FetchCurrent retrieves the raw current-weather payload for the given
// coordinates, in metric units.
func (c *Client) FetchCurrent(ctx context.Context, lat, lon float64) (*weather.CurrentPayload, error) {
	var payload weather.CurrentPayload
	if err := c.get(ctx, currentPath, lat, lon, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// FetchForecast retrieves the raw 5-day/3-hour forecast payload for the
// given coordinates, in metric units.
func (c *Client) FetchForecast(ctx context.Context, lat, lon float64) (*weather.ForecastPayload, error) {
	var payload weather.ForecastPayload
	if err := c.get(ctx, forecastPath, lat, lon, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func (c *Client) get(ctx context.Context, path string, lat, lon float64, out interface{}) error {
	if c.apiKey == "" {
		return fmt.Errorf("%w: api key is not configured", weather.ErrProviderUnavailable)
	}

	values := url.Values{}
	values.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	values.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	values.Set("appid", c.apiKey)
	values.Set("units", "metric")

	u := fmt.Sprintf("%s%s?%s", c.baseURL, path, values.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", weather.ErrProviderUnavailable, err)
	}

	result, err := c.circuit.Execute(func() (interface{}, error) {
		resp, execErr := c.httpClient.Do(req)
		if execErr != nil {
			return nil, execErr
		}
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			resp.Body.Close()
			return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
		}
		return resp, nil
	})
	if err != nil {
		if isTimeout(err) {
			return fmt.Errorf("%w: %v", weather.ErrProviderTimeout, err)
		}
		return fmt.Errorf("%w: %v", weather.ErrProviderUnavailable, err)
	}

	resp, ok := result.(*http.Response)
	if !ok {
		return fmt.Errorf("%w: unexpected result type from circuit breaker", weather.ErrProviderUnavailable)
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", weather.ErrMalformedData, err)
	}
	return nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
