package httpapi

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/weather-forecast-service/internal/status"
	"github.com/i474232898/weather-forecast-service/internal/weather"
)

var validate = validator.New()

// ProviderClient is the slice of the provider client the handlers need.
type ProviderClient interface {
	FetchCurrent(ctx context.Context, lat, lon float64) (*weather.CurrentPayload, error)
	FetchForecast(ctx context.Context, lat, lon float64) (*weather.ForecastPayload, error)
}

// API holds the dependencies shared by all handlers.
type API struct {
	client  ProviderClient
	status  *status.Recorder
	timeout time.Duration

	// now supplies the reference time for excluding the current day from
	// the daily forecast; overridable in tests.
	now func() time.Time
}

// New creates the handler set.
func New(client ProviderClient, recorder *status.Recorder, timeout time.Duration) *API {
	return &API{
		client:  client,
		status:  recorder,
		timeout: timeout,
		now:     time.Now,
	}
}

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, api *API) {
	app.Get("/health", api.getHealth)

	grp := app.Group("/api")
	grp.Get("/weather", api.getCurrent)
	grp.Get("/hourly_forecast", api.getHourly)
	grp.Get("/daily_forecast", api.getDaily)
}

// ErrorHandler maps the error taxonomy to HTTP statuses and renders the
// JSON error body. Server-side failures carry the upstream cause in the
// detail string.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, weather.ErrInvalidRequest):
		code = fiber.StatusBadRequest
	case errors.Is(err, weather.ErrProviderTimeout):
		code = fiber.StatusGatewayTimeout
	case errors.Is(err, weather.ErrProviderUnavailable):
		code = fiber.StatusBadGateway
	case errors.Is(err, weather.ErrMalformedData):
		code = fiber.StatusInternalServerError
	default:
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
		}
	}

	detail := err.Error()
	if code >= fiber.StatusInternalServerError || code == fiber.StatusBadGateway {
		detail = "Error fetching data: " + err.Error()
	}

	return c.Status(code).JSON(fiber.Map{"detail": detail})
}

func (a *API) getCurrent(c *fiber.Ctx) error {
	lat, lon, err := parseCoords(c)
	if err != nil {
		return err
	}

	ctx, cancel := a.requestContext(c)
	defer cancel()

	payload, err := a.client.FetchCurrent(ctx, lat, lon)
	if err != nil {
		return err
	}

	view, err := weather.FormatCurrent(payload)
	if err != nil {
		return err
	}
	return c.JSON(view)
}

func (a *API) getHourly(c *fiber.Ctx) error {
	lat, lon, err := parseCoords(c)
	if err != nil {
		return err
	}

	ctx, cancel := a.requestContext(c)
	defer cancel()

	payload, err := a.client.FetchForecast(ctx, lat, lon)
	if err != nil {
		return err
	}

	views, err := weather.FormatHourly(payload)
	if err != nil {
		return err
	}
	return c.JSON(views)
}

func (a *API) getDaily(c *fiber.Ctx) error {
	lat, lon, err := parseCoords(c)
	if err != nil {
		return err
	}

	ctx, cancel := a.requestContext(c)
	defer cancel()

	payload, err := a.client.FetchForecast(ctx, lat, lon)
	if err != nil {
		return err
	}

	views, err := weather.AggregateDaily(payload, a.now())
	if err != nil {
		return err
	}
	return c.JSON(views)
}

func (a *API) getHealth(c *fiber.Ctx) error {
	st, ok := a.status.Latest()
	if !ok {
		return c.JSON(fiber.Map{"status": "starting"})
	}

	s := "ok"
	if !st.Healthy {
		s = "degraded"
	}
	return c.JSON(fiber.Map{
		"status":   s,
		"provider": st,
	})
}

func (a *API) requestContext(c *fiber.Ctx) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.UserContext(), a.timeout)
}

// coordsQuery holds the raw coordinate query parameters. They are
// validated as strings so that 0 stays a legal coordinate.
type coordsQuery struct {
	Lat string `validate:"required,numeric"`
	Lon string `validate:"required,numeric"`
}

func parseCoords(c *fiber.Ctx) (float64, float64, error) {
	q := coordsQuery{
		Lat: c.Query("lat"),
		Lon: c.Query("lon"),
	}
	if err := validate.Struct(q); err != nil {
		return 0, 0, fmt.Errorf("%w: lat and lon must be numeric query parameters", weather.ErrInvalidRequest)
	}

	lat, err := strconv.ParseFloat(q.Lat, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: invalid lat", weather.ErrInvalidRequest)
	}
	lon, err := strconv.ParseFloat(q.Lon, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: invalid lon", weather.ErrInvalidRequest)
	}
	return lat, lon, nil
}
