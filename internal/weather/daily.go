package weather

import (
	"fmt"
	"time"

	"github.com/i474232898/weather-forecast-service/internal/common"
)

const (
	// forecastDays caps the daily summary at the provider's 5-day window.
	forecastDays = 5

	// defaultIcon is used when a day bucket somehow collected no icons.
	defaultIcon = "01d"

	dayKeyLayout = "2006-01-02"
	noonSlot     = "12:00:00"
)

// dayBucket accumulates one calendar day's samples. Icons keep insertion
// order except that a noon-slot icon is forced to the front, so it always
// wins as the day's representative.
type dayBucket struct {
	temps []float64
	icons []string
}

// AggregateDaily groups 3-hour forecast samples into calendar-day buckets
// and emits up to 5 daily summaries in chronological order. The bucket for
// now's calendar date is excluded: it only covers the remainder of the
// current day. now is an explicit parameter so the result is deterministic
// under test.
func AggregateDaily(p *ForecastPayload, now time.Time) ([]DailySummary, error) {
	if p.List == nil {
		return nil, fmt.Errorf("%w: forecast payload has no list", ErrMalformedData)
	}

	// Group by local calendar date, tracking first-seen order explicitly;
	// the provider lists samples chronologically, so first-seen order is
	// chronological order.
	buckets := make(map[string]*dayBucket)
	var order []string

	for _, s := range p.List {
		if len(s.Weather) == 0 {
			return nil, fmt.Errorf("%w: forecast sample at %d has no weather block", ErrMalformedData, s.Dt)
		}

		key := time.Unix(s.Dt, 0).Format(dayKeyLayout)
		b, ok := buckets[key]
		if !ok {
			b = &dayBucket{}
			buckets[key] = b
			order = append(order, key)
		}

		b.temps = append(b.temps, s.Main.Temp)

		icon := s.Weather[0].Icon
		if common.HasAny(s.DtTxt, noonSlot) {
			b.icons = append([]string{icon}, b.icons...)
		} else {
			b.icons = append(b.icons, icon)
		}
	}

	today := now.Format(dayKeyLayout)
	out := make([]DailySummary, 0, forecastDays)

	for _, key := range order {
		if len(out) >= forecastDays {
			break
		}

		b := buckets[key]
		if len(b.temps) == 0 {
			continue
		}
		if key == today {
			continue
		}

		date, err := time.ParseInLocation(dayKeyLayout, key, time.Local)
		if err != nil {
			return nil, fmt.Errorf("%w: bad day key %q", ErrMalformedData, key)
		}

		maxTemp, minTemp := b.temps[0], b.temps[0]
		for _, t := range b.temps[1:] {
			if t > maxTemp {
				maxTemp = t
			}
			if t < minTemp {
				minTemp = t
			}
		}

		icon := defaultIcon
		if len(b.icons) > 0 {
			icon = b.icons[0]
		}

		out = append(out, DailySummary{
			Day:     date.Weekday().String(),
			TempMax: roundInt(maxTemp),
			TempMin: roundInt(minTemp),
			Icon:    icon,
		})
	}

	return out, nil
}
