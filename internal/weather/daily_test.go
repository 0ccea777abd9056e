package weather

import (
	"errors"
	"testing"
	"time"
)

// sampleAt builds a 3-hour forecast sample at the given local time.
func sampleAt(ts time.Time, temp float64, icon string) ForecastSample {
	var s ForecastSample
	s.Dt = ts.Unix()
	s.Main.Temp = temp
	s.Weather = []WeatherBlock{{Description: "test", Icon: icon}}
	s.DtTxt = ts.Format("2006-01-02 15:04:05")
	return s
}

func localDate(year int, month time.Month, day, hour int) time.Time {
	return time.Date(year, month, day, hour, 0, 0, 0, time.Local)
}

func TestAggregateDailyExcludesCurrentDate(t *testing.T) {
	now := localDate(2026, time.August, 30, 9) // Sunday

	payload := &ForecastPayload{List: []ForecastSample{
		sampleAt(localDate(2026, time.August, 30, 15), 14.0, "03d"),
		sampleAt(localDate(2026, time.August, 31, 9), 18.0, "04d"),
		sampleAt(localDate(2026, time.September, 1, 9), 19.0, "04d"),
	}}

	got, err := AggregateDaily(payload, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	if got[0].Day != "Monday" || got[1].Day != "Tuesday" {
		t.Fatalf("expected Monday, Tuesday; got %s, %s", got[0].Day, got[1].Day)
	}
}

func TestAggregateDailyCapsAtFiveDays(t *testing.T) {
	now := localDate(2026, time.August, 30, 9)

	var list []ForecastSample
	for d := 0; d < 7; d++ {
		list = append(list, sampleAt(localDate(2026, time.August, 30+d, 12), 20.0, "01d"))
	}

	got, err := AggregateDaily(&ForecastPayload{List: list}, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 5 {
		t.Fatalf("expected 5 entries, got %d", len(got))
	}

	// Entries are chronological and distinct by day.
	want := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}
	for i, w := range want {
		if got[i].Day != w {
			t.Fatalf("entry %d: expected %s, got %s", i, w, got[i].Day)
		}
	}
}

func TestAggregateDailyRoundsToNearestInteger(t *testing.T) {
	now := localDate(2026, time.August, 30, 9)

	payload := &ForecastPayload{List: []ForecastSample{
		sampleAt(localDate(2026, time.August, 31, 9), 2.3, "02d"),
		sampleAt(localDate(2026, time.August, 31, 15), 5.1, "02d"),
		sampleAt(localDate(2026, time.August, 31, 18), -1.0, "02d"),
	}}

	got, err := AggregateDaily(payload, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(got))
	}
	if got[0].TempMax != 5 || got[0].TempMin != -1 {
		t.Fatalf("expected max 5, min -1; got max %d, min %d", got[0].TempMax, got[0].TempMin)
	}
}

func TestAggregateDailyNoonIconWins(t *testing.T) {
	now := localDate(2026, time.August, 30, 9)
	day := localDate(2026, time.August, 31, 0)

	// Noon sample last, then first; the noon icon must win either way.
	orders := map[string][]ForecastSample{
		"noon last": {
			sampleAt(day.Add(9*time.Hour), 18.0, "04d"),
			sampleAt(day.Add(15*time.Hour), 19.0, "04d"),
			sampleAt(day.Add(12*time.Hour), 21.0, "01d"),
		},
		"noon first": {
			sampleAt(day.Add(12*time.Hour), 21.0, "01d"),
			sampleAt(day.Add(15*time.Hour), 19.0, "04d"),
		},
	}

	for name, list := range orders {
		got, err := AggregateDaily(&ForecastPayload{List: list}, now)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", name, err)
		}
		if len(got) != 1 {
			t.Fatalf("%s: expected 1 entry, got %d", name, len(got))
		}
		if got[0].Icon != "01d" {
			t.Fatalf("%s: expected icon 01d, got %s", name, got[0].Icon)
		}
	}
}

func TestAggregateDailyMissingList(t *testing.T) {
	_, err := AggregateDaily(&ForecastPayload{}, time.Now())
	if !errors.Is(err, ErrMalformedData) {
		t.Fatalf("expected ErrMalformedData, got %v", err)
	}
}

func TestAggregateDailyEmptyListSucceedsEmpty(t *testing.T) {
	got, err := AggregateDaily(&ForecastPayload{List: []ForecastSample{}}, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no entries, got %d", len(got))
	}
}

func TestAggregateDailyMissingWeatherBlock(t *testing.T) {
	s := sampleAt(localDate(2026, time.August, 31, 9), 18.0, "04d")
	s.Weather = nil

	_, err := AggregateDaily(&ForecastPayload{List: []ForecastSample{s}}, time.Now())
	if !errors.Is(err, ErrMalformedData) {
		t.Fatalf("expected ErrMalformedData, got %v", err)
	}
}

func TestAggregateDailyOnlyCurrentDate(t *testing.T) {
	now := localDate(2026, time.August, 30, 9)

	payload := &ForecastPayload{List: []ForecastSample{
		sampleAt(localDate(2026, time.August, 30, 12), 20.0, "01d"),
		sampleAt(localDate(2026, time.August, 30, 15), 22.0, "01d"),
	}}

	got, err := AggregateDaily(payload, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no entries for a today-only payload, got %d", len(got))
	}
}
