package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/i474232898/weather-forecast-service/internal/status"
	"github.com/i474232898/weather-forecast-service/internal/weather"
)

// CurrentFetcher is the slice of the provider client the probe needs.
type CurrentFetcher interface {
	FetchCurrent(ctx context.Context, lat, lon float64) (*weather.CurrentPayload, error)
}

// Scheduler periodically probes provider reachability and records the
// outcome for the health endpoint.
type Scheduler struct {
	scheduler *gocron.Scheduler
	fetcher   CurrentFetcher
	recorder  *status.Recorder
	lat, lon  float64
	interval  time.Duration
}

// New creates a Scheduler probing the given reference coordinates.
func New(fetcher CurrentFetcher, recorder *status.Recorder, lat, lon float64, interval time.Duration) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	return &Scheduler{
		scheduler: s,
		fetcher:   fetcher,
		recorder:  recorder,
		lat:       lat,
		lon:       lon,
		interval:  interval,
	}
}

// Start schedules the periodic probe and starts the underlying scheduler.
// The first probe runs immediately so the health endpoint has data soon
// after startup.
func (s *Scheduler) Start() error {
	minutes := int(s.interval.Minutes())
	if minutes <= 0 {
		minutes = 15
	}

	_, err := s.scheduler.Every(minutes).Minutes().StartImmediately().Do(s.probeOnce)
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future probes.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}

func (s *Scheduler) probeOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	_, err := s.fetcher.FetchCurrent(ctx, s.lat, s.lon)
	s.recorder.Record(err)

	if err != nil {
		log.Printf("scheduler: provider probe failed: %v", err)
	}
}
