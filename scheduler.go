package main

import (
	"context"
	"sync"
	"time"

	"github.com/dkrzeminski/routecast/internal/database"
)

// Scheduler periodically refreshes cached weather conditions for every
// location known to the database, so repeat route queries through popular
// endpoints get warm cache hits.
type Scheduler struct {
	cfg         *apiConfig
	refreshChan <-chan time.Time
	stop        chan struct{}
	ticker      *time.Ticker
	refreshJob  func()
	loop        sync.WaitGroup
}

func NewScheduler(cfg *apiConfig, refreshInterval time.Duration) *Scheduler {
	ticker := time.NewTicker(refreshInterval)
	s := &Scheduler{
		cfg:         cfg,
		refreshChan: ticker.C,
		stop:        make(chan struct{}),
		ticker:      ticker,
	}
	s.refreshJob = s.runWeatherRefreshJobs
	return s
}

func (s *Scheduler) Start() {
	s.loop.Add(1)
	go func() {
		defer s.loop.Done()
		for {
			select {
			case <-s.refreshChan:
				s.cfg.logger.Info("scheduler: running weather refresh jobs")
				s.refreshJob()
			case <-s.stop:
				s.cfg.logger.Info("scheduler: stopping")
				s.ticker.Stop()
				return
			}
		}
	}()
}

// Stop signals the ticker loop to exit and blocks until a refresh cycle
// that is already running has finished. Refresh jobs run synchronously
// inside the loop, so waiting for the loop waits for the jobs.
func (s *Scheduler) Stop() {
	close(s.stop)
	s.loop.Wait()
}

// runWeatherRefreshJobs refreshes cached conditions for all known locations
// concurrently and waits for the whole cycle to complete.
func (s *Scheduler) runWeatherRefreshJobs() {
	ctx := context.Background()
	locations, err := s.cfg.dbQueries.ListLocations(ctx)
	if err != nil {
		s.cfg.logger.Error("scheduler: failed to get locations", "error", err)
		return
	}

	var wg sync.WaitGroup
	for _, dbLocation := range locations {
		wg.Add(1)
		go func(loc database.Location) {
			defer wg.Done()
			location := databaseLocationToLocation(loc)
			coord := Coordinate{Latitude: location.Latitude, Longitude: location.Longitude}
			if err := s.cfg.refreshConditions(ctx, coord); err != nil {
				s.cfg.logger.Warn("scheduler: failed to refresh conditions", "place", location.PlaceName, "error", err)
				return
			}
			s.cfg.logger.Debug("scheduler: refreshed conditions", "place", location.PlaceName)
		}(dbLocation)
	}
	wg.Wait()
	s.cfg.logger.Info("scheduler: all jobs for this cycle completed")
}
