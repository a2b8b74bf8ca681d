// Package scheduler runs the periodic quote refresh and alert evaluation
// cycle on a cron schedule.
package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/maouM-cmd/portfolio-dashboard/internal/service"
)

// Scheduler owns the cron runner for background evaluation cycles.
type Scheduler struct {
	cron         *cron.Cron
	alertService *service.AlertService
}

// New creates a Scheduler that evaluates alerts on the given cron spec.
// Specs use the robfig/cron format, including descriptors like "@every 5m".
// An empty spec disables scheduling; Start and Stop become no-ops.
func New(spec string, alertService *service.AlertService) (*Scheduler, error) {
	s := &Scheduler{alertService: alertService}

	if spec == "" {
		return s, nil
	}

	s.cron = cron.New()
	if _, err := s.cron.AddFunc(spec, s.evaluate); err != nil {
		return nil, err
	}

	return s, nil
}

// Start begins the background schedule.
func (s *Scheduler) Start() {
	if s.cron == nil {
		return
	}
	s.cron.Start()
}

// Stop halts the schedule and waits for a running cycle to finish.
func (s *Scheduler) Stop() {
	if s.cron == nil {
		return
	}
	<-s.cron.Stop().Done()
}

// evaluate runs one alert evaluation pass. Each pass fetches fresh quotes
// for every symbol with an active alert, so this doubles as the periodic
// quote refresh that keeps the adapter's cache warm.
func (s *Scheduler) evaluate() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	triggered, err := s.alertService.EvaluateNow(ctx)
	if err != nil {
		log.Printf("scheduled alert evaluation failed: %v", err)
		return
	}

	for _, t := range triggered {
		log.Printf("alert triggered: %s %s %.2f (current %.2f)",
			t.Symbol, t.Condition, t.TargetPrice, t.CurrentPrice)
	}
}
