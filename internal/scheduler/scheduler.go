// Package scheduler runs the recurring background jobs, currently just the
// weekly guardian report.
package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-co-op/gocron"
)

// Reporter is the weekly-report entry point the scheduler drives.
type Reporter interface {
	SendWeeklyReports(ctx context.Context) error
}

// Scheduler owns the gocron instance and the jobs registered on it.
type Scheduler struct {
	scheduler *gocron.Scheduler
	reporter  Reporter
}

func New(reporter Reporter) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.Local),
		reporter:  reporter,
	}
}

// Start registers the weekly report job and launches the scheduler in the
// background.
func (s *Scheduler) Start(weekday time.Weekday, hour int) error {
	at := fmt.Sprintf("%02d:00", hour)
	_, err := s.scheduler.Every(1).Week().Weekday(weekday).At(at).Do(s.runWeeklyReports)
	if err != nil {
		return fmt.Errorf("scheduling weekly report: %w", err)
	}

	s.scheduler.StartAsync()
	log.Printf("Scheduler started: weekly report every %s at %s", weekday, at)
	return nil
}

// Stop halts the scheduler and waits for a running job to finish.
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

func (s *Scheduler) runWeeklyReports() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := s.reporter.SendWeeklyReports(ctx); err != nil {
		log.Printf("Weekly report job finished with errors: %v", err)
	}
}
