// Package scheduler loads the trial dataset into the data container at
// startup and, when a reload schedule is configured, refreshes it with gocron.
package scheduler

import (
	"fmt"
	"time"

	"github.com/giygas/clinicaltrials-api/interfaces"
	"github.com/giygas/clinicaltrials-api/logging"
	"github.com/giygas/clinicaltrials-api/metrics"
	"github.com/giygas/clinicaltrials-api/trials"
	"github.com/go-co-op/gocron"
)

// Compile-time check to ensure Scheduler implements Scheduler interface
var _ interfaces.Scheduler = (*Scheduler)(nil)

// Scheduler builds dataset snapshots using dependency injection
type Scheduler struct {
	dataStore interfaces.DataStore
	loader    interfaces.Loader
	validator interfaces.DataValidator
	schedule  string
	scheduler *gocron.Scheduler
}

// NewScheduler creates a new scheduler. An empty schedule loads the dataset once.
func NewScheduler(dataStore interfaces.DataStore, loader interfaces.Loader, validator interfaces.DataValidator, schedule string) *Scheduler {
	return &Scheduler{
		dataStore: dataStore,
		loader:    loader,
		validator: validator,
		schedule:  schedule,
		scheduler: gocron.NewScheduler(time.Local),
	}
}

// Start performs the initial load and schedules reloads.
// A failed initial load leaves the empty snapshot in place and is not an error.
func (s *Scheduler) Start() error {
	if err := s.updateData(); err != nil {
		logging.Error("Initial dataset load failed, serving an empty dataset", "path", s.loader.Path(), "error", err)
	}

	if s.schedule == "" {
		return nil
	}

	_, err := s.scheduler.Cron(s.schedule).SingletonMode().Do(func() {
		if err := s.updateData(); err != nil {
			logging.Error("Dataset reload failed, keeping previous snapshot", "path", s.loader.Path(), "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule dataset reloads: %w", err)
	}

	s.scheduler.StartAsync()
	logging.Info("Dataset reloads scheduled", "schedule", s.schedule)

	return nil
}

// Stop stops the scheduler
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

// Reload loads the dataset now, outside of the schedule
func (s *Scheduler) Reload() error {
	return s.updateData()
}

// updateData loads, enriches and publishes a new snapshot
func (s *Scheduler) updateData() error {
	// Prevent concurrent updates
	if !s.dataStore.BeginUpdate() {
		logging.Info("Update already in progress, skipping...")
		return nil
	}
	defer s.dataStore.EndUpdate()

	start := time.Now()
	logging.Info("Loading dataset", "path", s.loader.Path())

	records, err := s.loader.Load()
	if err != nil {
		metrics.DatasetLoadsTotal.WithLabelValues("error").Inc()
		return fmt.Errorf("failed to load dataset: %w", err)
	}

	enriched := trials.Preprocess(records)

	report := s.validator.ReportDataQuality(enriched)
	logReport(report)

	s.dataStore.UpdateData(enriched, report)

	metrics.DatasetLoadsTotal.WithLabelValues("success").Inc()
	metrics.DatasetLastLoadTimestamp.SetToCurrentTime()
	metrics.RecordDatasetReport(report)

	logging.Info("Dataset load completed", "duration", time.Since(start).String(), "trial_count", len(enriched))

	return nil
}

func logReport(report *interfaces.DataQualityReport) {
	if report.TrialsWithoutTitle > 0 {
		logging.Warn("Trials without title",
			"count", report.TrialsWithoutTitle,
			"indexes", report.TrialsWithoutTitleIndexes,
		)
	}

	logging.Debug("Dataset quality",
		"total", report.TotalTrials,
		"without_conditions", report.TrialsWithoutConditions,
		"without_intervention", report.TrialsWithoutIntervention,
		"canonical_nsclc", report.CanonicalNSCLCTrials,
	)
}
