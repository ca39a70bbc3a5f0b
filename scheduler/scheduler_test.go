package scheduler

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/giygas/clinicaltrials-api/data"
	"github.com/giygas/clinicaltrials-api/logging"
	"github.com/giygas/clinicaltrials-api/trials"
	"github.com/giygas/clinicaltrials-api/validation"
)

// MockLoader implements interfaces.Loader for testing
type MockLoader struct {
	records []trials.RawRecord
	err     error
	calls   atomic.Int32
}

func (m *MockLoader) Load() ([]trials.RawRecord, error) {
	m.calls.Add(1)
	if m.err != nil {
		return nil, m.err
	}
	return m.records, nil
}

func (m *MockLoader) Path() string {
	return "mock.json"
}

func nsclcRecord(title string) trials.RawRecord {
	return trials.RawRecord{
		"protocolSection": map[string]any{
			"identificationModule": map[string]any{"officialTitle": title},
			"conditionsModule":     map[string]any{"conditions": []any{"NSCLC"}},
		},
	}
}

func TestStartLoadsDataset(t *testing.T) {
	logging.InitLogger("")

	dc := data.NewDataContainer()
	loader := &MockLoader{records: []trials.RawRecord{nsclcRecord("A"), {}}}

	s := NewScheduler(dc, loader, validation.NewDataValidator(), "")
	if err := s.Start(); err != nil {
		t.Fatalf("Start() returned error: %v", err)
	}
	defer s.Stop()

	got := dc.GetTrials()
	if len(got) != 2 {
		t.Fatalf("expected 2 trials, got %d", len(got))
	}
	if got[0].NormalizedDisease != trials.CanonicalNSCLC {
		t.Errorf("trials should be enriched, got %+v", got[0])
	}

	report := dc.GetDataQualityReport()
	if report.TotalTrials != 2 || report.TrialsWithoutTitle != 1 || report.CanonicalNSCLCTrials != 1 {
		t.Errorf("unexpected report %+v", report)
	}

	if dc.IsUpdating() {
		t.Error("updating flag should be cleared after the load")
	}
}

func TestStartWithFailedLoadServesEmptyDataset(t *testing.T) {
	logging.InitLogger("")

	dc := data.NewDataContainer()
	loader := &MockLoader{err: errors.New("dataset file not found")}

	s := NewScheduler(dc, loader, validation.NewDataValidator(), "")
	if err := s.Start(); err != nil {
		t.Fatalf("a failed dataset load should not fail Start, got %v", err)
	}

	if got := dc.GetTrials(); got == nil || len(got) != 0 {
		t.Errorf("expected empty dataset, got %v", got)
	}
}

func TestReloadFailureKeepsPreviousSnapshot(t *testing.T) {
	logging.InitLogger("")

	dc := data.NewDataContainer()
	loader := &MockLoader{records: []trials.RawRecord{nsclcRecord("A")}}
	s := NewScheduler(dc, loader, validation.NewDataValidator(), "")

	if err := s.Reload(); err != nil {
		t.Fatalf("first Reload() failed: %v", err)
	}

	loader.err = errors.New("malformed dataset")
	if err := s.Reload(); err == nil {
		t.Fatal("expected Reload() to report the load error")
	}

	if got := dc.GetTrials(); len(got) != 1 || got[0].Title != "A" {
		t.Errorf("previous snapshot should still be served, got %v", got)
	}
}

func TestReloadSkippedWhileUpdating(t *testing.T) {
	logging.InitLogger("")

	dc := data.NewDataContainer()
	loader := &MockLoader{records: []trials.RawRecord{nsclcRecord("A")}}
	s := NewScheduler(dc, loader, validation.NewDataValidator(), "")

	dc.BeginUpdate()
	if err := s.Reload(); err != nil {
		t.Errorf("skipped reload should not be an error, got %v", err)
	}
	dc.EndUpdate()

	if loader.calls.Load() != 0 {
		t.Errorf("loader should not be called while another update runs, got %d calls", loader.calls.Load())
	}
}

func TestStartWithSchedule(t *testing.T) {
	logging.InitLogger("")

	dc := data.NewDataContainer()
	loader := &MockLoader{records: []trials.RawRecord{nsclcRecord("A")}}

	s := NewScheduler(dc, loader, validation.NewDataValidator(), "0 6 * * *")
	if err := s.Start(); err != nil {
		t.Fatalf("Start() returned error: %v", err)
	}
	s.Stop()

	if loader.calls.Load() < 1 {
		t.Error("expected the initial load to run before scheduling")
	}
	if len(dc.GetTrials()) != 1 {
		t.Errorf("expected the initial snapshot, got %d trials", len(dc.GetTrials()))
	}
}

func TestStartWithInvalidSchedule(t *testing.T) {
	logging.InitLogger("")

	s := NewScheduler(data.NewDataContainer(), &MockLoader{}, validation.NewDataValidator(), "not a cron")
	if err := s.Start(); err == nil {
		t.Error("expected an error for an invalid schedule")
	}
}
