// Package interfaces defines core abstractions for the clinical trials API
// to improve testability, maintainability, and separation of concerns.
package interfaces

import (
	"net/http"
	"time"

	"github.com/giygas/clinicaltrials-api/trials"
)

// DataQualityReport summarizes gaps found in a loaded dataset
type DataQualityReport struct {
	TotalTrials               int
	TrialsWithoutConditions   int
	TrialsWithoutTitle        int
	TrialsWithoutIntervention int
	CanonicalNSCLCTrials      int
	// Indexes into the dataset, capped to keep logs readable
	TrialsWithoutTitleIndexes []int
}

// DataStore defines the contract for data storage operations.
// Snapshots are published atomically and never modified afterwards.
type DataStore interface {
	// Data retrieval methods
	GetTrials() []trials.Trial
	GetDataQualityReport() *DataQualityReport
	GetLastUpdated() time.Time
	IsUpdating() bool
	GetServerStartTime() time.Time

	// Data update methods
	UpdateData(enriched []trials.Trial, report *DataQualityReport)
	BeginUpdate() bool
	EndUpdate()
}

// Loader defines the contract for reading raw trial records from a dataset source
type Loader interface {
	Load() ([]trials.RawRecord, error)
	Path() string
}

// Scheduler defines the contract for dataset loading and reload scheduling
type Scheduler interface {
	// Lifecycle management
	Start() error
	Stop()
}

// HTTPHandler defines the contract for HTTP request handlers
type HTTPHandler interface {
	Search(w http.ResponseWriter, r *http.Request)
	HealthCheck(w http.ResponseWriter, r *http.Request)
}

// HealthChecker defines the contract for health check functionality
type HealthChecker interface {
	// HealthCheck returns the current status, its details and the HTTP status to answer with
	HealthCheck() (status string, details map[string]any, httpStatus int)
}

// DataValidator defines the contract for data validation operations
type DataValidator interface {
	// ReportDataQuality generates a data quality report for an enriched dataset
	ReportDataQuality(enriched []trials.Trial) *DataQualityReport

	// ValidateInput flags user input that looks unusual
	ValidateInput(input string) error
}
