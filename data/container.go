// Package data provides thread-safe data storage for the clinical trials API.
// It includes the DataContainer struct with atomic operations for zero-downtime
// updates and lock-free read access to the enriched trials snapshot.
package data

import (
	"sync/atomic"
	"time"

	"github.com/giygas/clinicaltrials-api/interfaces"
	"github.com/giygas/clinicaltrials-api/logging"
	"github.com/giygas/clinicaltrials-api/trials"
)

// Compile-time check to ensure DataContainer implements DataStore
var _ interfaces.DataStore = (*DataContainer)(nil)

// DataContainer holds the enriched dataset behind atomic values
type DataContainer struct {
	trials          atomic.Value // []trials.Trial
	report          atomic.Value // *interfaces.DataQualityReport
	lastUpdated     atomic.Value // time.Time
	updating        atomic.Bool
	serverStartTime atomic.Value // time.Time
}

// NewDataContainer creates a new DataContainer with empty data
func NewDataContainer() *DataContainer {
	dc := &DataContainer{}
	dc.trials.Store(make([]trials.Trial, 0))
	dc.report.Store(&interfaces.DataQualityReport{})
	dc.lastUpdated.Store(time.Time{})
	dc.serverStartTime.Store(time.Time{})
	return dc
}

// GetTrials returns the current enriched snapshot. Callers must not modify it.
func (dc *DataContainer) GetTrials() []trials.Trial {
	if v := dc.trials.Load(); v != nil {
		if enriched, ok := v.([]trials.Trial); ok {
			return enriched
		}
	}

	logging.Warn("Trials list is empty or invalid")
	return []trials.Trial{}
}

// GetDataQualityReport returns the report computed for the current snapshot
func (dc *DataContainer) GetDataQualityReport() *interfaces.DataQualityReport {
	if v := dc.report.Load(); v != nil {
		if report, ok := v.(*interfaces.DataQualityReport); ok && report != nil {
			return report
		}
	}

	return &interfaces.DataQualityReport{}
}

// GetLastUpdated returns the timestamp of the last data update
func (dc *DataContainer) GetLastUpdated() time.Time {
	if v := dc.lastUpdated.Load(); v != nil {
		if lastUpdated, ok := v.(time.Time); ok {
			return lastUpdated
		}
	}

	logging.Warn("Could not get the last updated value")
	return time.Time{}
}

// IsUpdating returns true if a data update is currently in progress
func (dc *DataContainer) IsUpdating() bool {
	return dc.updating.Load()
}

// SetServerStartTime sets the server start time
func (dc *DataContainer) SetServerStartTime(startTime time.Time) {
	dc.serverStartTime.Store(startTime)
}

// GetServerStartTime returns the server start time
func (dc *DataContainer) GetServerStartTime() time.Time {
	if v := dc.serverStartTime.Load(); v != nil {
		if startTime, ok := v.(time.Time); ok {
			return startTime
		}
	}

	logging.Warn("Could not get the server start time value")
	return time.Time{}
}

// UpdateData atomically replaces the snapshot
func (dc *DataContainer) UpdateData(enriched []trials.Trial, report *interfaces.DataQualityReport) {
	if enriched == nil {
		enriched = make([]trials.Trial, 0)
	}
	if report == nil {
		report = &interfaces.DataQualityReport{}
	}

	dc.trials.Store(enriched)
	dc.report.Store(report)
	dc.lastUpdated.Store(time.Now())
}

// BeginUpdate marks the start of a data update operation
// Returns true if update can proceed, false if another update is in progress
func (dc *DataContainer) BeginUpdate() bool {
	return dc.updating.CompareAndSwap(false, true)
}

// EndUpdate marks the end of a data update operation
func (dc *DataContainer) EndUpdate() {
	dc.updating.Store(false)
}
