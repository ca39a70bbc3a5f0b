// Package health provides health checking functionality for the clinical trials API.
package health

import (
	"math"
	"net/http"
	"time"

	"github.com/giygas/clinicaltrials-api/interfaces"
)

// HealthCheckerImpl implements the interfaces.HealthChecker interface
type HealthCheckerImpl struct {
	dataStore   interfaces.DataStore
	datasetPath string
}

// NewHealthChecker creates a new health checker with injected dependencies
func NewHealthChecker(dataStore interfaces.DataStore, datasetPath string) interfaces.HealthChecker {
	return &HealthCheckerImpl{
		dataStore:   dataStore,
		datasetPath: datasetPath,
	}
}

// HealthCheck reports unhealthy while the served snapshot is empty.
// Searches still answer in that state, with empty results.
func (h *HealthCheckerImpl) HealthCheck() (status string, data map[string]any, httpStatus int) {
	enriched := h.dataStore.GetTrials()
	report := h.dataStore.GetDataQualityReport()
	lastUpdate := h.dataStore.GetLastUpdated()
	isUpdating := h.dataStore.IsUpdating()

	switch {
	case len(enriched) == 0:
		status = "unhealthy"
		httpStatus = http.StatusServiceUnavailable
	case isUpdating:
		status = "updating"
		httpStatus = http.StatusOK
	default:
		status = "healthy"
		httpStatus = http.StatusOK
	}

	data = map[string]any{
		"trials":         len(enriched),
		"without_title":  report.TrialsWithoutTitle,
		"nsclc_trials":   report.CanonicalNSCLCTrials,
		"is_updating":    isUpdating,
		"dataset_path":   h.datasetPath,
		"last_update":    nil,
		"data_age_hours": nil,
	}

	if !lastUpdate.IsZero() {
		data["last_update"] = lastUpdate.Format(time.RFC3339)
		data["data_age_hours"] = math.Round(time.Since(lastUpdate).Hours()*10) / 10
	}

	if start := h.dataStore.GetServerStartTime(); !start.IsZero() {
		data["uptime_seconds"] = math.Round(time.Since(start).Seconds())
	}

	return status, data, httpStatus
}
