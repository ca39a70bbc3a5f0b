// Package handlers provides HTTP request handlers for the clinical trials API endpoints.
// This file implements the HTTPHandler interface with dependency injection.
package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/giygas/clinicaltrials-api/interfaces"
	"github.com/giygas/clinicaltrials-api/logging"
	"github.com/giygas/clinicaltrials-api/metrics"
	"github.com/giygas/clinicaltrials-api/trials"
	"github.com/go-chi/chi/v5/middleware"
)

// HTTPHandlerImpl implements the interfaces.HTTPHandler interface
type HTTPHandlerImpl struct {
	dataStore     interfaces.DataStore
	validator     interfaces.DataValidator
	healthChecker interfaces.HealthChecker
}

// NewHTTPHandler creates a new HTTP handler with injected dependencies
func NewHTTPHandler(dataStore interfaces.DataStore, validator interfaces.DataValidator, healthChecker interfaces.HealthChecker) interfaces.HTTPHandler {
	return &HTTPHandlerImpl{
		dataStore:     dataStore,
		validator:     validator,
		healthChecker: healthChecker,
	}
}

// HealthResponse defines the structure for consistent JSON ordering
type HealthResponse struct {
	Status string         `json:"status"`
	Data   map[string]any `json:"data"`
}

// RespondWithJSON writes a JSON response
func (h *HTTPHandlerImpl) RespondWithJSON(w http.ResponseWriter, code int, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		logging.Error("Failed to marshal JSON response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if lastUpdated := h.lastModified(); !lastUpdated.IsZero() {
		w.Header().Set("Last-Modified", lastUpdated.UTC().Format(http.TimeFormat))
	}
	w.WriteHeader(code)
	w.Write(data)
}

// RespondWithError writes a JSON error response
func (h *HTTPHandlerImpl) RespondWithError(w http.ResponseWriter, code int, message string) {
	errorResponse := map[string]any{
		"error":   http.StatusText(code),
		"message": message,
		"code":    code,
	}
	h.RespondWithJSON(w, code, errorResponse)
}

func (h *HTTPHandlerImpl) lastModified() time.Time {
	if h.dataStore == nil {
		return time.Time{}
	}
	return h.dataStore.GetLastUpdated()
}

// Search filters the current snapshot by disease and therapy and returns matching titles.
// It always answers 200 with an array, empty when nothing matches.
func (h *HTTPHandlerImpl) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	disease := query.Get("disease")
	therapy := query.Get("therapy")

	for param, value := range map[string]string{"disease": disease, "therapy": therapy} {
		if err := h.validator.ValidateInput(value); err != nil {
			logging.Warn("Unusual user input",
				"param", param,
				"error", err,
				"request_id", middleware.GetReqID(r.Context()),
			)
		}
	}

	var collection []trials.Trial
	if h.dataStore != nil {
		collection = h.dataStore.GetTrials()
	}

	titles := trials.Filter(collection, disease, therapy)
	metrics.RecordSearch(strings.TrimSpace(disease) != "", strings.TrimSpace(therapy) != "", len(titles))

	h.RespondWithJSON(w, http.StatusOK, titles)
}

// HealthCheck returns dataset and service health information
func (h *HTTPHandlerImpl) HealthCheck(w http.ResponseWriter, r *http.Request) {
	status, data, httpStatus := h.healthChecker.HealthCheck()

	h.RespondWithJSON(w, httpStatus, HealthResponse{
		Status: status,
		Data:   data,
	})
}
