package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/giygas/clinicaltrials-api/interfaces"
	"github.com/giygas/clinicaltrials-api/trials"
)

// ============================================================================
// TEST DATA FACTORY
// ============================================================================

// newTrial builds an enriched trial the way the preprocessor would
func newTrial(title, disease, therapy string) trials.Trial {
	normalized := ""
	if disease != "" {
		normalized = trials.Normalize(disease)
	}
	return trials.Trial{
		Disease:           disease,
		NormalizedDisease: normalized,
		Title:             title,
		Therapy:           therapy,
	}
}

func sampleTrials() []trials.Trial {
	return []trials.Trial{
		newTrial("Osimertinib in EGFR NSCLC", "NSCLC", "Osimertinib"),
		newTrial("Chemotherapy for Small Cell Lung Cancer", "Small Cell Lung Cancer", "Chemotherapy; Radiation"),
		newTrial("Pembrolizumab in Melanoma", "Metastatic Melanoma", "Pembrolizumab"),
		newTrial("", "Non-Small Cell Lung Carcinoma", "Platinum Chemotherapy"),
		newTrial("Observational Registry", "", ""),
	}
}

// ============================================================================
// MOCK BUILDERS
// ============================================================================

// MockDataStore implements interfaces.DataStore for testing
type MockDataStore struct {
	trials      []trials.Trial
	report      *interfaces.DataQualityReport
	lastUpdated time.Time
	startTime   time.Time
	updating    bool
}

func (m *MockDataStore) GetTrials() []trials.Trial { return m.trials }
func (m *MockDataStore) GetDataQualityReport() *interfaces.DataQualityReport {
	return m.report
}
func (m *MockDataStore) GetLastUpdated() time.Time     { return m.lastUpdated }
func (m *MockDataStore) IsUpdating() bool              { return m.updating }
func (m *MockDataStore) GetServerStartTime() time.Time { return m.startTime }
func (m *MockDataStore) UpdateData(enriched []trials.Trial, report *interfaces.DataQualityReport) {
	m.trials = enriched
	m.report = report
	m.lastUpdated = time.Now()
}
func (m *MockDataStore) BeginUpdate() bool {
	if m.updating {
		return false
	}
	m.updating = true
	return true
}
func (m *MockDataStore) EndUpdate() { m.updating = false }

// MockDataStoreBuilder provides fluent interface for building mock data stores
type MockDataStoreBuilder struct {
	mock *MockDataStore
}

func NewMockDataStoreBuilder() *MockDataStoreBuilder {
	return &MockDataStoreBuilder{
		mock: &MockDataStore{
			trials:      []trials.Trial{},
			report:      &interfaces.DataQualityReport{},
			lastUpdated: time.Now(),
			startTime:   time.Now(),
		},
	}
}

func (b *MockDataStoreBuilder) WithTrials(enriched []trials.Trial) *MockDataStoreBuilder {
	b.mock.trials = enriched
	return b
}

func (b *MockDataStoreBuilder) WithLastUpdated(lastUpdated time.Time) *MockDataStoreBuilder {
	b.mock.lastUpdated = lastUpdated
	return b
}

func (b *MockDataStoreBuilder) Build() *MockDataStore {
	return b.mock
}

// MockDataValidator implements interfaces.DataValidator for testing
type MockDataValidator struct {
	rejected []string
	checked  []string
}

func (m *MockDataValidator) ReportDataQuality(enriched []trials.Trial) *interfaces.DataQualityReport {
	return &interfaces.DataQualityReport{TotalTrials: len(enriched)}
}

func (m *MockDataValidator) ValidateInput(input string) error {
	m.checked = append(m.checked, input)
	for _, r := range m.rejected {
		if strings.Contains(input, r) {
			return errors.New("input contains suspicious pattern")
		}
	}
	return nil
}

// MockDataValidatorBuilder provides fluent interface for building mock validators
type MockDataValidatorBuilder struct {
	mock *MockDataValidator
}

func NewMockDataValidatorBuilder() *MockDataValidatorBuilder {
	return &MockDataValidatorBuilder{mock: &MockDataValidator{}}
}

func (b *MockDataValidatorBuilder) WithRejected(patterns ...string) *MockDataValidatorBuilder {
	b.mock.rejected = append(b.mock.rejected, patterns...)
	return b
}

func (b *MockDataValidatorBuilder) Build() *MockDataValidator {
	return b.mock
}

// MockHealthChecker implements interfaces.HealthChecker for testing
type MockHealthChecker struct {
	status     string
	data       map[string]any
	httpStatus int
}

func (m *MockHealthChecker) HealthCheck() (string, map[string]any, int) {
	return m.status, m.data, m.httpStatus
}

func newHealthyChecker() *MockHealthChecker {
	return &MockHealthChecker{
		status:     "healthy",
		data:       map[string]any{"trials": 5},
		httpStatus: http.StatusOK,
	}
}
