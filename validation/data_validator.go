// Package validation provides data quality reporting and input checks for the clinical trials API.
package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/giygas/clinicaltrials-api/interfaces"
	"github.com/giygas/clinicaltrials-api/trials"
)

// MaxQueryLength is the longest query string accepted without a warning
const MaxQueryLength = 200

// maxReportedIndexes caps the index lists carried by a report
const maxReportedIndexes = 50

// Substring patterns that never show up in a disease or therapy name
var suspiciousPatterns = []string{
	"<script", "</script>", "javascript:", "vbscript:", "onload=", "onerror=",
	"' or ", "\" or ", "union select", "drop table", "--", "/*", "*/",
	"$(", "${", "`",
	"../", "..\\", "%2e%2e", "file://",
	"{$ne:", "{$gt:", "{$where:", "{$regex:",
}

// DataValidatorImpl implements the interfaces.DataValidator interface
type DataValidatorImpl struct{}

// NewDataValidator creates a new data validator
func NewDataValidator() interfaces.DataValidator {
	return &DataValidatorImpl{}
}

// ReportDataQuality counts the trials missing each derived field
func (v *DataValidatorImpl) ReportDataQuality(enriched []trials.Trial) *interfaces.DataQualityReport {
	report := &interfaces.DataQualityReport{
		TotalTrials:               len(enriched),
		TrialsWithoutTitleIndexes: []int{},
	}

	for i, trial := range enriched {
		if trial.Disease == "" {
			report.TrialsWithoutConditions++
		}
		if trial.Title == "" {
			report.TrialsWithoutTitle++
			if len(report.TrialsWithoutTitleIndexes) < maxReportedIndexes {
				report.TrialsWithoutTitleIndexes = append(report.TrialsWithoutTitleIndexes, i)
			}
		}
		if trial.Therapy == "" {
			report.TrialsWithoutIntervention++
		}
		if trial.NormalizedDisease == trials.CanonicalNSCLC {
			report.CanonicalNSCLCTrials++
		}
	}

	return report
}

// ValidateInput reports query strings that are too long, not UTF-8 or carry injection patterns.
// Callers only log the result: a query is never refused.
func (v *DataValidatorImpl) ValidateInput(input string) error {
	if !utf8.ValidString(input) {
		return fmt.Errorf("input is not valid UTF-8")
	}

	if n := utf8.RuneCountInString(input); n > MaxQueryLength {
		return fmt.Errorf("input too long: %d characters (max %d)", n, MaxQueryLength)
	}

	lowered := strings.ToLower(input)
	for _, pattern := range suspiciousPatterns {
		if strings.Contains(lowered, pattern) {
			return fmt.Errorf("input contains suspicious pattern %q", pattern)
		}
	}

	return nil
}
