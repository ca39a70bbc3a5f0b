// Package trials holds the clinical trial enrichment and search logic:
// disease normalization against a fixed synonym table, record preprocessing
// and the disease/therapy query filter.
package trials

import "strings"

// CanonicalNSCLC is the label every NSCLC synonym normalizes to
const CanonicalNSCLC = "non small cell lung cancer"

// nsclcSynonyms lists the phrasings recognized as non small cell lung cancer.
// Order is the match order used by Normalize.
var nsclcSynonyms = []string{
	"NSCLC",
	"Non-Small Cell Lung Cancer",
	"Non Small Cell Lung Cancer",
	"Non-Small-Cell Lung Cancer",
	"Nonsmall Cell Lung Cancer",
	"Non-Small Cell Lung Carcinoma",
	"Non Small Cell Lung Carcinoma",
	"Non-Small-Cell Lung Carcinoma",
	"Non-Small Cell Carcinoma of the Lung",
	"Non-Small Cell Lung Neoplasm",
}

// lowerSynonyms is computed once, comparisons are always lowercase on both sides
var lowerSynonyms = func() []string {
	lowered := make([]string, len(nsclcSynonyms))
	for i, s := range nsclcSynonyms {
		lowered[i] = strings.ToLower(s)
	}
	return lowered
}()

// Synonyms returns a copy of the synonym table in match order
func Synonyms() []string {
	out := make([]string, len(nsclcSynonyms))
	copy(out, nsclcSynonyms)
	return out
}

// IsSynonym reports whether query is exactly one of the table entries,
// ignoring case and surrounding whitespace
func IsSynonym(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return false
	}
	for _, s := range lowerSynonyms {
		if q == s {
			return true
		}
	}
	return false
}
