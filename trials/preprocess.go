package trials

import "strings"

const fieldSeparator = "; "

// Preprocess enriches every record in order. It never fails: records missing
// any of the nested modules get empty derived fields.
func Preprocess(records []RawRecord) []Trial {
	enriched := make([]Trial, 0, len(records))
	for _, record := range records {
		enriched = append(enriched, Enrich(record))
	}
	return enriched
}

// Enrich derives disease, title and therapy fields for one record
func Enrich(record RawRecord) Trial {
	trial := Trial{
		Raw:   record,
		Title: extractTitle(record),
	}

	if conditions := extractConditions(record); len(conditions) > 0 {
		trial.Disease = strings.Join(conditions, fieldSeparator)
		trial.NormalizedDisease = Normalize(trial.Disease)
	}

	trial.Therapy = strings.Join(extractInterventions(record), fieldSeparator)

	return trial
}

// extractConditions prefers conditionList.condition and falls back to conditions
func extractConditions(record RawRecord) []string {
	conditions := record.Strings("protocolSection", "conditionsModule", "conditionList", "condition")
	if len(conditions) == 0 {
		conditions = record.Strings("protocolSection", "conditionsModule", "conditions")
	}
	return conditions
}

func extractTitle(record RawRecord) string {
	if title := record.String("protocolSection", "identificationModule", "officialTitle"); title != "" {
		return title
	}
	return record.String("protocolSection", "identificationModule", "briefTitle")
}

func extractInterventions(record RawRecord) []string {
	interventions := record.List("protocolSection", "interventionsModule", "interventionList", "intervention")

	names := make([]string, 0, len(interventions))
	for _, entry := range interventions {
		obj, ok := asObject(entry)
		if !ok {
			continue
		}
		if name, ok := obj["interventionName"].(string); ok && name != "" {
			names = append(names, name)
		}
	}
	return names
}
