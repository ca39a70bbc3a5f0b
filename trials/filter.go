package trials

import "strings"

// NoTitlePlaceholder is returned for matching trials without any title
const NoTitlePlaceholder = "No Title Provided"

// Filter returns the titles of the trials matching both queries, in collection order.
// A blank query does not filter. The result is never nil.
func Filter(collection []Trial, diseaseQuery, therapyQuery string) []string {
	matches := Match(collection, diseaseQuery, therapyQuery)

	titles := make([]string, 0, len(matches))
	for _, trial := range matches {
		if trial.Title == "" {
			titles = append(titles, NoTitlePlaceholder)
			continue
		}
		titles = append(titles, trial.Title)
	}
	return titles
}

// Match applies the disease filter then the therapy filter and returns the surviving trials
func Match(collection []Trial, diseaseQuery, therapyQuery string) []Trial {
	disease := strings.ToLower(strings.TrimSpace(diseaseQuery))
	therapy := strings.ToLower(strings.TrimSpace(therapyQuery))

	filtered := collection

	if disease != "" {
		if IsSynonym(disease) {
			filtered = keep(filtered, func(t Trial) bool {
				return t.NormalizedDisease == CanonicalNSCLC
			})
		} else {
			filtered = keep(filtered, func(t Trial) bool {
				return t.NormalizedDisease != "" && strings.Contains(strings.ToLower(t.NormalizedDisease), disease)
			})
		}
	}

	if therapy != "" {
		filtered = keep(filtered, func(t Trial) bool {
			return strings.Contains(strings.ToLower(t.Therapy), therapy)
		})
	}

	return filtered
}

// keep returns a new slice so the shared collection is never written to
func keep(trials []Trial, pred func(Trial) bool) []Trial {
	out := make([]Trial, 0, len(trials))
	for _, t := range trials {
		if pred(t) {
			out = append(out, t)
		}
	}
	return out
}
