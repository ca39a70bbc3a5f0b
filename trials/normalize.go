package trials

import "strings"

// Normalize maps free-text disease descriptions to the canonical NSCLC label
// when any synonym appears in the text. Anything else is returned lowercased.
func Normalize(text string) string {
	lowered := strings.ToLower(text)
	for _, s := range lowerSynonyms {
		if strings.Contains(lowered, s) {
			return CanonicalNSCLC
		}
	}
	return lowered
}

// NormalizeValue is Normalize for decoded values of unknown type.
// Non-string values normalize to the empty string.
func NormalizeValue(v any) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return Normalize(s)
}
