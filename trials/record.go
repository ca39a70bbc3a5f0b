package trials

// RawRecord is a study as decoded from the dataset document. No field is
// guaranteed to exist and nested values may have any type.
type RawRecord map[string]any

// Trial is a raw record enriched with the derived search fields
type Trial struct {
	Raw               RawRecord `json:"-"`
	Disease           string    `json:"disease"`
	NormalizedDisease string    `json:"normalized_disease"`
	Title             string    `json:"title"`
	Therapy           string    `json:"therapy"`
}

// Path walks nested objects along keys and returns the value found at the end.
// It returns nil as soon as a step is missing or is not an object.
func (r RawRecord) Path(keys ...string) any {
	var current any = map[string]any(r)
	for _, key := range keys {
		obj, ok := asObject(current)
		if !ok {
			return nil
		}
		current, ok = obj[key]
		if !ok {
			return nil
		}
	}
	return current
}

// Object returns the object at keys, or an empty object
func (r RawRecord) Object(keys ...string) map[string]any {
	if obj, ok := asObject(r.Path(keys...)); ok {
		return obj
	}
	return map[string]any{}
}

// String returns the string at keys, or ""
func (r RawRecord) String(keys ...string) string {
	if s, ok := r.Path(keys...).(string); ok {
		return s
	}
	return ""
}

// List returns the array at keys, or an empty slice
func (r RawRecord) List(keys ...string) []any {
	if list, ok := r.Path(keys...).([]any); ok {
		return list
	}
	return []any{}
}

// Strings returns the string entries of the array at keys, skipping anything else
func (r RawRecord) Strings(keys ...string) []string {
	list := r.List(keys...)
	out := make([]string, 0, len(list))
	for _, item := range list {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func asObject(v any) (map[string]any, bool) {
	switch obj := v.(type) {
	case map[string]any:
		return obj, obj != nil
	case RawRecord:
		return obj, obj != nil
	}
	return nil, false
}
