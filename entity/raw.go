package entity

// Raw is a loosely-structured API payload: string keys mapped to whatever
// the upstream JSON happened to contain. Values are the shapes
// encoding/json produces for an untyped decode (string, float64, bool,
// []any, map[string]any), though nested Raw and []string literals are
// accepted too.
type Raw map[string]any

// clone returns a shallow copy, so record annotations never leak back
// into the caller's payload.
func (r Raw) clone() Raw {
	out := make(Raw, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// optString returns the string under key, or nil when it is absent or not
// a string. All opt* accessors share this default-to-null policy: the
// upstream API omits fields inconsistently, and a missing optional field
// is a documented gap rather than an error.
func (r Raw) optString(key string) *string {
	if v, ok := r[key].(string); ok {
		return &v
	}
	return nil
}

// firstString returns the value of the first key present as a string.
// The API spells some fields two ways (e.g. "genre" and "genres").
func (r Raw) firstString(keys ...string) *string {
	for _, key := range keys {
		if v := r.optString(key); v != nil {
			return v
		}
	}
	return nil
}

func (r Raw) optInt(key string) *int {
	switch v := r[key].(type) {
	case int:
		return &v
	case int64:
		n := int(v)
		return &n
	case float64:
		n := int(v)
		return &n
	}
	return nil
}

func (r Raw) optBool(key string) *bool {
	if v, ok := r[key].(bool); ok {
		return &v
	}
	return nil
}

// optList returns the list under key. A present-but-empty list comes back
// as a non-nil empty slice; an absent key comes back nil.
func (r Raw) optList(key string) []any {
	switch v := r[key].(type) {
	case []any:
		if v == nil {
			return []any{}
		}
		return v
	case []Raw:
		out := make([]any, len(v))
		for i, m := range v {
			out[i] = m
		}
		return out
	case []map[string]any:
		out := make([]any, len(v))
		for i, m := range v {
			out[i] = m
		}
		return out
	case []string:
		out := make([]any, len(v))
		for i, s := range v {
			out[i] = s
		}
		return out
	}
	return nil
}

// optStrings returns the list of strings under key, skipping any
// non-string elements.
func (r Raw) optStrings(key string) []string {
	items := r.optList(key)
	if items == nil {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// optMaps returns the list of sub-records under key, skipping any
// elements that are not mappings.
func (r Raw) optMaps(key string) []Raw {
	items := r.optList(key)
	if items == nil {
		return nil
	}
	out := make([]Raw, 0, len(items))
	for _, item := range items {
		if m, ok := asRaw(item); ok {
			out = append(out, m)
		}
	}
	return out
}

// asRaw converts a decoded value to Raw when it is a mapping.
func asRaw(v any) (Raw, bool) {
	switch m := v.(type) {
	case Raw:
		return m, true
	case map[string]any:
		return Raw(m), true
	}
	return nil, false
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

// Score is a rating value paired with the number of voters behind it.
type Score struct {
	Value  float64
	Voters int
}

// optScore reads a score field, either a [value, voter-count] pair or a
// bare number (in which case the voter count stays zero).
func (r Raw) optScore(key string) *Score {
	v, ok := r[key]
	if !ok || v == nil {
		return nil
	}
	if n, ok := asFloat(v); ok {
		return &Score{Value: n}
	}
	items := r.optList(key)
	if len(items) == 0 {
		return nil
	}
	s := &Score{}
	if n, ok := asFloat(items[0]); ok {
		s.Value = n
	}
	if len(items) > 1 {
		if n, ok := asFloat(items[1]); ok {
			s.Voters = int(n)
		}
	}
	return s
}
