package rpc

import "strings"

// Params is the untyped parameter bag of an incoming request. Fields are
// type-checked at read time; unrecognized keys are ignored.
type Params map[string]any

// String returns the named field if it is present and a string.
func (p Params) String(key string) (string, bool) {
	v, ok := p[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// StringOr returns the named field trimmed of surrounding whitespace, or
// the fallback when the field is absent, not a string, or blank.
func (p Params) StringOr(key, fallback string) string {
	s, ok := p.String(key)
	if !ok {
		return fallback
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback
	}
	return s
}

// TrimmedString returns the named field trimmed of surrounding whitespace.
// Absent or non-string fields report ok=false and are treated as unset.
func (p Params) TrimmedString(key string) (string, bool) {
	s, ok := p.String(key)
	if !ok {
		return "", false
	}
	return strings.TrimSpace(s), true
}
