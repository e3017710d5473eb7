package domain

import (
	"sort"
	"strings"
)

// Payload is a request body keyed by normalized field name.
type Payload map[string]any

// NormalizeKey folds case and drops '_', '-' and spaces, so Meal_Name,
// meal_name and mealName name the same field.
func NormalizeKey(k string) string {
	var b strings.Builder
	b.Grow(len(k))
	for _, r := range strings.ToLower(k) {
		switch r {
		case '_', '-', ' ':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// NewPayload normalizes the keys of a decoded JSON object. Two keys that
// fold to the same name are rejected.
func NewPayload(raw map[string]any) (Payload, error) {
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	p := make(Payload, len(raw))
	for _, k := range keys {
		nk := NormalizeKey(k)
		if _, dup := p[nk]; dup {
			return nil, Invalid(k, "supplied more than once")
		}
		p[nk] = raw[k]
	}
	return p, nil
}

// Lookup returns the value stored under name, which may be given in any
// spelling NormalizeKey accepts.
func (p Payload) Lookup(name string) (any, bool) {
	v, ok := p[NormalizeKey(name)]
	return v, ok
}

// Has reports whether name is present with a non-null value.
func (p Payload) Has(name string) bool {
	v, ok := p.Lookup(name)
	return ok && v != nil
}

// Int returns the required integer field name.
func (p Payload) Int(name string) (int64, error) {
	v, ok := p.Lookup(name)
	if !ok || v == nil {
		return 0, Missing(name)
	}
	n, err := KindInt.coerce(v)
	if err != nil {
		return 0, Invalid(name, err.Error())
	}
	return n.(int64), nil
}

// Text returns the required string field name.
func (p Payload) Text(name string) (string, error) {
	v, ok := p.Lookup(name)
	if !ok || v == nil {
		return "", Missing(name)
	}
	s, err := KindText.coerce(v)
	if err != nil {
		return "", Invalid(name, err.Error())
	}
	return s.(string), nil
}
