package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind is the storage type a payload value is coerced to.
type Kind int

const (
	KindText Kind = iota
	KindInt
	KindFloat
	KindDate
	KindClock
	KindBool
)

// Field maps the accepted payload names of one column. Names are tried in
// order; the first present one wins and Names[0] is the canonical name.
type Field struct {
	Column string
	Names  []string
	Kind   Kind
}

// Assignment is one column and the value to bind to it.
type Assignment struct {
	Column string
	Value  any
}

// Schema is the ordered set of fields a resource accepts.
type Schema []Field

// Pick resolves p against s and returns one assignment per supplied field in
// declared order. Unknown keys are ignored. A null value clears the column.
func (s Schema) Pick(p Payload) ([]Assignment, error) {
	var out []Assignment
	for _, f := range s {
		name, raw, ok := f.resolve(p)
		if !ok {
			continue
		}
		v, err := f.Kind.coerce(raw)
		if err != nil {
			return nil, Invalid(name, err.Error())
		}
		out = append(out, Assignment{Column: f.Column, Value: v})
	}
	if len(out) == 0 {
		return nil, ErrEmptyUpdate
	}
	return out, nil
}

// Require returns a ValidationError for the first name in names that p does
// not carry with a non-null value. A name that belongs to a field is also
// satisfied by any of that field's aliases.
func (s Schema) Require(p Payload, names ...string) error {
	for _, name := range names {
		if f, ok := s.field(name); ok {
			if _, v, found := f.resolve(p); found && v != nil {
				continue
			}
			return Missing(name)
		}
		if !p.Has(name) {
			return Missing(name)
		}
	}
	return nil
}

// Omit returns a copy of s without the given columns.
func (s Schema) Omit(columns ...string) Schema {
	out := make(Schema, 0, len(s))
next:
	for _, f := range s {
		for _, c := range columns {
			if f.Column == c {
				continue next
			}
		}
		out = append(out, f)
	}
	return out
}

func (s Schema) field(name string) (Field, bool) {
	key := NormalizeKey(name)
	for _, f := range s {
		for _, n := range f.Names {
			if NormalizeKey(n) == key {
				return f, true
			}
		}
	}
	return Field{}, false
}

func (f Field) resolve(p Payload) (string, any, bool) {
	for _, n := range f.Names {
		if v, ok := p.Lookup(n); ok {
			return n, v, true
		}
	}
	return "", nil, false
}

func (k Kind) coerce(v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	switch k {
	case KindText:
		if s, ok := v.(string); ok {
			return s, nil
		}
		return nil, errors.New("must be a string")
	case KindInt:
		return toInt(v)
	case KindFloat:
		return toFloat(v)
	case KindDate:
		switch t := v.(type) {
		case Date:
			return t, nil
		case string:
			d, err := ParseDate(t)
			if err != nil {
				return nil, errors.New("must be a date in YYYY-MM-DD form")
			}
			return d, nil
		}
		return nil, errors.New("must be a date in YYYY-MM-DD form")
	case KindClock:
		switch t := v.(type) {
		case Clock:
			return t, nil
		case string:
			c, err := ParseClock(t)
			if err != nil {
				return nil, errors.New("must be a time in HH:MM:SS form")
			}
			return c, nil
		}
		return nil, errors.New("must be a time in HH:MM:SS form")
	case KindBool:
		return toBool(v)
	}
	return nil, fmt.Errorf("unsupported kind %d", k)
}

func toInt(v any) (any, error) {
	errInt := errors.New("must be an integer")
	switch n := v.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, nil
		}
		f, err := n.Float64()
		if err != nil || !integralInRange(f) {
			return nil, errInt
		}
		return int64(f), nil
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
		if err != nil {
			return nil, errInt
		}
		return i, nil
	case float64:
		if !integralInRange(n) {
			return nil, errInt
		}
		return int64(n), nil
	case int:
		return int64(n), nil
	case int64:
		return n, nil
	}
	return nil, errInt
}

// integralInRange reports whether f is a whole number int64 can hold.
func integralInRange(f float64) bool {
	return f == math.Trunc(f) && f >= math.MinInt64 && f < math.MaxInt64
}

func toFloat(v any) (any, error) {
	errNum := errors.New("must be a number")
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return nil, errNum
		}
		return f, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return nil, errNum
		}
		return f, nil
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	}
	return nil, errNum
}

func toBool(v any) (any, error) {
	errBool := errors.New("must be a boolean")
	switch b := v.(type) {
	case bool:
		return b, nil
	case json.Number:
		switch b.String() {
		case "0":
			return false, nil
		case "1":
			return true, nil
		}
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(b))
		if err == nil {
			return parsed, nil
		}
	case int:
		if b == 0 || b == 1 {
			return b == 1, nil
		}
	}
	return nil, errBool
}
