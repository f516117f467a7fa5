package model

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Number decodes loosely typed JSON into a float64 the way the store's schema
// casts numeric paths: numbers as-is, numeric strings parsed, booleans as 1
// or 0. null and "" leave it unset. Any other value is kept as a cast failure
// instead of failing the whole decode.
type Number struct {
	Value float64
	Set   bool
	bad   string
}

func (n *Number) UnmarshalJSON(data []byte) error {
	*n = Number{}
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0, string(data) == "null":
	case string(data) == "true":
		n.Value, n.Set = 1, true
	case string(data) == "false":
		n.Value, n.Set = 0, true
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			n.bad = string(data)
			return nil
		}
		n.Value, n.Set = f, true
	case data[0] == '{' || data[0] == '[':
		n.bad = string(data)
	default:
		f, err := strconv.ParseFloat(string(data), 64)
		if err != nil {
			n.bad = string(data)
			return nil
		}
		n.Value, n.Set = f, true
	}
	return nil
}

// Ptr returns nil when n is unset.
func (n Number) Ptr() *float64 {
	if !n.Set {
		return nil
	}
	v := n.Value
	return &v
}

// CastFailure returns the cast message for path, or "" when n is fine.
func (n Number) CastFailure(path string) string {
	return castFailure("Number", n.bad, path)
}

// Text decodes loosely typed JSON into a string: strings as-is, numbers and
// booleans by their literal text. Objects and arrays are cast failures.
type Text struct {
	Value string
	Set   bool
	bad   string
}

func (t *Text) UnmarshalJSON(data []byte) error {
	*t = Text{}
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0, string(data) == "null":
	case data[0] == '"':
		if err := json.Unmarshal(data, &t.Value); err != nil {
			return err
		}
		t.Set = true
	case data[0] == '{' || data[0] == '[':
		t.bad = string(data)
	default:
		t.Value, t.Set = string(data), true
	}
	return nil
}

func (t Text) CastFailure(path string) string {
	return castFailure("string", t.bad, path)
}

func castFailure(kind, value, path string) string {
	if value == "" {
		return ""
	}
	return "Cast to " + kind + " failed for value " + value + ` at path "` + path + `"`
}
