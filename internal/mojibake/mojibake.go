// Package mojibake repairs text that was UTF-8 encoded, read back as
// ISO-8859-1 and encoded to UTF-8 a second time ("SÃ£o" instead of "São").
//
// Detection is a marker heuristic and the repair is best-effort: running it
// twice over text that still carries a marker can damage it further.
package mojibake

import (
	"errors"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Markers are the characters a Latin diacritic decays into after the
// double encoding.
const Markers = "ÃÇÂ"

var errNotUTF8 = errors.New("mojibake: repaired bytes are not valid UTF-8")

// HasMarker reports whether s contains any of Markers.
func HasMarker(s string) bool {
	return strings.ContainsAny(s, Markers)
}

// Repair returns the repaired form of s and true, or s unchanged and false
// when s carries no marker or the transform fails.
func Repair(s string) (string, bool) {
	if !HasMarker(s) {
		return s, false
	}
	fixed, err := redecode(s)
	if err != nil {
		return s, false
	}
	return fixed, true
}

// Fix is Repair without the flag.
func Fix(s string) string {
	fixed, _ := Repair(s)
	return fixed
}

// redecode narrows every code point to its single byte and reads the result
// as UTF-8. Code points above U+00FF cannot be narrowed.
func redecode(s string) (string, error) {
	raw, err := charmap.ISO8859_1.NewEncoder().String(s)
	if err != nil {
		return "", err
	}
	if !utf8.ValidString(raw) {
		return "", errNotUTF8
	}
	return raw, nil
}

// Normalize walks a decoded JSON value and applies Fix to every string leaf.
// Arrays and objects are rebuilt; every other value is returned as is.
func Normalize(v any) any {
	switch t := v.(type) {
	case string:
		return Fix(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = Normalize(e)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = Normalize(e)
		}
		return out
	default:
		return v
	}
}
