// core/seq/seq.go
package seq

import (
	"fmt"
	"unicode"
)

// Bases accepted by the layout/risk engine. U is kept as-is so RNA
// input renders with its own alphabet.
const alphabet = "ACGTU"

// Normalize removes spaces/quotes and uppercases bases.
func Normalize(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if unicode.IsSpace(r) || r == '\'' || r == '"' {
			continue
		}
		out = append(out, unicode.ToUpper(r))
	}
	return string(out)
}

// Validate returns a normalized sequence or an error if any char is
// outside {A,C,G,T,U}.
func Validate(raw string) (string, error) {
	s := Normalize(raw)
	if s == "" {
		return s, fmt.Errorf("empty sequence")
	}
	for i, r := range s {
		if !isBase(r) {
			return "", fmt.Errorf("invalid base %q at %d; allowed: A C G T U", r, i+1)
		}
	}
	return s, nil
}

func isBase(r rune) bool {
	for _, a := range alphabet {
		if r == a {
			return true
		}
	}
	return false
}
