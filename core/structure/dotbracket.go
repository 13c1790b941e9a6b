// core/structure/dotbracket.go
package structure

import "fmt"

// ParseDotBracket converts Vienna dot-bracket notation into a pair
// list. Only the '(' ')' '.' alphabet is accepted; pseudoknot layers
// are not supported.
func ParseDotBracket(s string) ([]Pair, error) {
	var pairs []Pair
	var stack []int
	for i, c := range s {
		switch c {
		case '.':
		case '(':
			stack = append(stack, i)
		case ')':
			if len(stack) == 0 {
				return nil, fmt.Errorf("dot-bracket: unmatched ')' at %d", i)
			}
			open := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			pairs = append(pairs, Pair{I: open, J: i})
		default:
			return nil, fmt.Errorf("dot-bracket: unexpected %q at %d", c, i)
		}
	}
	if len(stack) > 0 {
		return nil, fmt.Errorf("dot-bracket: unmatched '(' at %d", stack[len(stack)-1])
	}
	return pairs, nil
}

// DotBracket renders a pair list over a sequence of length n back into
// dot-bracket notation.
func DotBracket(n int, pairs []Pair) (string, error) {
	out := make([]byte, n)
	for i := range out {
		out[i] = '.'
	}
	for _, raw := range pairs {
		p := raw.canonical()
		if p.I < 0 || p.J >= n {
			return "", fmt.Errorf("dot-bracket: pair (%d,%d) out of range for length %d", p.I, p.J, n)
		}
		if out[p.I] != '.' || out[p.J] != '.' {
			return "", fmt.Errorf("dot-bracket: pair (%d,%d) reuses an index", p.I, p.J)
		}
		out[p.I] = '('
		out[p.J] = ')'
	}
	return string(out), nil
}
