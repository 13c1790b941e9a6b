// core/structure/structure.go
// Stem/loop/bulge/tail decomposition of a pre-computed base pairing.
// The pairing comes from an external folding oracle; this package only
// validates it and derives the geometry-facing description. It never
// predicts structure.
package structure

import (
	"fmt"
	"sort"
)

// Pair is an unordered base pair between two 0-based sequence
// positions. Canonical form has I < J.
type Pair struct {
	I int `json:"i"`
	J int `json:"j"`
}

// canonical returns p with I < J.
func (p Pair) canonical() Pair {
	if p.J < p.I {
		p.I, p.J = p.J, p.I
	}
	return p
}

// Span is the sequence distance enclosed by the pair.
func (p Pair) Span() int { return p.J - p.I }

// InvalidPairingError reports a pairing that cannot describe any
// physical structure: an out-of-range index, a base paired with
// itself, or an index used by more than one pair. It indicates a bug
// or corrupted data upstream, not a recoverable layout condition.
type InvalidPairingError struct {
	Index  int
	Reason string
}

func (e *InvalidPairingError) Error() string {
	return fmt.Sprintf("invalid pairing at index %d: %s", e.Index, e.Reason)
}

// Decomposition describes a pairing as a single hairpin: an ordered
// stem, the loop joining its strands, the unpaired tails, and the
// bulge runs between adjacent stem levels. Derived once per fold
// result and never mutated.
type Decomposition struct {
	// Stem lists all pairs sorted by left index ascending, which is
	// outermost-to-innermost order when the pairing nests.
	Stem []Pair

	// LoopStart/LoopEnd are the inclusive bounds of the region
	// enclosed by the innermost pair. LoopEnd < LoopStart when the
	// innermost pair closes on adjacent bases.
	LoopStart int
	LoopEnd   int

	// LoopLen is the loop size clamped to at least 1 so radius and
	// angular-step math never degenerates.
	LoopLen int

	// Tail5/Tail3 count unpaired bases before the first paired base
	// and after the last one.
	Tail5 int
	Tail3 int

	// Nested is false when the left-sorted pairs do not strictly nest
	// (crossing pairs, disjoint stems). Such pairings are only drawable
	// by the flat layout.
	Nested bool

	// gaps[p] holds the unpaired counts between stem levels p and p+1.
	gaps []gap
}

type gap struct {
	left  int
	right int
}

// LeftBulge returns the number of unpaired bases on the 5' strand
// strictly between stem levels p and p+1.
func (d *Decomposition) LeftBulge(p int) int { return d.gaps[p].left }

// RightBulge returns the number of unpaired bases on the 3' strand
// strictly between stem levels p and p+1.
func (d *Decomposition) RightBulge(p int) int { return d.gaps[p].right }

// SegmentHeight is the vertical extent, in layout units, of the stem
// segment between levels p and p+1. Always >= 1, so adjacent levels
// can never collide.
func (d *Decomposition) SegmentHeight(p int) int {
	l, r := d.gaps[p].left, d.gaps[p].right
	if r > l {
		l = r
	}
	return l + 1
}

// Innermost returns the innermost stem pair: minimal span, ties broken
// by the largest left index (the innermost-most in nesting order).
func (d *Decomposition) Innermost() Pair {
	best := d.Stem[0]
	for _, p := range d.Stem[1:] {
		if p.Span() < best.Span() || (p.Span() == best.Span() && p.I > best.I) {
			best = p
		}
	}
	return best
}

// Decompose validates pairs against a sequence of length n and derives
// the hairpin decomposition. It returns (nil, nil) for an empty
// pairing; the caller falls back to a linear layout. A malformed
// pairing yields an *InvalidPairingError.
func Decompose(n int, pairs []Pair) (*Decomposition, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	seen := make(map[int]bool, len(pairs)*2)
	stem := make([]Pair, 0, len(pairs))
	for _, raw := range pairs {
		p := raw.canonical()
		if p.I < 0 {
			return nil, &InvalidPairingError{Index: p.I, Reason: "negative index"}
		}
		if p.J >= n {
			return nil, &InvalidPairingError{Index: p.J, Reason: fmt.Sprintf("out of range for length %d", n)}
		}
		if p.I == p.J {
			return nil, &InvalidPairingError{Index: p.I, Reason: "base paired with itself"}
		}
		for _, idx := range [2]int{p.I, p.J} {
			if seen[idx] {
				return nil, &InvalidPairingError{Index: idx, Reason: "appears in more than one pair"}
			}
			seen[idx] = true
		}
		stem = append(stem, p)
	}

	sort.Slice(stem, func(a, b int) bool { return stem[a].I < stem[b].I })

	nested := true
	for k := 1; k < len(stem); k++ {
		if stem[k].J >= stem[k-1].J || stem[k].I <= stem[k-1].I {
			nested = false
			break
		}
	}

	d := &Decomposition{Stem: stem, Nested: nested}

	inner := d.Innermost()
	d.LoopStart = inner.I + 1
	d.LoopEnd = inner.J - 1
	d.LoopLen = d.LoopEnd - d.LoopStart + 1
	if d.LoopLen < 1 {
		d.LoopLen = 1
	}

	d.Tail5 = stem[0].I
	d.Tail3 = (n - 1) - lastPaired(stem)

	d.gaps = make([]gap, 0, len(stem)-1)
	for p := 0; p+1 < len(stem); p++ {
		d.gaps = append(d.gaps, gap{
			left:  unpairedBetween(seen, stem[p].I, stem[p+1].I),
			right: unpairedBetween(seen, stem[p+1].J, stem[p].J),
		})
	}
	return d, nil
}

// lastPaired returns the largest paired index.
func lastPaired(stem []Pair) int {
	max := stem[0].J
	for _, p := range stem[1:] {
		if p.J > max {
			max = p.J
		}
	}
	return max
}

// unpairedBetween counts indices strictly between lo and hi that are
// not a member of any pair.
func unpairedBetween(paired map[int]bool, lo, hi int) int {
	count := 0
	for k := lo + 1; k < hi; k++ {
		if !paired[k] {
			count++
		}
	}
	return count
}
