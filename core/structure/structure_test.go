package structure

import (
	"errors"
	"sort"
	"testing"
)

// Five stacked pairs over a 20-mer: ((((( .......... )))))
func stackedPairs() []Pair {
	return []Pair{{0, 19}, {1, 18}, {2, 17}, {3, 16}, {4, 15}}
}

func TestDecompose(t *testing.T) {
	t.Run("empty pairing", func(t *testing.T) {
		d, err := Decompose(12, nil)
		if err != nil || d != nil {
			t.Fatalf("empty pairing should yield nil, nil; got %v, %v", d, err)
		}
	})

	t.Run("stacked hairpin", func(t *testing.T) {
		d, err := Decompose(20, stackedPairs())
		if err != nil {
			t.Fatalf("Decompose: %v", err)
		}
		if len(d.Stem) != 5 {
			t.Fatalf("stem pairs: got %d, want 5", len(d.Stem))
		}
		if d.LoopLen != 10 || d.LoopStart != 5 || d.LoopEnd != 14 {
			t.Fatalf("loop: got len=%d [%d,%d], want len=10 [5,14]", d.LoopLen, d.LoopStart, d.LoopEnd)
		}
		if d.Tail5 != 0 || d.Tail3 != 0 {
			t.Fatalf("tails: got %d/%d, want 0/0", d.Tail5, d.Tail3)
		}
		if !d.Nested {
			t.Fatalf("stacked pairs should be nested")
		}
		for p := 0; p+1 < len(d.Stem); p++ {
			if h := d.SegmentHeight(p); h != 1 {
				t.Fatalf("segment %d: height %d, want 1 (no bulges)", p, h)
			}
		}
	})

	t.Run("tails", func(t *testing.T) {
		d, err := Decompose(16, []Pair{{3, 12}, {4, 11}})
		if err != nil {
			t.Fatalf("Decompose: %v", err)
		}
		if d.Tail5 != 3 || d.Tail3 != 3 {
			t.Fatalf("tails: got %d/%d, want 3/3", d.Tail5, d.Tail3)
		}
	})

	t.Run("bulges and segment height", func(t *testing.T) {
		// Level 0 = (0,15); level 1 = (3,13): two unpaired on the left
		// strand (1,2), one on the right (14).
		d, err := Decompose(16, []Pair{{0, 15}, {3, 13}})
		if err != nil {
			t.Fatalf("Decompose: %v", err)
		}
		if got := d.LeftBulge(0); got != 2 {
			t.Fatalf("left bulge: got %d, want 2", got)
		}
		if got := d.RightBulge(0); got != 1 {
			t.Fatalf("right bulge: got %d, want 1", got)
		}
		if got := d.SegmentHeight(0); got != 3 {
			t.Fatalf("segment height: got %d, want max(2,1)+1 = 3", got)
		}
	})

	t.Run("zero length loop clamps to 1", func(t *testing.T) {
		d, err := Decompose(10, []Pair{{2, 7}, {4, 5}})
		if err != nil {
			t.Fatalf("Decompose: %v", err)
		}
		if d.LoopLen != 1 {
			t.Fatalf("loop len: got %d, want clamp to 1", d.LoopLen)
		}
	})

	t.Run("crossing pairs are not nested", func(t *testing.T) {
		d, err := Decompose(12, []Pair{{0, 6}, {3, 9}})
		if err != nil {
			t.Fatalf("Decompose: %v", err)
		}
		if d.Nested {
			t.Fatalf("crossing pairs must clear Nested")
		}
	})

	t.Run("disjoint stems are not nested", func(t *testing.T) {
		d, err := Decompose(20, []Pair{{0, 8}, {10, 18}})
		if err != nil {
			t.Fatalf("Decompose: %v", err)
		}
		if d.Nested {
			t.Fatalf("disjoint stems must clear Nested")
		}
	})
}

func TestDecomposeInnermostTieBreak(t *testing.T) {
	// (1,6) and (8,13) share the minimal span 5; the larger left index
	// wins, so the loop sits inside (8,13).
	d, err := Decompose(16, []Pair{{0, 15}, {1, 6}, {8, 13}})
	if err != nil {
		t.Fatalf("Decompose: %v", err)
	}
	inner := d.Innermost()
	if inner.I != 8 || inner.J != 13 {
		t.Fatalf("innermost: got (%d,%d), want (8,13)", inner.I, inner.J)
	}
	if d.LoopStart != 9 || d.LoopEnd != 12 {
		t.Fatalf("loop region: got [%d,%d], want [9,12]", d.LoopStart, d.LoopEnd)
	}
}

func TestDecomposeStemOrderRoundTrip(t *testing.T) {
	// Re-sorting the stem by left index must reproduce the stored
	// nesting order exactly.
	d, err := Decompose(20, []Pair{{4, 15}, {0, 19}, {2, 17}, {1, 18}, {3, 16}})
	if err != nil {
		t.Fatalf("Decompose: %v", err)
	}
	resorted := append([]Pair(nil), d.Stem...)
	sort.Slice(resorted, func(a, b int) bool { return resorted[a].I < resorted[b].I })
	for k := range resorted {
		if resorted[k] != d.Stem[k] {
			t.Fatalf("stem order not stable at %d: %v vs %v", k, resorted[k], d.Stem[k])
		}
	}
	for k := 1; k < len(d.Stem); k++ {
		if d.Stem[k].I <= d.Stem[k-1].I {
			t.Fatalf("stem not sorted by left index at %d", k)
		}
	}
}

func TestDecomposeInvalid(t *testing.T) {
	cases := []struct {
		name  string
		n     int
		pairs []Pair
	}{
		{"self pair", 8, []Pair{{3, 3}}},
		{"duplicate index", 12, []Pair{{2, 5}, {2, 9}}},
		{"shared right index", 12, []Pair{{2, 9}, {4, 9}}},
		{"out of range", 8, []Pair{{0, 8}}},
		{"negative", 8, []Pair{{-1, 4}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decompose(tc.n, tc.pairs)
			var ipe *InvalidPairingError
			if !errors.As(err, &ipe) {
				t.Fatalf("want *InvalidPairingError, got %v", err)
			}
		})
	}
}

func TestDecomposeCanonicalizesPairs(t *testing.T) {
	d, err := Decompose(10, []Pair{{9, 0}})
	if err != nil {
		t.Fatalf("Decompose: %v", err)
	}
	if d.Stem[0].I != 0 || d.Stem[0].J != 9 {
		t.Fatalf("pair not canonicalized: %v", d.Stem[0])
	}
}
