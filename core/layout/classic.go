// core/layout/classic.go
package layout

import (
	"math"

	"hairpin-core/structure"
)

// Classic draws a nested hairpin: two vertical rails for the stem
// strands, a circular loop arc above the innermost pair, tails walking
// outward below the outermost pair, and bulges interpolated between
// their enclosing stem levels. Callers must pass a decomposition for
// which Choose returned ModeClassic; both bases of every stem pair end
// up on the same Y.
func Classic(seq string, d *structure.Decomposition, cfg Config) []Node {
	cfg = cfg.Normalized()
	n := len(seq)
	m := len(d.Stem)

	centerX := cfg.Width / 2
	leftX := centerX - cfg.StemWidth/2
	rightX := centerX + cfg.StemWidth/2

	radius := math.Max(cfg.MinRadius, float64(d.LoopLen)*cfg.PerBaseRadius)
	top := radius + cfg.UnitSpacing

	// Y per stem level, innermost up at top, each outer level pushed
	// down by its segment height.
	levelY := make([]float64, m)
	levelY[m-1] = top
	for p := m - 2; p >= 0; p-- {
		levelY[p] = levelY[p+1] + float64(d.SegmentHeight(p))*cfg.UnitSpacing
	}

	nodes := make([]Node, n)
	place := func(i int, x, y float64) {
		nodes[i] = Node{Index: i, Base: baseAt(seq, i), X: x, Y: y}
	}

	for p, pr := range d.Stem {
		place(pr.I, leftX, levelY[p])
		place(pr.J, rightX, levelY[p])
	}

	// Loop bases on a circular arc opening toward the stem. A
	// zero-length loop has no bases to place; LoopLen is already
	// clamped so the radius never degenerates.
	inner := d.Stem[m-1]
	count := inner.J - inner.I - 1
	for k := 0; k < count; k++ {
		theta := math.Pi - math.Pi*float64(k+1)/float64(count+1)
		place(inner.I+1+k,
			centerX+radius*math.Cos(theta),
			top-radius*math.Sin(theta))
	}

	// Tails walk outward along the rails below the outermost pair.
	outer := d.Stem[0]
	for k := 1; k <= d.Tail5; k++ {
		place(outer.I-k, leftX, levelY[0]+float64(k)*cfg.UnitSpacing)
	}
	for k := 1; k <= d.Tail3; k++ {
		place(outer.J+k, rightX, levelY[0]+float64(k)*cfg.UnitSpacing)
	}

	// Bulges between adjacent stem levels, linearly interpolated in Y.
	// The direction inverts between strands: on the 5' strand a larger
	// index is closer to the loop (Y shrinking), on the 3' strand a
	// larger index is further from it (Y growing).
	for p := 0; p+1 < m; p++ {
		a, b := d.Stem[p], d.Stem[p+1]
		yOuter, yInner := levelY[p], levelY[p+1]

		lcount := b.I - a.I - 1
		for t := 1; t <= lcount; t++ {
			f := float64(t) / float64(lcount+1)
			place(a.I+t, leftX, yOuter+(yInner-yOuter)*f)
		}

		rcount := a.J - b.J - 1
		for t := 1; t <= rcount; t++ {
			f := float64(t) / float64(rcount+1)
			place(b.J+t, rightX, yInner+(yOuter-yInner)*f)
		}
	}

	return nodes
}
