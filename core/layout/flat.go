// core/layout/flat.go
package layout

import "math"

// Flat places every base on one horizontal baseline at uniform
// spacing. Pairs are drawn by the renderer as arcs above the baseline
// (see ArcHeight), so no nesting assumption is needed and any pairing
// shape is tolerated. This is also the linear fallback for sequences
// with no pairing at all.
func Flat(seq string, cfg Config) []Node {
	cfg = cfg.Normalized()
	n := len(seq)
	nodes := make([]Node, n)
	if n == 0 {
		return nodes
	}

	margin := cfg.UnitSpacing
	baseY := cfg.Height - 2*cfg.UnitSpacing
	step := 0.0
	if n > 1 {
		step = (cfg.Width - 2*margin) / float64(n-1)
	}
	for i := 0; i < n; i++ {
		nodes[i] = Node{Index: i, Base: baseAt(seq, i), X: margin + float64(i)*step, Y: baseY}
	}
	return nodes
}

// ArcHeight is the half-ellipse height a renderer should use for a
// pair of the given span under the flat layout: proportional to the
// span and capped so long-range pairs stay on canvas.
func ArcHeight(span int, cfg Config) float64 {
	cfg = cfg.Normalized()
	return math.Min(cfg.MaxArcHeight, float64(span)*cfg.PerBaseRadius)
}
