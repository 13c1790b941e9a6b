// core/layout/layout.go
// 2D embedding of a folded sequence for diagramming. Two strategies
// share one contract: the classic hairpin layout for simple nested
// stems, and a flat arc layout that tolerates any topology. Both are
// pure and deterministic; identical inputs produce bit-identical
// coordinates.
package layout

import "hairpin-core/structure"

// Node is the placed position of one base. Exactly one Node exists per
// sequence index, in index order.
type Node struct {
	Index int     `json:"index"`
	Base  string  `json:"base"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

// Config holds the caller-supplied geometry knobs. Zero fields take
// the documented defaults.
type Config struct {
	Width  float64 // canvas width
	Height float64 // canvas height

	UnitSpacing   float64 // vertical step between stem levels and tail bases
	StemWidth     float64 // horizontal distance between the two stem rails
	MinRadius     float64 // smallest loop radius
	PerBaseRadius float64 // loop radius contribution per loop base
	MaxArcHeight  float64 // cap for flat-layout arc heights
}

// DefaultConfig returns the reference geometry.
func DefaultConfig() Config {
	return Config{
		Width:         600,
		Height:        800,
		UnitSpacing:   34,
		StemWidth:     90,
		MinRadius:     50,
		PerBaseRadius: 18,
		MaxArcHeight:  160,
	}
}

// Normalized returns c with every zero field replaced by its default.
func (c Config) Normalized() Config {
	d := DefaultConfig()
	if c.Width <= 0 {
		c.Width = d.Width
	}
	if c.Height <= 0 {
		c.Height = d.Height
	}
	if c.UnitSpacing <= 0 {
		c.UnitSpacing = d.UnitSpacing
	}
	if c.StemWidth <= 0 {
		c.StemWidth = d.StemWidth
	}
	if c.MinRadius <= 0 {
		c.MinRadius = d.MinRadius
	}
	if c.PerBaseRadius <= 0 {
		c.PerBaseRadius = d.PerBaseRadius
	}
	if c.MaxArcHeight <= 0 {
		c.MaxArcHeight = d.MaxArcHeight
	}
	return c
}

// Mode tags which layout strategy produced a node list.
type Mode int

const (
	ModeFlat Mode = iota
	ModeClassic
)

func (m Mode) String() string {
	if m == ModeClassic {
		return "classic"
	}
	return "flat"
}

// Stem-count bounds for the classic layout. Above the upper bound
// per-base labels collide at fixed stem width; below the lower bound
// there is no loop worth drawing.
const (
	minClassicStems = 2
	maxClassicStems = 15
)

// Choose picks the layout strategy for a decomposition. Classic
// requires a nested stem of 2 to 15 pairs; everything else, including
// the absent decomposition of an unpaired sequence, draws flat.
func Choose(d *structure.Decomposition) Mode {
	if d == nil || !d.Nested {
		return ModeFlat
	}
	if n := len(d.Stem); n < minClassicStems || n > maxClassicStems {
		return ModeFlat
	}
	return ModeClassic
}

// Render lays out seq under the strategy Choose selects and reports
// which one ran.
func Render(seq string, d *structure.Decomposition, cfg Config) ([]Node, Mode) {
	if Choose(d) == ModeClassic {
		return Classic(seq, d, cfg), ModeClassic
	}
	return Flat(seq, cfg), ModeFlat
}

func baseAt(seq string, i int) string { return seq[i : i+1] }
