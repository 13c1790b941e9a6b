// internal/engine/engine.go
// Per-record analysis: fold result in, layout plus severity out. Pure
// glue over hairpin-core; holds no state between calls.
package engine

import (
	"fmt"

	"hairpin-core/fold"
	"hairpin-core/layout"
	"hairpin-core/risk"
	"hairpin-core/seq"
	"hairpin-core/structure"
)

// Layout-mode overrides accepted from the CLI.
const (
	ModeAuto    = "auto"
	ModeClassic = "classic"
	ModeFlat    = "flat"
)

// Config carries the caller-tunable knobs for one analysis run.
type Config struct {
	Layout         layout.Config
	Mode           string // auto | classic | flat
	CriticalWindow int    // 0 = risk.DefaultCriticalWindow
	IncludeNodes   bool   // attach the node list to reports
}

// Analyze validates the sequence, decomposes the pairing, lays the
// structure out and classifies the 3' risk. The returned error is
// fatal: a bad sequence or an *InvalidPairingError, both of which
// indicate corrupted upstream data.
func Analyze(id string, rawSeq string, fr fold.Result, cfg Config) (Report, error) {
	s, err := seq.Validate(rawSeq)
	if err != nil {
		return Report{}, fmt.Errorf("%s: %w", id, err)
	}
	if len(s) < fold.MinLength {
		// Too short to fold; documented default.
		fr = fold.Result{}
	}
	fr = fold.Sanitize(fr)

	dec, err := structure.Decompose(len(s), fr.Pairs)
	if err != nil {
		return Report{}, fmt.Errorf("%s: %w", id, err)
	}

	var (
		nodes []layout.Node
		mode  layout.Mode
	)
	switch cfg.Mode {
	case ModeClassic:
		// Forced classic still needs a drawable nested stem.
		if layout.Choose(dec) == layout.ModeClassic {
			nodes, mode = layout.Classic(s, dec, cfg.Layout), layout.ModeClassic
		} else {
			nodes, mode = layout.Flat(s, cfg.Layout), layout.ModeFlat
		}
	case ModeFlat:
		nodes, mode = layout.Flat(s, cfg.Layout), layout.ModeFlat
	default:
		nodes, mode = layout.Render(s, dec, cfg.Layout)
	}

	cls := risk.Classify(fr.Energy, fr.Pairs, len(s), cfg.CriticalWindow)

	rep := Report{
		ID:         id,
		Length:     len(s),
		Energy:     fr.Energy,
		Mode:       mode.String(),
		Tier:       cls.Tier.String(),
		Label:      cls.Label,
		Message:    cls.Message,
		ShouldWarn: cls.ShouldWarn,
		Pairs:      fr.Pairs,
	}
	if dec != nil {
		rep.StemPairs = len(dec.Stem)
		rep.LoopLen = dec.LoopLen
		rep.Tail5 = dec.Tail5
		rep.Tail3 = dec.Tail3
	}
	if cfg.IncludeNodes {
		rep.Nodes = nodes
	}
	rep.nodes = nodes
	return rep, nil
}
