package engine

import (
	"errors"
	"testing"

	"hairpin-core/fold"
	"hairpin-core/structure"
)

func stacked5() []structure.Pair {
	return []structure.Pair{{I: 0, J: 19}, {I: 1, J: 18}, {I: 2, J: 17}, {I: 3, J: 16}, {I: 4, J: 15}}
}

func TestAnalyzeClassic(t *testing.T) {
	rep, err := Analyze("hp1", "gggggaaaaaaaaaaccccc", fold.Result{Energy: -5.2, Pairs: stacked5()}, Config{})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if rep.Mode != "classic" || rep.StemPairs != 5 || rep.LoopLen != 10 {
		t.Fatalf("unexpected report: %+v", rep)
	}
	if rep.Tier != "critical" || !rep.ShouldWarn {
		t.Fatalf("a -5.2 stem on the 3' end must be critical: %+v", rep)
	}
	nodes := rep.Geometry()
	if len(nodes) != 20 {
		t.Fatalf("geometry: %d nodes", len(nodes))
	}
	if nodes[0].Y != nodes[19].Y || nodes[4].Y != nodes[15].Y {
		t.Fatalf("paired bases must share Y")
	}
	if rep.Nodes != nil {
		t.Fatalf("nodes must not serialize unless asked")
	}
}

func TestAnalyzeIncludeNodes(t *testing.T) {
	rep, err := Analyze("hp1", "GGGGGAAAAAAAAAACCCCC", fold.Result{Energy: -2, Pairs: stacked5()}, Config{IncludeNodes: true})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if len(rep.Nodes) != 20 {
		t.Fatalf("want serialized nodes, got %d", len(rep.Nodes))
	}
}

func TestAnalyzeUnpaired(t *testing.T) {
	rep, err := Analyze("lin", "ACGTACGTACGT", fold.Result{}, Config{})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if rep.Mode != "flat" || rep.StemPairs != 0 || rep.Tier != "none" {
		t.Fatalf("unexpected report: %+v", rep)
	}
	if len(rep.Geometry()) != 12 {
		t.Fatalf("flat fallback must still place every base")
	}
}

func TestAnalyzeShortSequence(t *testing.T) {
	// Anything under 6 bases resolves to the zero fold even when the
	// caller hands in a pairing.
	rep, err := Analyze("tiny", "ACGTA", fold.Result{Energy: -9, Pairs: []structure.Pair{{I: 0, J: 4}}}, Config{})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if rep.Energy != 0 || rep.StemPairs != 0 || rep.Tier != "none" {
		t.Fatalf("short sequence must short-circuit: %+v", rep)
	}
}

func TestAnalyzeForcedMode(t *testing.T) {
	fr := fold.Result{Energy: -3, Pairs: stacked5()}
	rep, err := Analyze("hp", "GGGGGAAAAAAAAAACCCCC", fr, Config{Mode: ModeFlat})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if rep.Mode != "flat" {
		t.Fatalf("forced flat ignored: %+v", rep)
	}
	// Forced classic falls back to flat when nothing is drawable.
	rep, err = Analyze("lin", "ACGTACGTACGT", fold.Result{}, Config{Mode: ModeClassic})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if rep.Mode != "flat" {
		t.Fatalf("forced classic without a stem must fall back: %+v", rep)
	}
}

func TestAnalyzeInvalidInput(t *testing.T) {
	if _, err := Analyze("bad", "ACGXACGT", fold.Result{}, Config{}); err == nil {
		t.Fatalf("invalid base must fail")
	}
	_, err := Analyze("bad", "ACGTACGT", fold.Result{Pairs: []structure.Pair{{I: 3, J: 3}}}, Config{})
	var ipe *structure.InvalidPairingError
	if !errors.As(err, &ipe) {
		t.Fatalf("want *InvalidPairingError, got %v", err)
	}
}
