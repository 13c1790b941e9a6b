// internal/engine/report.go
package engine

import (
	"hairpin-core/layout"
	"hairpin-core/structure"
)

// Report is the renderer-facing summary of one analyzed record.
type Report struct {
	ID         string  `json:"id"`
	SourceFile string  `json:"source_file,omitempty"`
	Length     int     `json:"length"`
	Energy     float64 `json:"energy"`
	StemPairs  int     `json:"stem_pairs"`
	LoopLen    int     `json:"loop_len,omitempty"`
	Tail5      int     `json:"tail5,omitempty"`
	Tail3      int     `json:"tail3,omitempty"`
	Mode       string  `json:"mode"`
	Tier       string  `json:"tier"`
	Label      string  `json:"label"`
	Message    string  `json:"message,omitempty"`
	ShouldWarn bool    `json:"should_warn"`

	// Nodes is populated only when the caller asked for geometry in
	// the serialized output.
	Nodes []layout.Node    `json:"nodes,omitempty"`
	Pairs []structure.Pair `json:"base_pairs,omitempty"`

	// nodes always carries the geometry for in-process consumers (the
	// SVG renderer), independent of the serialization flag.
	nodes []layout.Node
}

// Geometry returns the full node list regardless of whether the report
// serializes it.
func (r Report) Geometry() []layout.Node { return r.nodes }
