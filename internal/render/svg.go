// internal/render/svg.go
// SVG reference renderer for the node-list contract: labeled points,
// a backbone polyline, pair rungs or arcs, and a severity banner. Any
// renderer able to do the same satisfies the contract; this one exists
// so the CLI has a drawable output format.
package render

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"

	"hairpin-core/layout"
	"hairpin/internal/engine"
)

var tierColor = map[string]string{
	"none":     "#7f8c8d",
	"info":     "#2980b9",
	"low":      "#27ae60",
	"moderate": "#f39c12",
	"warning":  "#e67e22",
	"critical": "#c0392b",
}

const (
	nodeRadius = 9
	bannerH    = 28
)

// Write renders every report as a vertically stacked panel in one SVG
// document.
func Write(w io.Writer, reports []engine.Report, cfg layout.Config) error {
	cfg = cfg.Normalized()
	width := int(cfg.Width)
	panelH := int(cfg.Height)

	n := len(reports)
	if n == 0 {
		n = 1
	}
	canvas := svg.New(w)
	canvas.Start(width, panelH*n)
	for i, rep := range reports {
		canvas.Gtransform(fmt.Sprintf("translate(0,%d)", i*panelH))
		panel(canvas, rep, cfg)
		canvas.Gend()
	}
	canvas.End()
	return nil
}

func panel(canvas *svg.SVG, rep engine.Report, cfg layout.Config) {
	nodes := rep.Geometry()

	banner(canvas, rep)

	// Backbone first so bases draw on top of it.
	if len(nodes) > 1 {
		xs := make([]int, len(nodes))
		ys := make([]int, len(nodes))
		for k, nd := range nodes {
			xs[k] = px(nd.X)
			ys[k] = px(nd.Y) + bannerH
		}
		canvas.Polyline(xs, ys, "fill:none;stroke:#bdc3c7;stroke-width:2")
	}

	for _, p := range rep.Pairs {
		i, j := p.I, p.J
		if j < i {
			i, j = j, i
		}
		if i < 0 || j >= len(nodes) {
			continue
		}
		a, b := nodes[i], nodes[j]
		if rep.Mode == "classic" {
			canvas.Line(px(a.X), px(a.Y)+bannerH, px(b.X), px(b.Y)+bannerH,
				"stroke:#34495e;stroke-width:2")
		} else {
			h := layout.ArcHeight(j-i, cfg)
			rx := math.Abs(b.X-a.X) / 2
			canvas.Path(fmt.Sprintf("M %d %d A %d %d 0 0 1 %d %d",
				px(a.X), px(a.Y)+bannerH, px(rx), px(h), px(b.X), px(b.Y)+bannerH),
				"fill:none;stroke:#34495e;stroke-width:1.5")
		}
	}

	for _, nd := range nodes {
		x, y := px(nd.X), px(nd.Y)+bannerH
		canvas.Circle(x, y, nodeRadius, "fill:#ecf0f1;stroke:#95a5a6;stroke-width:1")
		canvas.Text(x, y+4, nd.Base,
			"text-anchor:middle;font-family:monospace;font-size:11px;fill:#2c3e50")
	}
}

func banner(canvas *svg.SVG, rep engine.Report) {
	color, ok := tierColor[rep.Tier]
	if !ok {
		color = tierColor["none"]
	}
	canvas.Text(10, 18,
		fmt.Sprintf("%s  [%s]  dG=%.2f kcal/mol  %s", rep.ID, rep.Mode, rep.Energy, rep.Label),
		"font-family:monospace;font-size:13px;fill:"+color)
}

func px(v float64) int { return int(math.Round(v)) }
