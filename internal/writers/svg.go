// internal/writers/svg.go
package writers

import (
	"io"

	"hairpin/internal/engine"
	"hairpin/internal/render"
)

func init() {
	register("svg", func(w io.Writer, reports []engine.Report, opt Options) error {
		return render.Write(w, reports, opt.Layout)
	})
}
