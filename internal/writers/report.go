// internal/writers/report.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"hairpin/internal/engine"
	"hairpin/internal/jsonutil"
)

// SortReports orders reports deterministically by (SourceFile, ID).
func SortReports(reports []engine.Report) {
	sort.SliceStable(reports, func(a, b int) bool {
		if reports[a].SourceFile != reports[b].SourceFile {
			return reports[a].SourceFile < reports[b].SourceFile
		}
		return reports[a].ID < reports[b].ID
	})
}

const textHeader = "id\tlength\tstems\tloop\tmode\tenergy\ttier\twarn"

func init() {
	register("text", writeText)
	register("json", writeJSON)
	register("jsonl", writeJSONL)
}

func writeText(w io.Writer, reports []engine.Report, opt Options) error {
	if opt.Header {
		if _, err := fmt.Fprintln(w, textHeader); err != nil {
			return err
		}
	}
	for _, r := range reports {
		warn := "-"
		if r.ShouldWarn {
			warn = "WARN"
		}
		if _, err := fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%s\t%.2f\t%s\t%s\n",
			r.ID, r.Length, r.StemPairs, r.LoopLen, r.Mode, r.Energy, r.Tier, warn); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(w io.Writer, reports []engine.Report, _ Options) error {
	if reports == nil {
		reports = []engine.Report{}
	}
	return jsonutil.EncodePretty(w, reports)
}

func writeJSONL(w io.Writer, reports []engine.Report, _ Options) error {
	for _, r := range reports {
		if err := jsonutil.EncodeLine(w, r); err != nil {
			return err
		}
	}
	return nil
}
