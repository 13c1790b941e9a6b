// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"hairpin/internal/cliutil"
	"hairpin/internal/version"
	"hairpin/internal/writers"
)

// Layout-mode names accepted by --layout.
const (
	LayoutAuto    = "auto"
	LayoutClassic = "classic"
	LayoutFlat    = "flat"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	SeqFiles  []string // Vienna file(s) or '-'
	Seq       string   // inline sequence
	Structure string   // inline dot-bracket
	Energy    float64  // inline ΔG (kcal/mol)
	ID        string   // label for the inline record

	// Engine
	CriticalWindow int
	Layout         string // auto | classic | flat

	// Geometry
	Width       float64
	Height      float64
	UnitSpacing float64
	StemWidth   float64

	// Performance
	Threads int

	// Output
	Output       string // text | json | jsonl | svg
	Nodes        bool
	Sort         bool
	Header       bool // true unless --no-header
	WarnExitCode int

	// Misc
	Quiet   bool
	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: hairpin diagram layout and 3'-risk screening

License: MIT
Version: %s

Reads RNAfold-style Vienna records (sequence + dot-bracket + optional
free energy) and reports, per record, the secondary-structure diagram
layout and whether the structure threatens the primer's 3' end.

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	// Input
	var seqFiles stringSlice
	fs.Var(&seqFiles, "sequences", "Vienna file(s) (repeatable or '-') [*]")
	fs.Var(&seqFiles, "s", "alias of --sequences")
	fs.StringVar(&opt.Seq, "seq", "", "inline sequence (5'→3') [*]")
	fs.StringVar(&opt.Structure, "structure", "", "inline dot-bracket for --seq")
	fs.Float64Var(&opt.Energy, "energy", 0, "inline ΔG in kcal/mol for --seq [0]")
	fs.StringVar(&opt.ID, "id", "inline", "record id for --seq [inline]")

	// Engine
	fs.IntVar(&opt.CriticalWindow, "critical-window", 10, "3' critical-region size in bases [10]")
	fs.StringVar(&opt.Layout, "layout", LayoutAuto, "layout strategy: auto | classic | flat [auto]")

	// Geometry
	fs.Float64Var(&opt.Width, "width", 0, "canvas width (0 = default 600) [0]")
	fs.Float64Var(&opt.Height, "height", 0, "canvas height (0 = default 800) [0]")
	fs.Float64Var(&opt.UnitSpacing, "unit-spacing", 0, "vertical step between stem levels (0 = default 34) [0]")
	fs.Float64Var(&opt.StemWidth, "stem-width", 0, "distance between stem rails (0 = default 90) [0]")

	// Performance
	fs.IntVar(&opt.Threads, "threads", 0, "worker threads (0 = all CPUs) [0]")
	fs.IntVar(&opt.Threads, "t", 0, "alias of --threads")

	// Output
	fs.StringVar(&opt.Output, "output", "text", "output format: text | json | jsonl | svg [text]")
	fs.StringVar(&opt.Output, "o", "text", "alias of --output")
	fs.BoolVar(&opt.Nodes, "nodes", false, "include layout nodes in json/jsonl output [false]")
	fs.BoolVar(&opt.Sort, "sort", false, "sort outputs deterministically (file, id) [false]")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in text output [false]")
	fs.IntVar(&opt.WarnExitCode, "warn-exit-code", 0, "exit code when any record warns [0]")

	// Misc
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress non-essential logging [false]")
	fs.BoolVar(&opt.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	// Positionals are additional sequence files, possibly globs.
	exp, err := cliutil.ExpandPositionals(fs.Args())
	if err != nil {
		return opt, err
	}
	opt.SeqFiles = append([]string(seqFiles), exp...)
	opt.Header = !noHeader

	// Validation
	usingFiles := len(opt.SeqFiles) > 0
	usingInline := opt.Seq != ""
	switch {
	case usingFiles && usingInline:
		return opt, errors.New("--seq conflicts with --sequences")
	case !usingFiles && !usingInline:
		return opt, errors.New("provide --sequences or --seq")
	}
	if opt.Structure != "" && opt.Seq == "" {
		return opt, errors.New("--structure requires --seq")
	}
	if opt.Structure != "" && len(opt.Structure) != len(strings.TrimSpace(opt.Seq)) {
		return opt, fmt.Errorf("--structure length %d does not match --seq length %d",
			len(opt.Structure), len(strings.TrimSpace(opt.Seq)))
	}
	if opt.Threads < 0 {
		return opt, errors.New("--threads must be ≥ 0")
	}
	if opt.CriticalWindow < 1 {
		return opt, errors.New("--critical-window must be ≥ 1")
	}
	switch opt.Layout {
	case LayoutAuto, LayoutClassic, LayoutFlat:
	default:
		return opt, fmt.Errorf("invalid --layout %q", opt.Layout)
	}
	if !writers.Known(opt.Output) {
		return opt, fmt.Errorf("invalid --output %q (have: %s)",
			opt.Output, strings.Join(writers.Formats(), ", "))
	}
	if opt.WarnExitCode < 0 || opt.WarnExitCode > 255 {
		return opt, errors.New("--warn-exit-code must be between 0 and 255")
	}
	return opt, nil
}

// stringSlice allows repeatable string flags.
type stringSlice []string

func (s *stringSlice) String() string     { return strings.Join(*s, ",") }
func (s *stringSlice) Set(v string) error { *s = append(*s, v); return nil }
