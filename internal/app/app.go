// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"

	"hairpin-core/layout"
	"hairpin-core/structure"
	"hairpin/internal/cli"
	"hairpin/internal/engine"
	"hairpin/internal/pipeline"
	"hairpin/internal/version"
	"hairpin/internal/vienna"
	"hairpin/internal/writers"
)

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("hairpin")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		fs.SetOutput(outw)
		fs.Usage()
		return flushCode(outw, stderr, 0)
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return flushCode(outw, stderr, 0)
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		return flushCode(outw, stderr, 2)
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "hairpin version %s\n", version.Version)
		return flushCode(outw, stderr, 0)
	}

	var log *slog.Logger
	if !opts.Quiet {
		log = slog.New(slog.NewTextHandler(stderr, nil))
	}

	engCfg := engine.Config{
		Layout: layout.Config{
			Width:       opts.Width,
			Height:      opts.Height,
			UnitSpacing: opts.UnitSpacing,
			StemWidth:   opts.StemWidth,
		},
		Mode:           opts.Layout,
		CriticalWindow: opts.CriticalWindow,
		IncludeNodes:   opts.Nodes,
	}

	in, writeErr := writers.Start(outw, opts.Output, writers.Options{
		Header: opts.Header,
		Sort:   opts.Sort,
		Layout: engCfg.Layout,
	}, 0)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	warned := false
	visit := func(rep engine.Report) error {
		if rep.ShouldWarn {
			warned = true
		}
		select {
		case in <- rep:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	var perr error
	if opts.Seq != "" {
		rec := vienna.Record{
			ID:        opts.ID,
			Seq:       opts.Seq,
			Structure: opts.Structure,
			Energy:    opts.Energy,
			HasEnergy: true,
		}
		var rep engine.Report
		if rep, perr = pipeline.AnalyzeRecord(rec, "", engCfg); perr == nil {
			perr = visit(rep)
		}
	} else {
		perr = pipeline.ForEachReport(ctx, pipeline.Config{
			Threads: opts.Threads,
			Engine:  engCfg,
			Log:     log,
		}, opts.SeqFiles, visit)
	}

	close(in)

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return 0
	} else if werr != nil {
		_, _ = fmt.Fprintln(stderr, werr)
		return 3
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return 3
	}

	if perr != nil {
		if errors.Is(perr, context.Canceled) {
			return 130
		}
		_, _ = fmt.Fprintln(stderr, perr)
		var ipe *structure.InvalidPairingError
		if errors.As(perr, &ipe) {
			return 2
		}
		return 3
	}

	if warned {
		return opts.WarnExitCode
	}
	return 0
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// flushCode flushes outw and folds flush failures into the exit code.
func flushCode(outw *bufio.Writer, stderr io.Writer, code int) int {
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return 0
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return code
}
