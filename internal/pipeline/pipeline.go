// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"hairpin-core/fold"
	"hairpin-core/structure"
	"hairpin/internal/engine"
	"hairpin/internal/vienna"
)

// Config controls the analysis pipeline.
type Config struct {
	Threads int // worker goroutines; 0 = all CPUs
	Engine  engine.Config
	Log     *slog.Logger // nil = discard
}

type job struct {
	rec        vienna.Record
	sourceFile string
}

// AnalyzeRecord turns one Vienna record into a Report: the dot-bracket
// line (when present) is the precomputed oracle output for the record.
func AnalyzeRecord(rec vienna.Record, sourceFile string, cfg engine.Config) (engine.Report, error) {
	var fr fold.Result
	if rec.Structure != "" {
		pairs, err := structure.ParseDotBracket(rec.Structure)
		if err != nil {
			return engine.Report{}, err
		}
		fr.Pairs = pairs
	}
	if rec.HasEnergy {
		fr.Energy = rec.Energy
	}
	rep, err := engine.Analyze(rec.ID, rec.Seq, fr, cfg)
	if err != nil {
		return engine.Report{}, err
	}
	rep.SourceFile = sourceFile
	return rep, nil
}

// ForEachReport streams analyzed Reports from the given Vienna files
// to visit. Workers run concurrently; visit is called from a single
// goroutine. The first error, including a malformed record or an
// *InvalidPairingError, cancels the run and is returned.
func ForEachReport(ctx context.Context, cfg Config, files []string, visit func(engine.Report) error) error {
	threads := cfg.Threads
	if threads < 1 {
		threads = runtime.NumCPU()
	}
	log := cfg.Log
	if log == nil {
		log = slog.New(discardHandler{})
	}

	jobs := make(chan job, threads*2)
	results := make(chan engine.Report, threads*2)

	g, gctx := errgroup.WithContext(ctx)

	for w := 0; w < threads; w++ {
		g.Go(func() error {
			for j := range jobs {
				rep, err := AnalyzeRecord(j.rec, j.sourceFile, cfg.Engine)
				if err != nil {
					return err
				}
				log.Debug("analyzed", "id", rep.ID, "mode", rep.Mode, "tier", rep.Tier)
				select {
				case results <- rep:
				case <-gctx.Done():
					return gctx.Err()
				}
			}
			return nil
		})
	}

	g.Go(func() error {
		defer close(jobs)
		for _, path := range files {
			log.Debug("reading", "file", path)
			err := vienna.ForEach(gctx, path, func(rec vienna.Record) error {
				select {
				case jobs <- job{rec: rec, sourceFile: path}:
					return nil
				case <-gctx.Done():
					return gctx.Err()
				}
			})
			if err != nil {
				return err
			}
		}
		return nil
	})

	done := make(chan error, 1)
	go func() {
		err := g.Wait()
		close(results)
		done <- err
	}()

	var verr error
	for rep := range results {
		if verr != nil {
			continue
		}
		verr = visit(rep)
	}
	if err := <-done; err != nil {
		return err
	}
	return verr
}

// discardHandler drops every record; cheaper than a JSON handler on
// io.Discard for the hot per-record Debug calls.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (d discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discardHandler) WithGroup(string) slog.Handler           { return d }
