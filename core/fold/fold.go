// core/fold/fold.go
// Input contract for the external minimum-free-energy folding oracle.
// This package never folds anything itself; it guards oracle calls so
// downstream layout/risk code always receives a usable Result.
package fold

import (
	"context"
	"math"

	"hairpin-core/structure"
)

// MinLength is the shortest sequence worth folding. Anything shorter
// bypasses the oracle entirely and resolves to the zero Result.
const MinLength = 6

// Result is one fold of a sequence at one temperature. Energy is ΔG in
// kcal/mol; more negative means more stable. Immutable once produced.
type Result struct {
	Energy     float64          `json:"energy"`
	Pairs      []structure.Pair `json:"base_pairs"`
	Descriptor string           `json:"descriptor,omitempty"`
}

// Oracle produces a Result for (sequence, temperature). Implementations
// are expected to be expensive; wrap them in a Cache.
type Oracle interface {
	Fold(ctx context.Context, seq string, tempC float64) (Result, error)
}

// OracleFunc adapts a plain function to the Oracle interface.
type OracleFunc func(ctx context.Context, seq string, tempC float64) (Result, error)

func (f OracleFunc) Fold(ctx context.Context, seq string, tempC float64) (Result, error) {
	return f(ctx, seq, tempC)
}

// Run calls the oracle with the engine's guard rails: sequences
// shorter than MinLength short-circuit to the zero Result without
// touching the oracle, an oracle failure yields the zero Result
// alongside the error (so callers can log it as a data-quality signal
// and continue), and a NaN energy is normalized to 0.
func Run(ctx context.Context, o Oracle, seq string, tempC float64) (Result, error) {
	if len(seq) < MinLength || o == nil {
		return Result{}, nil
	}
	r, err := o.Fold(ctx, seq, tempC)
	if err != nil {
		return Result{}, err
	}
	return Sanitize(r), nil
}

// Sanitize normalizes an untrusted Result: NaN or infinite energy is
// treated as 0 (no credible structure).
func Sanitize(r Result) Result {
	if math.IsNaN(r.Energy) || math.IsInf(r.Energy, 0) {
		r.Energy = 0
	}
	return r
}
