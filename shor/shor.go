package shor

import (
	"context"

	pkgerrors "github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/shorq/backend"
	"github.com/katalvlaran/shorq/circuit"
	"github.com/katalvlaran/shorq/modmath"
	"github.com/katalvlaran/shorq/period"
)

// Factor — stop-at-first-success factorization
//
// Description:
//
//	Tries candidate bases in order (2..N-1 unless WithBases narrows the
//	list). A base sharing a factor with N short-circuits classically;
//	a coprime base goes through circuit → runner → extraction. The
//	first base producing a factor pair wins.
//
// Errors:
//   - ErrBadModulus / ErrBadBase / ErrNilRunner for invalid setup.
//   - ErrExhausted when every base was tried without success.
//   - Collaborator failures propagate unchanged (they wrap
//     backend.ErrExecution); the orchestrator never retries.
func Factor(ctx context.Context, N uint64, runner backend.Runner, opts ...Option) (Result, error) {
	var zero Result

	o, err := buildOptions(N, runner, opts)
	if err != nil {
		return zero, err
	}

	attempts := 0
	for _, a := range candidateBases(N, o) {
		attempts++
		res, ok, err := tryBase(ctx, N, a, runner, &o)
		if err != nil {
			return zero, err
		}
		if ok {
			res.Attempts = attempts

			return res, nil
		}
	}

	return zero, ErrExhausted
}

// Sweep — full-sweep factorization
//
// Description:
//
//	Like Factor, but never stops early: every candidate base is tried
//	and every success collected. Useful for studying how many bases of
//	a given N actually yield factors under a given shot budget.
//
// Errors: as Factor; ErrExhausted when the sweep ends with no success.
func Sweep(ctx context.Context, N uint64, runner backend.Runner, opts ...Option) ([]Result, error) {
	o, err := buildOptions(N, runner, opts)
	if err != nil {
		return nil, err
	}

	var results []Result
	attempts := 0
	for _, a := range candidateBases(N, o) {
		attempts++
		res, ok, err := tryBase(ctx, N, a, runner, &o)
		if err != nil {
			return nil, err
		}
		if ok {
			res.Attempts = attempts
			results = append(results, res)
		}
	}
	if len(results) == 0 {
		return nil, ErrExhausted
	}

	return results, nil
}

// buildOptions validates the run setup and applies functional options.
func buildOptions(N uint64, runner backend.Runner, opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if N < 3 {
		return o, ErrBadModulus
	}
	if runner == nil {
		return o, ErrNilRunner
	}
	for _, a := range o.Bases {
		if a < 2 || a > N-1 {
			return o, ErrBadBase
		}
	}

	return o, nil
}

// candidateBases returns the explicit base list, or the full 2..N-1
// sweep when none was given.
func candidateBases(N uint64, o Options) []uint64 {
	if len(o.Bases) > 0 {
		return o.Bases
	}

	bases := make([]uint64, 0, N-2)
	for a := uint64(2); a < N; a++ {
		bases = append(bases, a)
	}

	return bases
}

// tryBase runs one (N, a) cycle: gcd fast path, then circuit → runner
// → extraction. ok=false means the base yielded nothing — a normal,
// silent outcome.
func tryBase(ctx context.Context, N, a uint64, runner backend.Runner, o *Options) (Result, bool, error) {
	var zero Result

	// Coprimality boundary check (the core packages leave it to us):
	// a shared factor is already the answer, no quantum step needed.
	if g := modmath.GCD(a, N); g != 1 {
		o.Logger.Info("classical factor via gcd",
			zap.Uint64("modulus", N),
			zap.Uint64("base", a),
			zap.Uint64("gcd", g))

		return Result{
			N:       N,
			Base:    a,
			Factors: period.FactorPair{P: g, Q: N / g},
			Method:  MethodGCD,
		}, true, nil
	}

	prog, err := circuit.BuildOrderCircuit(N, a)
	if err != nil {
		return zero, false, err
	}

	counts, err := runner.Run(ctx, prog, o.Shots)
	if err != nil {
		return zero, false, err
	}
	if err = counts.Validate(o.Shots); err != nil {
		return zero, false, pkgerrors.Wrap(backend.ErrExecution, err.Error())
	}

	extractOpts := period.Options{TopN: o.TopN}
	pair, ok, err := period.ExtractFactors(N, a, counts, &extractOpts)
	if err != nil {
		return zero, false, err
	}
	if !ok {
		o.Logger.Debug("base yielded no factors",
			zap.Uint64("modulus", N),
			zap.Uint64("base", a),
			zap.Int("outcomes", len(counts)))

		return zero, false, nil
	}

	o.Logger.Info("factors recovered",
		zap.Uint64("modulus", N),
		zap.Uint64("base", a),
		zap.Uint64("p", pair.P),
		zap.Uint64("q", pair.Q))

	return Result{
		N:       N,
		Base:    a,
		Factors: pair,
		Method:  MethodPeriod,
		Counts:  counts,
	}, true, nil
}
