package shor

import (
	"errors"

	"go.uber.org/zap"

	"github.com/katalvlaran/shorq/backend"
	"github.com/katalvlaran/shorq/period"
)

// Sentinel errors returned by the orchestrator.
var (
	// ErrBadModulus indicates N < 3.
	ErrBadModulus = errors.New("shor: modulus must be ≥ 3")

	// ErrNilRunner indicates a nil execution collaborator.
	ErrNilRunner = errors.New("shor: runner is nil")

	// ErrBadShots indicates a shot count below 1.
	ErrBadShots = errors.New("shor: shots must be ≥ 1")

	// ErrBadBase indicates an explicit base outside [2, N-1].
	ErrBadBase = errors.New("shor: base must lie in [2, N-1]")

	// ErrExhausted indicates that every candidate base was tried and
	// none produced factors — the aggregate failure of a run.
	ErrExhausted = errors.New("shor: all candidate bases exhausted without factors")
)

// Method records how a result was obtained.
//
// MethodPeriod – via the quantum order-finding pipeline.
// MethodGCD    – classically, from a base sharing a factor with N.
type Method int

const (
	// MethodPeriod marks factors recovered from measurement counts.
	MethodPeriod Method = iota

	// MethodGCD marks the lucky classical hit gcd(a, N) > 1.
	MethodGCD
)

// String returns a short human-readable method name.
func (m Method) String() string {
	switch m {
	case MethodPeriod:
		return "period"
	case MethodGCD:
		return "gcd"
	default:
		return "unknown"
	}
}

// Result is one successful factorization.
//
// N        – the factored modulus.
// Base     – the candidate base that produced the factors.
// Factors  – the nontrivial pair, Factors.P·Factors.Q == N.
// Method   – period-finding or classical gcd.
// Attempts – bases examined up to and including this one.
// Counts   – the measurement evidence behind a MethodPeriod result;
// nil for MethodGCD, where no circuit ever ran.
type Result struct {
	N        uint64
	Base     uint64
	Factors  period.FactorPair
	Method   Method
	Attempts int
	Counts   backend.Counts
}

// Options configures a run.
//
// Shots  – executions per circuit (default 1024). Must be ≥ 1.
// TopN   – highest-count outcomes handed to the extractor (default 5).
// Logger – structured logger; zap.NewNop() by default, so the library
// stays silent unless a caller opts in.
// Bases  – explicit candidate bases; empty means sweep 2..N-1 in order.
type Options struct {
	Shots  int
	TopN   int
	Logger *zap.Logger
	Bases  []uint64
}

// Option is a functional option for Factor and Sweep.
type Option func(*Options)

// WithShots sets the per-circuit shot count. Must be ≥ 1; invalid
// values panic, signaling a configuration bug at the call site.
func WithShots(shots int) Option {
	return func(o *Options) {
		if shots < 1 {
			panic(ErrBadShots.Error())
		}
		o.Shots = shots
	}
}

// WithTopN sets how many top outcomes the extractor examines.
func WithTopN(topN int) Option {
	return func(o *Options) {
		if topN < 1 {
			panic(period.ErrBadTopN.Error())
		}
		o.TopN = topN
	}
}

// WithLogger attaches a structured logger to the run.
func WithLogger(logger *zap.Logger) Option {
	return func(o *Options) {
		if logger != nil {
			o.Logger = logger
		}
	}
}

// WithBases restricts the search to an explicit base list, tried in
// the given order.
func WithBases(bases ...uint64) Option {
	return func(o *Options) {
		o.Bases = bases
	}
}

// DefaultOptions returns the defaults: 1024 shots, TopN 5, Nop logger,
// full 2..N-1 base sweep.
func DefaultOptions() Options {
	return Options{
		Shots:  1024,
		TopN:   5,
		Logger: zap.NewNop(),
	}
}
