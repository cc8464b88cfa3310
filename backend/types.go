package backend

import (
	"context"
	"errors"

	"github.com/katalvlaran/shorq/circuit"
)

// Sentinel errors returned by this package.
var (
	// ErrExecution is the failure category for the execution step.
	// Every error a Runner returns must wrap it.
	ErrExecution = errors.New("backend: execution failed")

	// ErrBadShots indicates a shot count below 1.
	ErrBadShots = errors.New("backend: shots must be ≥ 1")

	// ErrNoCounts indicates an empty count mapping.
	ErrNoCounts = errors.New("backend: count mapping is empty")

	// ErrShotSum indicates counts whose values do not sum to the
	// requested number of shots.
	ErrShotSum = errors.New("backend: counts do not sum to shots")

	// ErrNegativeCount indicates a negative occurrence count.
	ErrNegativeCount = errors.New("backend: negative occurrence count")

	// ErrRaggedKeys indicates bitstring keys of unequal length.
	ErrRaggedKeys = errors.New("backend: bitstring keys have unequal lengths")

	// ErrNonBinaryKey indicates a key containing characters other than
	// '0' and '1'.
	ErrNonBinaryKey = errors.New("backend: bitstring key is not binary")
)

// Counts maps fixed-length measurement bitstrings to nonnegative
// occurrence counts. Key order is irrelevant; values sum to the shot
// count of the run that produced them.
type Counts map[string]int

// Total returns the sum of all occurrence counts.
func (c Counts) Total() int {
	total := 0
	for _, v := range c {
		total += v
	}

	return total
}

// Width returns the length of an arbitrary key, or 0 for an empty
// mapping. Meaningful only for validated (uniform-width) counts.
func (c Counts) Width() int {
	for k := range c {
		return len(k)
	}

	return 0
}

// Validate checks the collaborator postconditions: non-empty mapping,
// nonnegative values summing to shots, and uniform binary keys.
//
// Errors: ErrNoCounts, ErrNegativeCount, ErrShotSum, ErrRaggedKeys,
// ErrNonBinaryKey.
func (c Counts) Validate(shots int) error {
	if len(c) == 0 {
		return ErrNoCounts
	}

	width, total := -1, 0
	for k, v := range c {
		if v < 0 {
			return ErrNegativeCount
		}
		total += v
		if width == -1 {
			width = len(k)
		} else if len(k) != width {
			return ErrRaggedKeys
		}
		for _, ch := range k {
			if ch != '0' && ch != '1' {
				return ErrNonBinaryKey
			}
		}
	}
	if total != shots {
		return ErrShotSum
	}

	return nil
}

// Runner executes a compiled program for a number of shots and returns
// the measurement counts. Implementations own compilation, transport
// and hardware selection; the returned error must wrap ErrExecution.
type Runner interface {
	Run(ctx context.Context, prog *circuit.Program, shots int) (Counts, error)
}

// RunnerFunc adapts a plain function to the Runner interface.
type RunnerFunc func(ctx context.Context, prog *circuit.Program, shots int) (Counts, error)

// Run implements Runner.
func (f RunnerFunc) Run(ctx context.Context, prog *circuit.Program, shots int) (Counts, error) {
	return f(ctx, prog, shots)
}
