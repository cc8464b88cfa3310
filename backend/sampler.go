package backend

import (
	"context"
	"fmt"
	"math/bits"
	"math/rand"

	"github.com/pkg/errors"

	"github.com/katalvlaran/shorq/circuit"
	"github.com/katalvlaran/shorq/modmath"
)

// Sampler is a deterministic execution collaborator. It computes the
// true multiplicative order r of the program's base classically, then
// draws every shot from the ideal phase-estimation distribution: pick
// j uniformly in [0, r), emit the n-bit rounding of j·2^n/r.
//
// Fields:
//   - Seed  — rand source seed; identical seeds reproduce identical counts.
//   - Noise — per-shot probability of flipping one uniformly chosen bit
//     of the outcome, a crude stand-in for readout error. 0 disables.
//
// The zero value is a usable noiseless sampler with seed 0.
type Sampler struct {
	Seed  int64
	Noise float64
}

// Run implements Runner. All returned errors wrap ErrExecution: the
// sampler cannot model a base sharing a factor with the modulus (no
// order exists), and it honors context cancellation between shots.
func (s *Sampler) Run(ctx context.Context, prog *circuit.Program, shots int) (Counts, error) {
	if shots < 1 {
		return nil, errors.Wrap(ErrExecution, ErrBadShots.Error())
	}
	if prog == nil {
		return nil, errors.Wrap(ErrExecution, "nil program")
	}

	r, err := modmath.Order(prog.Base, prog.Modulus)
	if err != nil {
		return nil, errors.Wrap(ErrExecution, fmt.Sprintf("no order for base %d mod %d: %v", prog.Base, prog.Modulus, err))
	}

	n := prog.CountingQubits()
	if n < 1 || n > 63 {
		return nil, errors.Wrap(ErrExecution, fmt.Sprintf("counting register of %d bits outside the sampler's 1..63 range", n))
	}
	rng := rand.New(rand.NewSource(s.Seed))
	counts := make(Counts)

	for shot := 0; shot < shots; shot++ {
		if err = ctx.Err(); err != nil {
			return nil, errors.Wrap(ErrExecution, err.Error())
		}

		j := uint64(rng.Int63n(int64(r)))
		outcome := roundedPhase(j, r, n)
		if s.Noise > 0 && rng.Float64() < s.Noise {
			outcome ^= uint64(1) << rng.Intn(n)
		}
		counts[fmt.Sprintf("%0*b", n, outcome)]++
	}

	return counts, nil
}

// roundedPhase returns round(j·2^n / r) mod 2^n via a 128-bit
// intermediate, the nearest n-bit dyadic to the true phase j/r.
func roundedPhase(j, r uint64, n int) uint64 {
	hi, lo := bits.Mul64(j, uint64(1)<<n)
	lo, carry := bits.Add64(lo, r/2, 0)
	hi += carry
	q, _ := bits.Div64(hi, lo, r)

	mask := uint64(1)<<n - 1

	return q & mask
}
