package period

import (
	"sort"
	"strconv"

	"github.com/katalvlaran/shorq/backend"
	"github.com/katalvlaran/shorq/modmath"
)

// outcome is one ranked measurement result.
type outcome struct {
	key   string
	count int
	value uint64
}

// ExtractFactors — order recovery and factor derivation
//
// Description:
//
//	Derives a candidate multiplicative order r of a modulo N from the
//	TopN highest-count outcomes (phase → bounded rational, denominator
//	kept), then attempts gcd(a^(r/2) ± 1, N) on each even candidate in
//	rank order. Returns the first surviving pair.
//
// Returns:
//   - (pair, true, nil)  — pair.P·pair.Q == N, both > 1.
//   - (zero, false, nil) — no candidate survived; normal outcome, the
//     caller should move on to the next base.
//   - (zero, false, err) — malformed input (sentinels in types.go).
//
// Ties in the ranking are broken by ascending bitstring, which keeps
// runs reproducible; the order among equal counts carries no meaning
// since every selected candidate is tried anyway.
//
// Determinism: pure function of its inputs.
func ExtractFactors(N, a uint64, counts backend.Counts, opts *Options) (FactorPair, bool, error) {
	var zero FactorPair

	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if N < 3 {
		return zero, false, ErrBadModulus
	}
	if a < 2 || a > N-1 {
		return zero, false, ErrBadBase
	}
	if o.TopN < 1 {
		return zero, false, ErrBadTopN
	}
	if len(counts) == 0 {
		return zero, false, ErrEmptyCounts
	}

	ranked, width, err := rank(counts)
	if err != nil {
		return zero, false, err
	}
	if len(ranked) > o.TopN {
		ranked = ranked[:o.TopN]
	}

	den := uint64(1) << width
	for _, m := range ranked {
		_, r := modmath.BestRational(m.value, den, N)
		if r <= 1 || r%2 != 0 {
			// Denominator 1 carries no phase information; odd orders
			// leave a^(r/2) undefined over the integers.
			continue
		}
		if pair, ok := deriveFactors(N, a, r); ok {
			return pair, true, nil
		}
	}

	return zero, false, nil
}

// rank parses, validates and orders the count mapping: count
// descending, then bitstring ascending.
func rank(counts backend.Counts) ([]outcome, int, error) {
	ranked := make([]outcome, 0, len(counts))
	width := -1
	for k, c := range counts {
		if width == -1 {
			width = len(k)
		} else if len(k) != width {
			return nil, 0, ErrBadBitstring
		}
		v, err := strconv.ParseUint(k, 2, 64)
		if err != nil || len(k) == 0 {
			return nil, 0, ErrBadBitstring
		}
		ranked = append(ranked, outcome{key: k, count: c, value: v})
	}
	if width > 63 {
		return nil, 0, ErrWidthOverflow
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}

		return ranked[i].key < ranked[j].key
	})

	return ranked, width, nil
}

// deriveFactors attempts the gcd construction for an even candidate
// order r. Acceptance ladder:
//
//	1. both gcds nontrivial and multiplying back to N;
//	2. gcd(x-1, N) > 1, prime, dividing N → pair (f, N/f);
//	3. gcd(x+1, N) > 1, prime, dividing N → pair (N/f, f).
func deriveFactors(N, a, r uint64) (FactorPair, bool) {
	x := modmath.ModPow(a, r/2, N)

	// gcd(x-1, N): for x == 0 the textbook expression is gcd(-1, N) = 1.
	f1 := uint64(1)
	if x > 0 {
		f1 = modmath.GCD(x-1, N)
	}
	f2 := modmath.GCD(x+1, N)

	switch {
	case f1 > 1 && f2 > 1 && f1*f2 == N:
		return FactorPair{P: f1, Q: f2}, true
	case f1 > 1 && modmath.IsPrime(f1) && N%f1 == 0:
		return FactorPair{P: f1, Q: N / f1}, true
	case f2 > 1 && modmath.IsPrime(f2) && N%f2 == 0:
		return FactorPair{P: N / f2, Q: f2}, true
	default:
		return FactorPair{}, false
	}
}
