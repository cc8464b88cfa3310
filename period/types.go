package period

import "errors"

// Sentinel errors returned by ExtractFactors.
var (
	// ErrBadModulus indicates N < 3.
	ErrBadModulus = errors.New("period: modulus must be ≥ 3")

	// ErrBadBase indicates a base outside [2, N-1].
	ErrBadBase = errors.New("period: base must lie in [2, N-1]")

	// ErrBadTopN indicates TopN < 1.
	ErrBadTopN = errors.New("period: TopN must be ≥ 1")

	// ErrEmptyCounts indicates an empty count mapping; the extractor
	// refuses it instead of leaving the behavior undefined.
	ErrEmptyCounts = errors.New("period: count mapping is empty")

	// ErrBadBitstring indicates a key that is not binary or whose
	// length differs from the other keys.
	ErrBadBitstring = errors.New("period: malformed bitstring key")

	// ErrWidthOverflow indicates keys wider than 63 bits, beyond the
	// dyadic range this extractor can represent.
	ErrWidthOverflow = errors.New("period: counting width exceeds 63 bits")
)

// FactorPair is a nontrivial factorization of N: P·Q == N, P, Q > 1.
type FactorPair struct {
	P uint64
	Q uint64
}

// Product returns P·Q.
func (f FactorPair) Product() uint64 { return f.P * f.Q }

// Options configures extraction.
//
// TopN – how many of the highest-count outcomes to examine. A pure
// speed/completeness trade-off: larger values consider more evidence,
// smaller values answer faster. Must be ≥ 1.
type Options struct {
	TopN int
}

// DefaultOptions returns the defaults: TopN = 5.
func DefaultOptions() Options {
	return Options{TopN: 5}
}
