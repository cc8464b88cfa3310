package circuit

import (
	"fmt"
	"math"
	"math/bits"
)

// CountingWidth returns the counting-register width for modulus N:
// ceil(log2 N) · 2. Both the builder and the period extractor derive
// register sizes from this one formula; if they disagreed, measured
// bitstrings and phase denominators would be incomparable.
func CountingWidth(N uint64) int {
	return bits.Len64(N-1) * 2
}

// BuildOrderCircuit — order-finding circuit construction
//
// Description:
//
//	Builds the phase-estimation-style program whose measurement
//	statistics encode the multiplicative order of a modulo N. The
//	counting register holds n = CountingWidth(N) qubits; qubit n is the
//	ancilla. Each counting qubit q contributes one phase rotation of
//	angle (a^(2^q) mod N)·π/2 on the ancilla — the phase-kickback
//	simplification standing in for a controlled modular multiplication.
//
// Gate order:
//  1. H on counting qubits 0..n-1.
//  2. X on the ancilla (prepare |1⟩).
//  3. For q = 0..n-1: u1((a^(2^q) mod N)·π/2) on the ancilla, labeled
//     with a, 2^q and N. The modular powers are produced by repeated
//     squaring, so 2^q itself is never materialized and the builder is
//     safe for any counting width.
//  4. measure q[i] → c[i] for i = 0..n-1, in index order.
//
// Determinism: pure function of (N, a); no randomness, no side effects.
//
// Errors:
//   - ErrBadModulus if N < 3.
//   - ErrBadBase if a ∉ [2, N-1].
//
// Coprimality of a and N is intentionally unchecked (see package doc).
func BuildOrderCircuit(N, a uint64) (*Program, error) {
	if N < 3 {
		return nil, ErrBadModulus
	}
	if a < 2 || a > N-1 {
		return nil, ErrBadBase
	}

	n := CountingWidth(N)
	prog := &Program{
		Modulus:   N,
		Base:      a,
		NumQubits: n + 1,
		NumClbits: n,
		Gates:     make([]Gate, 0, 2*n+1+n),
	}
	ancilla := n

	for q := 0; q < n; q++ {
		prog.Gates = append(prog.Gates, Gate{Kind: KindHadamard, Target: q, Cbit: -1})
	}
	prog.Gates = append(prog.Gates, Gate{Kind: KindPauliX, Target: ancilla, Cbit: -1})

	// v starts at a^(2^0) mod N and squares once per counting qubit.
	v := a % N
	for q := 0; q < n; q++ {
		prog.Gates = append(prog.Gates, Gate{
			Kind:   KindPhase,
			Target: ancilla,
			Cbit:   -1,
			Theta:  float64(v) * math.Pi / 2,
			Label:  fmt.Sprintf("%d^(2^%d) mod %d = %d", a, q, N, v),
		})
		v = mulMod(v, v, N)
	}

	for i := 0; i < n; i++ {
		prog.Gates = append(prog.Gates, Gate{Kind: KindMeasure, Target: i, Cbit: i})
	}

	return prog, nil
}

// mulMod returns x·y mod n through a 128-bit intermediate product.
func mulMod(x, y, n uint64) uint64 {
	hi, lo := bits.Mul64(x, y)

	return bits.Rem64(hi, lo, n)
}
