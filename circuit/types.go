package circuit

import "errors"

// Sentinel errors returned by the circuit builder.
var (
	// ErrBadModulus indicates N < 3; such an N has no nontrivial
	// factorization problem to encode.
	ErrBadModulus = errors.New("circuit: modulus must be ≥ 3")

	// ErrBadBase indicates a base outside [2, N-1]. Coprimality of the
	// base is deliberately NOT checked here; validate gcd(a, N) at the
	// orchestration boundary.
	ErrBadBase = errors.New("circuit: base must lie in [2, N-1]")
)

// Kind enumerates the gate kinds a Program may contain.
//
// KindHadamard – single-qubit Hadamard (superposition).
// KindPauliX   – single-qubit X flip (ancilla preparation).
// KindPhase    – single-qubit phase rotation by Theta radians.
// KindMeasure  – measurement of Target into classical bit Cbit.
type Kind int

const (
	// KindHadamard applies H to Target.
	KindHadamard Kind = iota

	// KindPauliX applies X to Target.
	KindPauliX

	// KindPhase rotates Target's |1⟩ amplitude by exp(i·Theta).
	KindPhase

	// KindMeasure reads Target into classical bit Cbit.
	KindMeasure
)

// String returns the lowercase QASM-style mnemonic for the gate kind.
func (k Kind) String() string {
	switch k {
	case KindHadamard:
		return "h"
	case KindPauliX:
		return "x"
	case KindPhase:
		return "u1"
	case KindMeasure:
		return "measure"
	default:
		return "unknown"
	}
}

// Gate is one operation in a Program's ordered gate list.
//
// Target – qubit index the gate acts on.
// Cbit   – classical bit index (KindMeasure only; -1 otherwise).
// Theta  – rotation angle in radians (KindPhase only; 0 otherwise).
// Label  – human-readable provenance, e.g. "7^(2^1) mod 15 = 4".
type Gate struct {
	Kind   Kind
	Target int
	Cbit   int
	Theta  float64
	Label  string
}

// Program is an immutable, ordered quantum program: a fixed number of
// qubits and classical bits plus the gate sequence acting on them.
// Construct one via BuildOrderCircuit; consume it via a backend.Runner.
type Program struct {
	// Modulus and Base record the (N, a) pair the program encodes.
	Modulus uint64
	Base    uint64

	// NumQubits counts all qubits: the counting register plus the ancilla.
	NumQubits int

	// NumClbits counts classical bits, one per counting qubit.
	NumClbits int

	// Gates is the ordered operation list, measurements included.
	Gates []Gate
}

// CountingQubits returns the width of the counting register.
func (p *Program) CountingQubits() int { return p.NumClbits }

// Ancilla returns the index of the ancilla/target qubit.
func (p *Program) Ancilla() int { return p.NumQubits - 1 }

// MeasureMap returns the qubit → classical-bit mapping of every
// KindMeasure gate, in a freshly allocated map.
func (p *Program) MeasureMap() map[int]int {
	m := make(map[int]int)
	for _, g := range p.Gates {
		if g.Kind == KindMeasure {
			m[g.Target] = g.Cbit
		}
	}

	return m
}
