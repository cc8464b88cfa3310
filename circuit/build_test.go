package circuit_test

import (
	"math"
	"strings"
	"testing"

	"github.com/katalvlaran/shorq/circuit"
	"github.com/katalvlaran/shorq/modmath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCountingWidth verifies the register-width formula ceil(log2 N)·2,
// including exact powers of two where the ceiling must not round up.
func TestCountingWidth(t *testing.T) {
	cases := []struct {
		n    uint64
		want int
	}{
		{3, 4},   // ceil(log2 3)=2
		{15, 8},  // ceil(log2 15)=4
		{16, 8},  // ceil(log2 16)=4, exact power of two
		{17, 10}, // ceil(log2 17)=5
		{21, 10},
		{35, 12},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, circuit.CountingWidth(c.n), "CountingWidth(%d)", c.n)
	}
}

// TestBuildOrderCircuit_Validation verifies the sentinel errors for
// out-of-range inputs.
func TestBuildOrderCircuit_Validation(t *testing.T) {
	_, err := circuit.BuildOrderCircuit(2, 2)
	assert.ErrorIs(t, err, circuit.ErrBadModulus, "N < 3 must error")

	_, err = circuit.BuildOrderCircuit(15, 1)
	assert.ErrorIs(t, err, circuit.ErrBadBase, "a < 2 must error")

	_, err = circuit.BuildOrderCircuit(15, 15)
	assert.ErrorIs(t, err, circuit.ErrBadBase, "a ≥ N must error")

	// Coprimality is deliberately not checked: gcd(5, 15) = 5, yet the
	// builder must accept the pair (callers validate coprimality).
	prog, err := circuit.BuildOrderCircuit(15, 5)
	require.NoError(t, err)
	assert.NotNil(t, prog)
}

// TestBuildOrderCircuit_Structure verifies qubit/bit counts and the
// gate-by-gate layout for N=15: Hadamard wall, ancilla flip, one phase
// rotation per counting qubit, then the full counting-register readout.
func TestBuildOrderCircuit_Structure(t *testing.T) {
	prog, err := circuit.BuildOrderCircuit(15, 7)
	require.NoError(t, err)

	const n = 8 // CountingWidth(15)
	assert.Equal(t, n+1, prog.NumQubits, "counting register plus ancilla")
	assert.Equal(t, n, prog.NumClbits, "one classical bit per counting qubit")
	assert.Equal(t, n, prog.Ancilla(), "ancilla is the last qubit")
	require.Len(t, prog.Gates, n+1+n+n, "H wall + X + phases + measures")

	for q := 0; q < n; q++ {
		g := prog.Gates[q]
		assert.Equal(t, circuit.KindHadamard, g.Kind, "gate %d must be H", q)
		assert.Equal(t, q, g.Target)
	}

	x := prog.Gates[n]
	assert.Equal(t, circuit.KindPauliX, x.Kind, "ancilla preparation")
	assert.Equal(t, n, x.Target)

	for q := 0; q < n; q++ {
		g := prog.Gates[n+1+q]
		assert.Equal(t, circuit.KindPhase, g.Kind, "phase gate %d", q)
		assert.Equal(t, n, g.Target, "phase gates act on the ancilla, not qubit %d", q)
	}

	for i := 0; i < n; i++ {
		g := prog.Gates[n+1+n+i]
		assert.Equal(t, circuit.KindMeasure, g.Kind)
		assert.Equal(t, i, g.Target, "measure preserves index correspondence")
		assert.Equal(t, i, g.Cbit)
	}

	mm := prog.MeasureMap()
	require.Len(t, mm, n)
	for i := 0; i < n; i++ {
		assert.Equal(t, i, mm[i], "qubit %d → bit %d", i, i)
	}
}

// TestBuildOrderCircuit_PhaseAngles verifies θ_q = (a^(2^q) mod N)·π/2
// against independent modular exponentiation, pinning the documented
// N=15, a=7 values: qubit 0 → 7π/2, qubit 1 → 2π.
func TestBuildOrderCircuit_PhaseAngles(t *testing.T) {
	prog, err := circuit.BuildOrderCircuit(15, 7)
	require.NoError(t, err)

	const n = 8
	assert.InDelta(t, 7*math.Pi/2, prog.Gates[n+1].Theta, 1e-12, "qubit 0: 7^1 mod 15 = 7")
	assert.InDelta(t, 2*math.Pi, prog.Gates[n+2].Theta, 1e-12, "qubit 1: 7^2 mod 15 = 4")

	for q := 0; q < n; q++ {
		v := modmath.ModPow(7, uint64(1)<<q, 15)
		g := prog.Gates[n+1+q]
		assert.InDelta(t, float64(v)*math.Pi/2, g.Theta, 1e-12, "angle of phase gate %d", q)
		assert.Contains(t, g.Label, "mod 15", "label names the modulus")
		assert.Contains(t, g.Label, "7^", "label names the base")
	}
}

// TestBuildOrderCircuit_Deterministic verifies that two builds with
// identical arguments are structurally identical.
func TestBuildOrderCircuit_Deterministic(t *testing.T) {
	p1, err := circuit.BuildOrderCircuit(21, 2)
	require.NoError(t, err)
	p2, err := circuit.BuildOrderCircuit(21, 2)
	require.NoError(t, err)

	assert.Equal(t, p1, p2, "identical (N, a) must yield identical programs")
}

// TestProgramQASM verifies the OPENQASM 2.0 rendering: headers,
// register declarations, gate mnemonics and the measurement mapping.
func TestProgramQASM(t *testing.T) {
	prog, err := circuit.BuildOrderCircuit(15, 7)
	require.NoError(t, err)

	qasm := prog.QASM()
	assert.True(t, strings.HasPrefix(qasm, "OPENQASM 2.0;\n"), "QASM header")
	assert.Contains(t, qasm, "include \"qelib1.inc\";")
	assert.Contains(t, qasm, "qreg q[9];")
	assert.Contains(t, qasm, "creg c[8];")
	assert.Contains(t, qasm, "h q[0];")
	assert.Contains(t, qasm, "x q[8];", "ancilla flip")
	assert.Contains(t, qasm, "u1(", "phase rotations render as u1")
	assert.Contains(t, qasm, "7^(2^0) mod 15 = 7", "labels carried as comments")
	assert.Contains(t, qasm, "measure q[0] -> c[0];")
	assert.Contains(t, qasm, "measure q[7] -> c[7];")
}
