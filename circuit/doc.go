// Package circuit models quantum programs as ordered gate lists and
// builds the order-finding circuit at the heart of Shor's algorithm.
//
// 🚀 What does it build?
//
//	For a composite N and candidate base a, BuildOrderCircuit emits a
//	phase-estimation-style program over n+1 qubits, where
//	n = ceil(log2 N) · 2 is the counting-register width:
//	  • a Hadamard on every counting qubit (uniform superposition)
//	  • the ancilla flipped to |1⟩
//	  • one labeled phase rotation per counting qubit q, of angle
//	    (a^(2^q) mod N) · π/2, applied to the ancilla
//	  • a full measurement of the counting register, qubit i → bit i
//
// The phase rotations encode classically pre-computed modular powers —
// the classic phase-kickback simplification, not a physically faithful
// controlled modular-multiplication unitary. Downstream period
// extraction assumes exactly this encoding, so it is preserved as-is.
//
// ✨ Guarantees:
//   - Pure & deterministic – identical (N, a) yields a structurally
//     identical Program, gate for gate, angle for angle
//   - Self-describing – qubit count, ordered gates and the measurement
//     map are all exposed, so any backend can compile the program
//   - Width agreement – CountingWidth is the single source of the
//     register-size formula shared with package period
//
// ⚙️ Usage:
//
//	prog, err := circuit.BuildOrderCircuit(15, 7)
//	if err != nil { ... }
//	fmt.Println(prog.QASM()) // OPENQASM 2.0 rendering
//
// See example_test.go for full programs.
package circuit
