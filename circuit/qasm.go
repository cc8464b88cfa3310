package circuit

import (
	"fmt"
	"strings"
)

// QASM renders the program as OPENQASM 2.0 text. Phase rotations map to
// u1, so any qelib1-compatible toolchain can compile the output. Gate
// labels are emitted as trailing comments for traceability.
func (p *Program) QASM() string {
	var sb strings.Builder
	sb.WriteString("OPENQASM 2.0;\n")
	sb.WriteString("include \"qelib1.inc\";\n\n")
	fmt.Fprintf(&sb, "qreg q[%d];\n", p.NumQubits)
	fmt.Fprintf(&sb, "creg c[%d];\n\n", p.NumClbits)

	for _, g := range p.Gates {
		switch g.Kind {
		case KindMeasure:
			fmt.Fprintf(&sb, "measure q[%d] -> c[%d];\n", g.Target, g.Cbit)
		case KindPhase:
			fmt.Fprintf(&sb, "u1(%.17g) q[%d];", g.Theta, g.Target)
			if g.Label != "" {
				fmt.Fprintf(&sb, " // %s", g.Label)
			}
			sb.WriteByte('\n')
		default:
			fmt.Fprintf(&sb, "%s q[%d];\n", g.Kind, g.Target)
		}
	}

	return sb.String()
}
