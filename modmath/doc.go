// Package modmath provides the exact integer arithmetic underpinning
// order finding: Euclidean GCD, trial-division primality, modular
// exponentiation, multiplicative order, and bounded best-rational
// approximation via continued fractions.
//
// ✨ Key properties:
//   - Exact – no probabilistic primality, no floating-point phases
//   - Overflow-safe – products routed through 128-bit intermediates
//     or math/big where a uint64 could wrap
//   - Deterministic – every function is a pure function of its inputs
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/shorq/modmath"
//
//	r, err := modmath.Order(7, 15)          // r = 4
//	p, q := modmath.BestRational(3, 16, 15) // 3/16 ≈ 1/5 → p=1, q=5
//	v := modmath.ModPow(7, 2, 15)           // 4
//
// Complexity:
//
//   - GCD:          O(log min(a,b))
//   - IsPrime:      O(√n)
//   - ModPow:       O(log exp) multiplications
//   - Order:        O(r) multiplications, r = multiplicative order
//   - BestRational: O(log den) continued-fraction steps
package modmath
