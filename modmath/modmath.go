package modmath

import (
	"errors"
	"math/big"
	"math/bits"
)

// Sentinel errors returned by the modmath package.
var (
	// ErrBadModulus indicates a modulus smaller than 2, for which the
	// multiplicative order is undefined.
	ErrBadModulus = errors.New("modmath: modulus must be ≥ 2")

	// ErrNotCoprime indicates that gcd(a, n) ≠ 1, so a has no
	// multiplicative order modulo n.
	ErrNotCoprime = errors.New("modmath: base is not coprime to modulus")
)

// GCD returns the greatest common divisor of a and b by the Euclidean
// algorithm. GCD(0, x) == x and GCD(x, 0) == x.
func GCD(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// IsPrime reports whether n is prime, by trial division up to ⌊√n⌋.
// Exact for every uint64; returns false for n < 2.
func IsPrime(n uint64) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	for d := uint64(3); d <= n/d; d += 2 {
		if n%d == 0 {
			return false
		}
	}

	return true
}

// ModPow returns base^exp mod mod using fast modular exponentiation.
// mod must be ≥ 1; mod == 1 yields 0. Computed via math/big so that
// intermediate squarings never wrap a uint64.
func ModPow(base, exp, mod uint64) uint64 {
	if mod <= 1 {
		return 0
	}
	b := new(big.Int).SetUint64(base)
	e := new(big.Int).SetUint64(exp)
	m := new(big.Int).SetUint64(mod)

	return new(big.Int).Exp(b, e, m).Uint64()
}

// mulMod returns x·y mod n without overflow, via a 128-bit product.
func mulMod(x, y, n uint64) uint64 {
	hi, lo := bits.Mul64(x, y)

	return bits.Rem64(hi, lo, n)
}

// Order returns the multiplicative order of a modulo n: the smallest
// positive r with a^r ≡ 1 (mod n).
//
// Errors:
//   - ErrBadModulus if n < 2.
//   - ErrNotCoprime if gcd(a, n) ≠ 1 (no order exists).
func Order(a, n uint64) (uint64, error) {
	if n < 2 {
		return 0, ErrBadModulus
	}
	a %= n
	if GCD(a, n) != 1 {
		return 0, ErrNotCoprime
	}

	r := uint64(1)
	for x := a; x != 1; r++ {
		x = mulMod(x, a, n)
	}

	return r, nil
}

// BestRational returns the fraction p/q closest to num/den among all
// fractions with denominator ≤ maxDen, using the continued-fraction
// expansion of num/den (convergents plus the final semiconvergent).
// den and maxDen must be ≥ 1. The result is in lowest terms.
//
// This is the rational-reconstruction step of phase estimation: for a
// measured phase k/2^m it recovers the underlying k'/r with r ≤ maxDen.
func BestRational(num, den, maxDen uint64) (p, q uint64) {
	if den == 0 || maxDen == 0 {
		return 0, 1
	}

	// Convergent recurrence: p2/q2 trails p1/q1 by one step.
	var p2, q2, p1, q1 uint64 = 0, 1, 1, 0
	n, d := num, den
	for d != 0 {
		a := n / d
		if qNext := q2 + a*q1; qNext > maxDen {
			// The next convergent overshoots the bound; the best
			// approximation is either the last convergent p1/q1 or the
			// largest semiconvergent that still fits.
			k := (maxDen - q2) / q1
			sp, sq := p2+k*p1, q2+k*q1

			return closer(num, den, sp, sq, p1, q1)
		}
		p2, q2, p1, q1 = p1, q1, p2+a*p1, q2+a*q1
		n, d = d, n-a*d
	}

	// Exact: num/den itself has denominator ≤ maxDen.
	return p1, q1
}

// closer picks whichever of pa/qa and pb/qb lies nearer to num/den,
// preferring pb/qb on ties (the convergent, which is in lowest terms).
// Comparison is exact: |num·qa − pa·den|·qb vs |num·qb − pb·den|·qa.
func closer(num, den, pa, qa, pb, qb uint64) (uint64, uint64) {
	bn := new(big.Int).SetUint64(num)
	bd := new(big.Int).SetUint64(den)

	da := new(big.Int).Mul(bn, new(big.Int).SetUint64(qa))
	da.Sub(da, new(big.Int).Mul(new(big.Int).SetUint64(pa), bd))
	da.Abs(da).Mul(da, new(big.Int).SetUint64(qb))

	db := new(big.Int).Mul(bn, new(big.Int).SetUint64(qb))
	db.Sub(db, new(big.Int).Mul(new(big.Int).SetUint64(pb), bd))
	db.Abs(db).Mul(db, new(big.Int).SetUint64(qa))

	if da.Cmp(db) < 0 {
		g := GCD(pa, qa)
		if g == 0 {
			return 0, 1
		}

		return pa / g, qa / g
	}

	return pb, qb
}
