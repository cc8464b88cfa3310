// Package period turns noisy measurement-count distributions into a
// candidate multiplicative order and, from it, nontrivial factors.
//
// 🚀 How extraction works:
//
//	1. Rank outcomes by count, descending; keep the TopN most frequent.
//	2. Read each bitstring as a dyadic phase value/2^n, n inferred from
//	   the key length (which must agree with circuit.CountingWidth).
//	3. Reconstruct the best rational p/r with r ≤ N via continued
//	   fractions; the denominator r is a candidate order.
//	4. Skip r ≤ 1 (uninformative, e.g. the all-zeros outcome) and every
//	   odd r — gcd(a^(r/2) ± 1, N) needs an even exponent to exist.
//	5. For the first even candidate whose gcd pair survives the checks,
//	   return the factor pair. Candidates within TopN that fail simply
//	   disqualify themselves; nothing beyond TopN is ever examined.
//
// "No factors from this evidence" is a normal outcome, reported as a
// false second return — not an error. Errors are reserved for malformed
// input (empty counts, ragged or non-binary keys, out-of-range N, a,
// TopN), which this package rejects eagerly instead of miscomputing.
//
// ⚙️ Usage:
//
//	pair, ok, err := period.ExtractFactors(15, 7, counts, nil)
//	if err != nil { ... }        // caller bug
//	if !ok { /* try next base */ }
//	fmt.Println(pair.P * pair.Q) // == 15
//
// The TopN cutoff is a speed/completeness heuristic with no optimality
// claim; a candidate hiding below the cutoff stays invisible even when
// it would have succeeded.
package period
