// Package shor orchestrates the full factorization pipeline: iterate
// candidate bases, build the order-finding circuit, execute it via a
// backend.Runner, and post-process the counts into factors.
//
// Two entry points cover the two search policies:
//
//   - Factor — stop at the first base that yields factors.
//   - Sweep  — try every base, collecting all successes.
//
// The coprimality precondition the core packages leave to callers is
// enforced here, eagerly: a base sharing a factor with N never reaches
// the quantum path — its gcd already is a factor, reported as a
// MethodGCD result. Everything reaching circuit construction is
// guaranteed coprime.
//
// A base that yields no factors is a normal event (logged at debug
// level, iteration continues). Only full exhaustion is an error,
// ErrExhausted. Collaborator failures propagate immediately, still
// matching backend.ErrExecution; retry policy belongs to the caller.
//
// ⚙️ Usage:
//
//	res, err := shor.Factor(ctx, 15, &backend.Sampler{Seed: 1},
//	    shor.WithShots(2048),
//	    shor.WithLogger(logger),
//	)
//	if err != nil { ... }
//	fmt.Println(res.Factors.P, res.Factors.Q)
package shor
