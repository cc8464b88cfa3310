// Package backend defines the execution-collaborator contract of the
// pipeline: something that takes a compiled Program and a shot count
// and returns a mapping from measured bitstrings to occurrence counts.
//
// The core never cares how execution happens — real hardware, a remote
// service, or the in-package Sampler. It only relies on the contract:
//
//	counts, err := runner.Run(ctx, prog, shots)
//	// on success: counts.Total() == shots, uniform binary keys of
//	// length prog.CountingQubits()
//
// Any collaborator failure must wrap ErrExecution so callers can match
// the whole category with errors.Is and decide whether to retry; the
// core itself never retries, batches, or cancels (the context on Run is
// the caller's only cancellation handle).
//
// Sampler is a seeded, deterministic stand-in collaborator: it computes
// the true multiplicative order classically and draws shots from the
// ideal phase-estimation distribution, optionally corrupted by
// single-bit-flip noise. It samples outcomes — it does not simulate
// quantum state.
package backend
