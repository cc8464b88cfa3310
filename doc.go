// Package shorq is a compact playground for the classical-quantum hybrid
// core of Shor's integer-factorization algorithm — from circuit
// construction to continued-fraction post-processing.
//
// 🚀 What is shorq?
//
//	A modular library that brings together:
//		• Circuit builder: deterministic phase-estimation programs for a^x mod N
//		• Period extraction: measurement counts → candidate order → factors
//		• Number theory: GCD, exact primality, modular exponentiation,
//		  bounded best-rational approximation
//		• Backends: a pluggable execution contract plus a seeded sampler
//		• Orchestration: base iteration with stop-at-first or full sweep
//		• Plotting: measurement histograms as interactive HTML charts
//
// ✨ Why choose shorq?
//
//   - Deterministic core – identical (N, a) always yields an identical program
//   - Explicit outcomes – "no factors from this evidence" is a value, not an error
//   - Pluggable execution – any backend satisfying one small interface
//   - Honest scope – the circuit keeps the classic phase-kickback
//     simplification; no state-vector simulation is performed
//
// Under the hood, everything is organized under focused subpackages:
//
//	modmath/ — GCD, IsPrime, ModPow, Order, BestRational
//	circuit/ — Program & Gate model, BuildOrderCircuit, OPENQASM export
//	period/  — ExtractFactors: counts → order → factor pair
//	backend/ — Runner contract, Counts validation, Sampler collaborator
//	shor/    — Factor / Sweep orchestration
//	plot/    — counts histogram rendering
//
// Quick sketch:
//
//	prog, _ := circuit.BuildOrderCircuit(15, 7)
//	counts, _ := runner.Run(ctx, prog, 1024)
//	pair, ok, _ := period.ExtractFactors(15, 7, counts, nil)
//
// Dive into each package's doc.go for invariants, errors and examples.
//
//	go get github.com/katalvlaran/shorq
package shorq
