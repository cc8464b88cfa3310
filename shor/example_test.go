package shor_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/shorq/backend"
	"github.com/katalvlaran/shorq/shor"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleFactor
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Factor N=15 with base 7 against the seeded sampling backend:
//	1000 shots, deterministic counts, classical post-processing.
//	Every even candidate order for (15, 7) resolves to the pair (3, 5).
//
// ExampleFactor demonstrates the one-call orchestration surface.
func ExampleFactor() {
	res, err := shor.Factor(context.Background(), 15, &backend.Sampler{Seed: 11},
		shor.WithBases(7),
		shor.WithShots(1000),
	)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("%d = %d × %d (base %d, method %s)\n",
		res.N, res.Factors.P, res.Factors.Q, res.Base, res.Method)
	// Output:
	// 15 = 3 × 5 (base 7, method period)
}
