// Package testutil provides testing utilities for the kmedian solver.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, thread-safe random source and generators for
// synthetic node datasets with known structure.
//
// # Dataset Generation
//
//	rng := testutil.NewRNG(seed)
//	nodes := testutil.ClusteredNodes(rng, centers, 2.0, 50)
//	grid := testutil.GridNodes(20, 20)
//
// # Ground Truth
//
//	cost := testutil.ExactCost(nodes, centers, distance.Euclidean)
package testutil
