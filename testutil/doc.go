// Package testutil provides testing utilities for vecload.
//
// This package is intended for tests, benchmarks and data generators. It
// provides deterministic random rows and helpers that turn rows into records
// and framed record files.
//
// # Random Rows
//
//	rng := testutil.NewRNG(seed)
//	rows := rng.UniformVectors(100, 512) // uniform [0, 1)
//
// # Records
//
//	recs := testutil.Records(rows)   // little-endian float32 payloads
//	image := testutil.Frame(recs...) // bin-framed record file image
package testutil
