// Package datakata is your in-memory playground for the everyday Go data
// idioms — building slices, building maps, composing small functions and
// types, and summarizing numbers.
//
// 🚀 What is datakata?
//
//	A compact, deterministic teaching library that walks through the
//	bread-and-butter of data handling in Go:
//		• transform/ — building new slices: map, filter, flatten
//		• grouping/  — building maps: counts, groups, sums, filtered views
//		• series/    — period-over-period arithmetic: % change, moving average, CAGR
//		• stats/     — defensive parsing, missing values, mean/median/stddev,
//		               analyzer types composed via embedding
//		• dataset/   — reproducible fixture series for demos and exercises
//
// ✨ Why choose datakata?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – every example prints the same output, every time
//   - Pure Go – no cgo, no hidden deps
//   - Honest errors – sentinel errors, errors.Is, no panics on data paths
//
// Every package ships runnable Example tests whose // Output: blocks are the
// "printed outputs" of the lesson. Start with transform, finish with stats,
// then try the scenarios in examples/ and the walkthrough in docs/TUTORIAL.md.
//
//	go get github.com/katalvlaran/datakata
package datakata
