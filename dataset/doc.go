// SPDX-License-Identifier: MIT
// Package: datakata/dataset
//
// Package dataset produces reproducible numeric series for the lessons,
// examples and exercises — linear ramps, seasonal waves and random-walk
// price paths, with optional noise and planted missing values.
//
// What:
//
//   - Ramp(n, opts...):       base + slope·i, optionally noisy.
//   - Seasonal(n, opts...):   a sinusoidal "sales" wave around a base level.
//   - Walk(n, seed, opts...): a geometric random-walk price path.
//
// Why:
//
//   - Lessons need data that is realistic enough to discuss and stable
//     enough to print: every generator is strictly deterministic for a
//     fixed (n, seed, options) triple.
//   - The stats lessons need holes: WithMissingEvery(k) plants a missing
//     value (NaN) at every k-th sample, ready for stats.DropMissing.
//
// Contract (the builder rules):
//
//   - Option constructors VALIDATE and PANIC on meaningless inputs;
//     generators themselves never panic.
//   - Invalid sizes (n < 1) return nil, never panic.
//   - No global state; all knobs flow through the resolved config.
//
// Complexity: every generator is O(n) time and O(n) memory.
package dataset
