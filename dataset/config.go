// SPDX-License-Identifier: MIT
// Package: datakata/dataset
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • config is the single source of truth for all generator knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newConfig applies options in-order (later overrides earlier).
package dataset

import "math/rand"

// Deterministic defaults (named, no magic numbers).
const (
	defaultBase       = 0.0    // additive base level for Ramp/Seasonal
	defaultSlope      = 0.0    // linear trend increment per sample
	defaultAmplitude  = 1.0    // seasonal wave amplitude (>0)
	defaultPeriod     = 12.0   // seasonal wave period in samples (>0)
	defaultNoiseSigma = 0.0    // Gaussian noise stdev (≥0); 0 disables noise
	defaultWalkStart  = 100.0  // random-walk initial price (>0)
	defaultWalkDrift  = 0.0005 // random-walk per-step drift μ
	defaultWalkVol    = 0.02   // random-walk per-step volatility σ (≥0)
	defaultSeed       = 1      // RNG seed when noise is requested without one
)

// config aggregates all knobs used by generators.
// It is passed by value to generators (immutable to callers).
type config struct {
	base         float64    // additive base level
	slope        float64    // linear trend per sample
	amplitude    float64    // seasonal amplitude, >0
	period       float64    // seasonal period in samples, >0
	noiseSigma   float64    // additive Gaussian noise, ≥0
	drift        float64    // random-walk drift
	volatility   float64    // random-walk volatility, ≥0
	missingEvery int        // plant a hole every k-th sample; 0 disables
	rng          *rand.Rand // nil means "no randomness unless a seed is given"
}

// newConfig constructs a config with deterministic defaults and applies all
// options in order, last-wins.
// Complexity: O(len(opts)) time, O(1) space.
func newConfig(opts ...Option) config {
	cfg := config{
		base:         defaultBase,
		slope:        defaultSlope,
		amplitude:    defaultAmplitude,
		period:       defaultPeriod,
		noiseSigma:   defaultNoiseSigma,
		drift:        defaultWalkDrift,
		volatility:   defaultWalkVol,
		missingEvery: 0,
		rng:          nil,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// rngFrom returns cfg.rng if present (shared stream), else a local rand
// seeded by seed. This keeps determinism across composed calls.
func rngFrom(cfg config, seed int64) *rand.Rand {
	if cfg.rng != nil {
		return cfg.rng
	}

	return rand.New(rand.NewSource(seed))
}
