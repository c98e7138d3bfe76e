// SPDX-License-Identifier: MIT
// Package: datakata/dataset
//
// options.go — functional options for the dataset package.
//
// Contract (strict):
//   • Options are functional (type Option func(*config)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs;
//     generators themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//   • No hidden globals; everything flows through config.
package dataset

import "math/rand"

// Option customizes a generator by mutating a config instance before the
// series is produced.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*config)

// WithBase sets the additive base level for Ramp/Seasonal and the starting
// price for Walk. Any real value is accepted for ramps; Walk validates
// positivity itself and returns nil on a non-positive start.
func WithBase(base float64) Option {
	return func(c *config) {
		c.base = base
	}
}

// WithSlope sets the linear trend increment per sample.
// Any real value is accepted (including 0).
func WithSlope(k float64) Option {
	return func(c *config) {
		c.slope = k
	}
}

// WithAmplitude sets the seasonal wave amplitude A (>0).
// Panics if A <= 0 to avoid degenerate outputs.
func WithAmplitude(a float64) Option {
	if a <= 0 {
		panic("dataset: WithAmplitude(A<=0)")
	}
	return func(c *config) {
		c.amplitude = a
	}
}

// WithPeriod sets the seasonal wave period in samples (>0).
// Panics if p <= 0.
func WithPeriod(p float64) Option {
	if p <= 0 {
		panic("dataset: WithPeriod(p<=0)")
	}
	return func(c *config) {
		c.period = p
	}
}

// WithNoise sets Gaussian noise sigma (>=0) for Ramp/Seasonal.
// Panics if sigma < 0. Noise draws are seeded by WithSeed/WithRand, or the
// documented default seed when neither is given.
func WithNoise(sigma float64) Option {
	if sigma < 0 {
		panic("dataset: WithNoise(sigma<0)")
	}
	return func(c *config) {
		c.noiseSigma = sigma
	}
}

// WithDrift sets the random-walk per-step drift μ.
// Any real value is accepted.
func WithDrift(mu float64) Option {
	return func(c *config) {
		c.drift = mu
	}
}

// WithVolatility sets the random-walk per-step volatility σ (>=0).
// Panics if sigma < 0.
func WithVolatility(sigma float64) Option {
	if sigma < 0 {
		panic("dataset: WithVolatility(sigma<0)")
	}
	return func(c *config) {
		c.volatility = sigma
	}
}

// WithMissingEvery plants a missing value (NaN) at every k-th sample
// (positions k, 2k, ... counted from 1). k = 0 disables planting.
// Panics if k < 0.
func WithMissingEvery(k int) Option {
	if k < 0 {
		panic("dataset: WithMissingEvery(k<0)")
	}
	return func(c *config) {
		c.missingEvery = k
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG (shared stream across composed calls).
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("dataset: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}
