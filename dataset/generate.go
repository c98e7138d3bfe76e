// SPDX-License-Identifier: MIT
// Package: datakata/dataset
//
// generate.go — the deterministic series generators.
//
// Determinism policy (aligned across generators):
//   - If cfg.rng != nil → use cfg.rng (shared stream via WithSeed/WithRand).
//   - Ramp/Seasonal only touch the RNG when noise is enabled; noiseless runs
//     are pure arithmetic.
//   - Walk takes an explicit seed so callers cannot forget reproducibility.
package dataset

import "math"

// twoPi is the full phase of the seasonal wave.
const twoPi = 2 * math.Pi

// Ramp returns a length-n linear series: base + slope·i, plus optional
// Gaussian noise (WithNoise) and planted holes (WithMissingEvery).
//
// Validation:
//   - n < 1 ⇒ nil (invalid request; never panic).
//
// Complexity: O(n) time, O(n) memory.
func Ramp(n int, opts ...Option) []float64 {
	if n < 1 {
		return nil
	}

	cfg := newConfig(opts...)
	out := make([]float64, n)

	// Noise path resolves an RNG once; noiseless runs stay RNG-free.
	rng := cfg.rng
	if cfg.noiseSigma > 0 && rng == nil {
		rng = rngFrom(cfg, defaultSeed)
	}

	for i := 0; i < n; i++ {
		v := cfg.base + cfg.slope*float64(i)
		if cfg.noiseSigma > 0 {
			v += cfg.noiseSigma * rng.NormFloat64()
		}
		out[i] = v
	}

	return plantMissing(out, cfg.missingEvery)
}

// Seasonal returns a length-n sinusoidal series around the base level:
//
//	base + slope·i + A·sin(2π·i/period) (+ noise)
//
// The default period of 12 reads naturally as "monthly data with a yearly
// season".
//
// Validation:
//   - n < 1 ⇒ nil.
//
// Complexity: O(n) time, O(n) memory.
func Seasonal(n int, opts ...Option) []float64 {
	if n < 1 {
		return nil
	}

	cfg := newConfig(opts...)
	out := make([]float64, n)

	rng := cfg.rng
	if cfg.noiseSigma > 0 && rng == nil {
		rng = rngFrom(cfg, defaultSeed)
	}

	for i := 0; i < n; i++ {
		phase := twoPi * float64(i) / cfg.period
		v := cfg.base + cfg.slope*float64(i) + cfg.amplitude*math.Sin(phase)
		if cfg.noiseSigma > 0 {
			v += cfg.noiseSigma * rng.NormFloat64()
		}
		out[i] = v
	}

	return plantMissing(out, cfg.missingEvery)
}

// Walk returns a length-n geometric random-walk price path:
//
//	p₀ = start, p_{i} = p_{i−1} · exp(μ − σ²/2 + σ·N(0,1))
//
// The start price is WithBase (default 100), drift/volatility come from
// WithDrift/WithVolatility. Strictly deterministic per (n, seed, options).
//
// Validation:
//   - n < 1 or a non-positive start price ⇒ nil; never panic.
//
// Complexity: O(n) time, O(n) memory.
func Walk(n int, seed int64, opts ...Option) []float64 {
	if n < 1 {
		return nil
	}

	cfg := newConfig(opts...)

	// Walk reuses base as the start price; ramps allow any real base, a
	// price path does not.
	start := cfg.base
	if start == defaultBase {
		start = defaultWalkStart
	}
	if start <= 0 {
		return nil
	}

	rng := rngFrom(cfg, seed)
	out := make([]float64, n)
	out[0] = start

	// Itô-corrected log-step keeps E[p_i] on the drift line.
	half := cfg.volatility * cfg.volatility / 2
	for i := 1; i < n; i++ {
		step := cfg.drift - half + cfg.volatility*rng.NormFloat64()
		out[i] = out[i-1] * math.Exp(step)
	}

	return plantMissing(out, cfg.missingEvery)
}

// plantMissing overwrites every k-th sample (1-based positions k, 2k, ...)
// with the NaN missing marker. k ≤ 0 leaves the series untouched.
func plantMissing(xs []float64, k int) []float64 {
	if k <= 0 {
		return xs
	}

	for i := k - 1; i < len(xs); i += k {
		xs[i] = math.NaN()
	}

	return xs
}
