// SPDX-License-Identifier: MIT
package builder

import "math/rand"

// BuilderOption mutates a builderConfig before a Constructor runs. Later
// options override earlier ones.
type BuilderOption func(cfg *builderConfig)

// builderConfig bundles the knobs every topology constructor reads: an
// optional RNG (nil means deterministic, the only mode Path/Star/Grid's
// tests exercise), the vertex-ID scheme, and the edge-weight function.
type builderConfig struct {
	rng      *rand.Rand
	idFn     IDFn
	weightFn WeightFn
}

// newBuilderConfig resolves opts against the defaults (nil RNG,
// DefaultIDFn, DefaultWeightFn) in order.
func newBuilderConfig(opts ...BuilderOption) *builderConfig {
	cfg := &builderConfig{idFn: DefaultIDFn, weightFn: DefaultWeightFn}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithIDScheme injects a custom IDFn. A nil idFn is a no-op.
func WithIDScheme(idFn IDFn) BuilderOption {
	return func(cfg *builderConfig) {
		if idFn != nil {
			cfg.idFn = idFn
		}
	}
}

// WithWeightFn injects a custom WeightFn. A nil wfn is a no-op.
func WithWeightFn(wfn WeightFn) BuilderOption {
	return func(cfg *builderConfig) {
		if wfn != nil {
			cfg.weightFn = wfn
		}
	}
}

// WithSeed seeds a fresh *rand.Rand for reproducible weight sampling.
func WithSeed(seed int64) BuilderOption {
	return func(cfg *builderConfig) {
		cfg.rng = rand.New(rand.NewSource(seed))
	}
}
