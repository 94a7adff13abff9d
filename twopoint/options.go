package twopoint

import (
	"math/rand"

	"github.com/cwbudde/algo-clustering/estimate"
	"github.com/cwbudde/algo-clustering/pairs"
	"github.com/cwbudde/algo-clustering/points"
)

// Config defines the configuration shared by all entry points. Every
// recognized knob is enumerated here with its default.
type Config struct {
	// Sample2 enables cross-correlation against a second sample.
	Sample2 points.Sample

	// Randoms is the random comparison catalog. Mandatory without
	// periodic boundaries; optional with them, where absent randoms
	// are replaced by analytic expectations.
	Randoms points.Sample

	// Period holds the per-dimension box lengths: empty for no
	// periodicity, a single value to broadcast, or one per dimension.
	Period []float64

	// MaxSampleSize caps each sample before counting; larger samples
	// are uniformly downsampled to exactly this size.
	MaxSampleSize int

	// DoAuto and DoCross gate the auto- and cross-correlations when
	// two distinct samples are given. Ignored for a single sample.
	DoAuto  bool
	DoCross bool

	// Estimator selects the correlation formula.
	Estimator estimate.Estimator

	// Counter performs the pair counting.
	Counter pairs.Counter

	// Rand drives downsampling. Seed it for reproducible subsets; nil
	// uses the process-wide source.
	Rand *rand.Rand
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the defaults: both correlations, the Natural
// estimator, a one-million point cap, and the brute-force counter.
func DefaultConfig() Config {
	return Config{
		MaxSampleSize: 1_000_000,
		DoAuto:        true,
		DoCross:       true,
		Estimator:     estimate.Natural,
		Counter:       pairs.BruteForce{},
	}
}

// WithSample2 sets a second sample for cross-correlation.
func WithSample2(s points.Sample) Option {
	return func(cfg *Config) {
		cfg.Sample2 = s
	}
}

// WithRandoms sets the random comparison catalog.
func WithRandoms(r points.Sample) Option {
	return func(cfg *Config) {
		cfg.Randoms = r
	}
}

// WithPeriod sets periodic box lengths: one value broadcasts to all
// dimensions, or pass one length per dimension.
func WithPeriod(period ...float64) Option {
	return func(cfg *Config) {
		cfg.Period = period
	}
}

// WithMaxSampleSize caps the sample sizes passed to the pair counter.
func WithMaxSampleSize(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.MaxSampleSize = n
		}
	}
}

// WithDoAuto gates computation of the auto-correlations.
func WithDoAuto(do bool) Option {
	return func(cfg *Config) {
		cfg.DoAuto = do
	}
}

// WithDoCross gates computation of the cross-correlation.
func WithDoCross(do bool) Option {
	return func(cfg *Config) {
		cfg.DoCross = do
	}
}

// WithEstimator selects the correlation estimator formula.
func WithEstimator(e estimate.Estimator) Option {
	return func(cfg *Config) {
		cfg.Estimator = e
	}
}

// WithCounter replaces the pair counter, e.g. to use a grid or tree
// accelerated implementation.
func WithCounter(c pairs.Counter) Option {
	return func(cfg *Config) {
		if c != nil {
			cfg.Counter = c
		}
	}
}

// WithRand sets the generator used for downsampling.
func WithRand(rng *rand.Rand) Option {
	return func(cfg *Config) {
		cfg.Rand = rng
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
