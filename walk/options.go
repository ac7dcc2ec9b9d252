package walk

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/randwalk/bloom"
)

// Defaults applied by New.
const (
	DefaultAlpha       = -0.5
	DefaultLaziness    = 0.5
	DefaultHistorySize = 3
	DefaultFilterSize  = bloom.DefaultSize
)

// Option configures an Agent at construction.
// An invalid Option is recorded and surfaced by New as ErrInvalidOption.
type Option func(*config)

type config struct {
	alpha       float64
	laziness    float64
	filterSize  int
	historySize int
	rng         *rand.Rand
	structure   Structure
	target      int
	hasTarget   bool

	err error // first invalid option
}

func defaultConfig() config {
	return config{
		alpha:       DefaultAlpha,
		laziness:    DefaultLaziness,
		filterSize:  DefaultFilterSize,
		historySize: DefaultHistorySize,
	}
}

func (c *config) fail(format string, args ...any) {
	if c.err == nil {
		c.err = fmt.Errorf(format+": %w", append(args, ErrInvalidOption)...)
	}
}

// WithAlpha sets the bias exponent α; it must be finite.
func WithAlpha(alpha float64) Option {
	return func(c *config) {
		if math.IsNaN(alpha) || math.IsInf(alpha, 0) {
			c.fail("WithAlpha(%v)", alpha)
			return
		}
		c.alpha = alpha
	}
}

// WithLaziness sets the probability in [0,1] that a lazy walker stays put.
func WithLaziness(p float64) Option {
	return func(c *config) {
		if !(p >= 0 && p <= 1) {
			c.fail("WithLaziness(%v)", p)
			return
		}
		c.laziness = p
	}
}

// WithFilterSize sets the membership filter size in bits; 0 selects the default.
func WithFilterSize(bits int) Option {
	return func(c *config) {
		if bits < 0 {
			c.fail("WithFilterSize(%d)", bits)
			return
		}
		c.filterSize = bits
	}
}

// WithHistorySize sets the capacity k of the history buffer (k ≥ 1).
func WithHistorySize(k int) Option {
	return func(c *config) {
		if k < 1 {
			c.fail("WithHistorySize(%d)", k)
			return
		}
		c.historySize = k
	}
}

// WithRand provides the random source the agent draws from exclusively.
func WithRand(r *rand.Rand) Option {
	return func(c *config) {
		if r == nil {
			c.fail("WithRand(nil)")
			return
		}
		c.rng = r
	}
}

// WithSeed gives the agent its own source seeded with seed.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithStructure supplies centrality scores and the adjacency spectrum.
func WithStructure(s Structure) Option {
	return func(c *config) {
		if s == nil {
			c.fail("WithStructure(nil)")
			return
		}
		c.structure = s
	}
}

// WithTarget designates the vertex whose hitting time TargetHit reports.
func WithTarget(v int) Option {
	return func(c *config) {
		c.target = v
		c.hasTarget = true
	}
}
