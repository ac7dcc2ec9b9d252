// Package stats summarizes per-trial measurements as a sample mean with a
// 95% normal-approximation confidence half-width.
package stats

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Z95 is the two-sided 95% quantile of the standard normal distribution.
const Z95 = 1.960

// Mean returns the arithmetic mean of xs, or 0 for an empty sample.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}

	return stat.Mean(xs, nil)
}

// Conf95 returns the half-width Z95·s/√n of the 95% confidence interval of
// the mean, where s is the sample (n-1) standard deviation. It is 0 when
// fewer than two values are available.
func Conf95(xs []float64) float64 {
	if len(xs) <= 1 {
		return 0
	}

	return Z95 * stat.StdDev(xs, nil) / math.Sqrt(float64(len(xs)))
}

// MeanConf95 returns Mean(xs) and Conf95(xs) in one pass over the data.
func MeanConf95(xs []float64) (mean, conf float64) {
	switch len(xs) {
	case 0:
		return 0, 0
	case 1:
		return xs[0], 0
	}
	m, s := stat.MeanStdDev(xs, nil)

	return m, Z95 * s / math.Sqrt(float64(len(xs)))
}

// Sample accumulates observations of one quantity.
// The zero value is ready to use.
type Sample struct {
	xs []float64
}

// Add records one observation.
func (s *Sample) Add(x float64) { s.xs = append(s.xs, x) }

// Len returns the number of observations.
func (s *Sample) Len() int { return len(s.xs) }

// MeanConf95 summarizes the observations recorded so far.
func (s *Sample) MeanConf95() (mean, conf float64) { return MeanConf95(s.xs) }

// Values returns the recorded observations in insertion order.
// The slice is shared; callers must not modify it.
func (s *Sample) Values() []float64 { return s.xs }
