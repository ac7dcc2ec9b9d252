package stats_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/randwalk/stats"
)

func TestMeanConf95(t *testing.T) {
	tests := []struct {
		name     string
		xs       []float64
		wantMean float64
		wantConf float64
	}{
		{"empty", nil, 0, 0},
		{"single", []float64{7}, 7, 0},
		{"constant", []float64{3, 3, 3, 3}, 3, 0},
		// s = sqrt(((1-2.5)²+(2-2.5)²+(3-2.5)²+(4-2.5)²)/3) = sqrt(5/3)
		{"1..4", []float64{1, 2, 3, 4}, 2.5, 1.960 * math.Sqrt(5.0/3.0) / 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, c := stats.MeanConf95(tc.xs)
			assert.InDelta(t, tc.wantMean, m, 1e-12)
			assert.InDelta(t, tc.wantConf, c, 1e-12)
			assert.InDelta(t, tc.wantMean, stats.Mean(tc.xs), 1e-12)
			assert.InDelta(t, tc.wantConf, stats.Conf95(tc.xs), 1e-12)
		})
	}
}

func TestSample(t *testing.T) {
	var s stats.Sample
	assert.Equal(t, 0, s.Len())
	for _, x := range []float64{10, 20, 30} {
		s.Add(x)
	}
	assert.Equal(t, 3, s.Len())
	m, c := s.MeanConf95()
	assert.InDelta(t, 20, m, 1e-12)
	assert.InDelta(t, 1.960*10/math.Sqrt(3), c, 1e-12)
	assert.Equal(t, []float64{10, 20, 30}, s.Values())
}
