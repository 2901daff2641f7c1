package simulation

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// ErrEmptyDistribution is returned when summary statistics are requested
// for a zero-length sample set.
var ErrEmptyDistribution = errors.New("empty distribution")

// Summary holds the descriptive statistics of a yield distribution, all in
// percentage units.
type Summary struct {
	Mean float64 `json:"mean"`
	P5   float64 `json:"p5"`
	P95  float64 `json:"p95"`
}

// Summarize computes the mean and the 5th/95th percentiles of samples.
// The input slice is not modified.
func Summarize(samples []float64) (Summary, error) {
	if len(samples) == 0 {
		return Summary{}, fmt.Errorf("%w: no samples to summarize", ErrEmptyDistribution)
	}

	sum := 0.0
	for _, v := range samples {
		sum += v
	}

	sorted := make([]float64, len(samples))
	copy(sorted, samples)
	sort.Float64s(sorted)

	return Summary{
		Mean: sum / float64(len(samples)),
		P5:   percentile(sorted, 5),
		P95:  percentile(sorted, 95),
	}, nil
}

// percentile computes the q-th percentile of an ascending-sorted slice by
// interpolating linearly between the bracketing order statistics: the rank
// is q/100*(n-1), and fractional ranks blend the two neighboring values.
// A nearest-sample lookup is not equivalent and breaks the reference
// fixtures in the tests.
func percentile(sorted []float64, q float64) float64 {
	rank := q / 100 * float64(len(sorted)-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return sorted[lo]
	}
	frac := rank - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}
