// Package histogram provides fixed-bin counting of sample values for
// display layers.
package histogram

// Bin is one histogram bucket covering [Low, High); the final bucket also
// includes its upper edge so the maximum sample is counted.
type Bin struct {
	Low   float64 `json:"low"`
	High  float64 `json:"high"`
	Count int     `json:"count"`
}

// Compute buckets samples into the requested number of equal-width bins
// spanning [min(samples), max(samples)]. When every sample is identical
// the result collapses to a single populated bin. Returns nil for empty
// input or a non-positive bin count.
func Compute(samples []float64, bins int) []Bin {
	if len(samples) == 0 || bins <= 0 {
		return nil
	}

	min, max := samples[0], samples[0]
	for _, v := range samples[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	if min == max {
		return []Bin{{Low: min, High: max, Count: len(samples)}}
	}

	width := (max - min) / float64(bins)
	result := make([]Bin, bins)
	for i := range result {
		result[i].Low = min + float64(i)*width
		result[i].High = min + float64(i+1)*width
	}
	result[bins-1].High = max

	for _, v := range samples {
		idx := int((v - min) / width)
		if idx >= bins {
			idx = bins - 1
		}
		result[idx].Count++
	}

	return result
}
