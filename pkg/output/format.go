// Package output provides utilities for formatting and displaying
// simulation results.
package output

import (
	"fmt"
	"strings"

	"github.com/abritton/policy-yield/internal/simulation"
	"github.com/abritton/policy-yield/pkg/constants"
	"github.com/abritton/policy-yield/pkg/histogram"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// barWidth is the character width of the widest histogram bar.
const barWidth = 60

// PrettyFormat outputs a human-readable rather than machine-readable
// report: the summary statistics followed by a histogram of the yield
// distribution with the mean and percentiles marked on their bins.
func PrettyFormat(summary simulation.Summary, samples []float64) {
	p := message.NewPrinter(language.English)
	_, _ = p.Printf("Simulated years: %d\n", len(samples))
	fmt.Printf("Mean Yield: %.2f%%\n", summary.Mean)
	fmt.Printf("5th Percentile: %.2f%%\n", summary.P5)
	fmt.Printf("95th Percentile: %.2f%%\n", summary.P95)

	bins := histogram.Compute(samples, constants.HistogramBins)
	if len(bins) == 0 {
		return
	}

	fmt.Printf("\nYield (%%) | Frequency\n")
	fmt.Printf("_________ | _________\n")

	maxCount := 0
	for _, bin := range bins {
		if bin.Count > maxCount {
			maxCount = bin.Count
		}
	}

	marks := referenceMarks(bins, summary)
	for i, bin := range bins {
		bar := ""
		if maxCount > 0 {
			bar = strings.Repeat("#", bin.Count*barWidth/maxCount)
		}
		if labels, ok := marks[i]; ok {
			fmt.Printf("%9.2f | %s <- %s\n", bin.Low, bar, strings.Join(labels, ", "))
		} else {
			fmt.Printf("%9.2f | %s\n", bin.Low, bar)
		}
	}
}

// referenceMarks maps bin index to the summary statistics that fall inside
// that bin.
func referenceMarks(bins []histogram.Bin, summary simulation.Summary) map[int][]string {
	refs := []struct {
		label string
		value float64
	}{
		{"p5", summary.P5},
		{"mean", summary.Mean},
		{"p95", summary.P95},
	}

	marks := make(map[int][]string)
	for _, ref := range refs {
		for i, bin := range bins {
			last := i == len(bins)-1
			if ref.value >= bin.Low && (ref.value < bin.High || (last && ref.value <= bin.High)) {
				marks[i] = append(marks[i], ref.label)
				break
			}
		}
	}
	return marks
}

// CsvFormat outputs one row per trial in comma-separated value format.
func CsvFormat(samples []float64) {
	fmt.Printf("\"trial\",\"yield_percent\"\n")
	for i, v := range samples {
		fmt.Printf(`"%d","%.6f"`, i+1, v)
		fmt.Printf("\n")
	}
}
