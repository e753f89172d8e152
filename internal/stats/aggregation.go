package stats

import (
	"sort"
)

// Mean calculates the arithmetic mean of a slice of float64 values
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// CountPair is one label with its occurrence count.
type CountPair struct {
	Label string
	Count int
}

// TopCounts tallies label occurrences and returns the n most frequent,
// descending by count with ties broken alphabetically so rankings are stable
// across rebuilds.
func TopCounts(labels []string, n int) []CountPair {
	if len(labels) == 0 || n <= 0 {
		return nil
	}

	counts := make(map[string]int)
	for _, l := range labels {
		counts[l]++
	}

	pairs := make([]CountPair, 0, len(counts))
	for label, count := range counts {
		pairs = append(pairs, CountPair{Label: label, Count: count})
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Count != pairs[j].Count {
			return pairs[i].Count > pairs[j].Count
		}
		return pairs[i].Label < pairs[j].Label
	})

	if len(pairs) > n {
		pairs = pairs[:n]
	}
	return pairs
}

// Distinct returns the number of unique labels.
func Distinct(labels []string) int {
	seen := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		seen[l] = struct{}{}
	}
	return len(seen)
}
