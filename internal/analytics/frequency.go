package analytics

import "slices"

// LabelCount is a label with its number of occurrences.
type LabelCount struct {
	Label string
	Count int
}

// Frequency counts labels and ranks them by count descending. Ties keep the order in
// which labels were first seen, so the result is deterministic. Empty labels are
// ignored.
func Frequency(labels []string) []LabelCount {
	index := make(map[string]int, len(labels))
	counts := make([]LabelCount, 0, len(labels))
	for _, l := range labels {
		if l == "" {
			continue
		}
		if i, ok := index[l]; ok {
			counts[i].Count++
			continue
		}
		index[l] = len(counts)
		counts = append(counts, LabelCount{Label: l, Count: 1})
	}

	slices.SortStableFunc(counts, func(a, b LabelCount) int { return b.Count - a.Count })
	return counts
}

// TopN returns the n most frequent labels. n <= 0 returns all of them.
func TopN(labels []string, n int) []LabelCount {
	counts := Frequency(labels)
	if n > 0 && len(counts) > n {
		counts = counts[:n]
	}
	return counts
}
