package quiz

import (
	"math"
	"sort"
	"strconv"
)

// nonNumericSortKey orders labels without a leading integer after every
// numeric-range label.
const nonNumericSortKey = math.MaxInt

// GroupLabels returns the distinct group labels of the question list in
// natural order.
func GroupLabels(questions []Question) []string {
	seen := make(map[string]struct{}, len(questions))
	var labels []string

	for _, question := range questions {
		if _, ok := seen[question.Group]; ok {
			continue
		}
		seen[question.Group] = struct{}{}
		labels = append(labels, question.Group)
	}

	SortGroupLabels(labels)
	return labels
}

// SortGroupLabels orders labels by their leading integer, so numeric
// ranges like "1-50", "51-100", "101-150" sort numerically instead of
// lexicographically. Labels without a leading integer sort after every
// numeric one; ties fall back to plain string order.
func SortGroupLabels(labels []string) {
	sort.SliceStable(labels, func(i, j int) bool {
		keyI := leadingNumber(labels[i])
		keyJ := leadingNumber(labels[j])
		if keyI != keyJ {
			return keyI < keyJ
		}
		return labels[i] < labels[j]
	})
}

// leadingNumber extracts the integer prefix of a label like "51-100".
func leadingNumber(label string) int {
	end := 0
	for end < len(label) && label[end] >= '0' && label[end] <= '9' {
		end++
	}
	if end == 0 {
		return nonNumericSortKey
	}

	number, err := strconv.Atoi(label[:end])
	if err != nil {
		// Digit prefix too large for int.
		return nonNumericSortKey
	}
	return number
}

// FilterByGroup returns the questions carrying the given group label.
// An empty label selects every question. The result is always a copy.
func FilterByGroup(questions []Question, label string) []Question {
	if label == "" {
		filtered := make([]Question, len(questions))
		copy(filtered, questions)
		return filtered
	}

	var filtered []Question
	for _, question := range questions {
		if question.Group == label {
			filtered = append(filtered, question)
		}
	}
	return filtered
}
