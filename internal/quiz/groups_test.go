package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortGroupLabelsNumericRanges(t *testing.T) {
	labels := []string{"101-150", "1-50", "51-100", "11-20"}
	SortGroupLabels(labels)
	assert.Equal(t, []string{"1-50", "11-20", "51-100", "101-150"}, labels)
}

func TestSortGroupLabelsNonNumericAfterNumeric(t *testing.T) {
	labels := []string{"Mixed", "51-100", "All sorts", "1-50", "Verbs"}
	SortGroupLabels(labels)
	assert.Equal(t, []string{"1-50", "51-100", "All sorts", "Mixed", "Verbs"}, labels)
}

func TestSortGroupLabelsTiesFallBackToStringOrder(t *testing.T) {
	labels := []string{"1-50 hard", "1-50", "1-50 easy"}
	SortGroupLabels(labels)
	assert.Equal(t, []string{"1-50", "1-50 easy", "1-50 hard"}, labels)
}

func TestSortGroupLabelsDigitsOnly(t *testing.T) {
	labels := []string{"42", "7", "100"}
	SortGroupLabels(labels)
	assert.Equal(t, []string{"7", "42", "100"}, labels)
}

func TestSortGroupLabelsEmpty(t *testing.T) {
	var labels []string
	SortGroupLabels(labels)
	assert.Empty(t, labels)
}

func TestGroupLabelsDistinctAndSorted(t *testing.T) {
	questions := []Question{
		{Prompt: "q1", Group: "51-100"},
		{Prompt: "q2", Group: "1-50"},
		{Prompt: "q3", Group: "51-100"},
		{Prompt: "q4", Group: "Irregular"},
	}

	labels := GroupLabels(questions)
	assert.Equal(t, []string{"1-50", "51-100", "Irregular"}, labels)
}

func TestFilterByGroup(t *testing.T) {
	questions := []Question{
		{Prompt: "q1", Group: "1-50"},
		{Prompt: "q2", Group: "51-100"},
		{Prompt: "q3", Group: "1-50"},
	}

	filtered := FilterByGroup(questions, "1-50")
	require.Len(t, filtered, 2)
	assert.Equal(t, "q1", filtered[0].Prompt)
	assert.Equal(t, "q3", filtered[1].Prompt)

	assert.Empty(t, FilterByGroup(questions, "101-150"))
}

func TestFilterByGroupEmptyLabelCopiesAll(t *testing.T) {
	questions := []Question{
		{Prompt: "q1", Group: "1-50"},
		{Prompt: "q2", Group: "51-100"},
	}

	all := FilterByGroup(questions, "")
	require.Len(t, all, 2)

	all[0].Prompt = "mutated"
	assert.Equal(t, "q1", questions[0].Prompt)
}
