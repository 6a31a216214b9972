package domain

import (
	"testing"

	budgetErrors "github.com/sebuszqo/BudgetPlanner/internal/budget/errors"
	"github.com/stretchr/testify/assert"
)

func TestValidateBreakdown(t *testing.T) {
	tests := []struct {
		name        string
		percentages []int
		wantErr     bool
	}{
		{name: "classic 50/30/20", percentages: []int{50, 30, 20}, wantErr: false},
		{name: "single tier taking everything", percentages: []int{100}, wantErr: false},
		{name: "sum one above", percentages: []int{50, 30, 21}, wantErr: true},
		{name: "sum one below", percentages: []int{50, 30, 19}, wantErr: true},
		{name: "empty sequence", percentages: []int{}, wantErr: true},
		{name: "negative percentage", percentages: []int{120, -20}, wantErr: true},
		{name: "zero percent tier is allowed", percentages: []int{100, 0}, wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBreakdown(tt.percentages)
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, budgetErrors.IsValidationError(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateBreakdown_ReportsComputedSum(t *testing.T) {
	err := ValidateBreakdown([]int{50, 30, 21})
	assert.EqualError(t, err, "percentages must sum to 100, got 101")
}

func TestBreakdown_LabelsAndPercentages(t *testing.T) {
	breakdown := NewBreakdown([]string{"Needs", "Wants", "Savings"}, []int{50, 30, 20})

	assert.Equal(t, []string{"Needs", "Wants", "Savings"}, breakdown.Labels())
	assert.Equal(t, []int{50, 30, 20}, breakdown.Percentages())
	assert.Equal(t, "Needs", breakdown.Label(1))
	assert.Equal(t, "Savings", breakdown.Label(3))
	assert.Equal(t, "", breakdown.Label(4))
}

func TestNewBreakdown_MismatchedLengthsTruncate(t *testing.T) {
	moreLabels := NewBreakdown([]string{"Needs", "Wants", "Savings"}, []int{80, 20})
	assert.Len(t, moreLabels, 2)
	assert.Equal(t, []string{"Needs", "Wants"}, moreLabels.Labels())
	assert.Equal(t, []int{80, 20}, moreLabels.Percentages())

	morePercentages := NewBreakdown([]string{"Needs"}, []int{50, 30, 20})
	assert.Len(t, morePercentages, 1)
	assert.Equal(t, []int{50}, morePercentages.Percentages())
	assert.Error(t, morePercentages.Validate())

	assert.Empty(t, NewBreakdown(nil, []int{100}))
}

func TestBreakdown_Equal(t *testing.T) {
	fiftyThirtyTwenty := NewBreakdown([]string{"Needs", "Wants", "Savings"}, []int{50, 30, 20})

	assert.True(t, fiftyThirtyTwenty.Equal(NewBreakdown([]string{"Needs", "Wants", "Savings"}, []int{50, 30, 20})))
	assert.False(t, fiftyThirtyTwenty.Equal(NewBreakdown([]string{"Needs", "Savings"}, []int{80, 20})))
	assert.False(t, fiftyThirtyTwenty.Equal(NewBreakdown([]string{"Needs", "Wants", "Savings"}, []int{60, 20, 20})))
}
