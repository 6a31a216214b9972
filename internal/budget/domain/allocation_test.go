package domain

import (
	"testing"

	budgetErrors "github.com/sebuszqo/BudgetPlanner/internal/budget/errors"
	"github.com/stretchr/testify/assert"
)

func TestCeilings(t *testing.T) {
	tests := []struct {
		name        string
		income      int64
		labels      []string
		percentages []int
		want        []int64
	}{
		{
			name:        "50/30/20 on 60000",
			income:      60000,
			labels:      []string{"Needs", "Wants", "Savings"},
			percentages: []int{50, 30, 20},
			want:        []int64{30000, 18000, 12000},
		},
		{
			name:        "80/20 on 100000",
			income:      100000,
			labels:      []string{"Needs", "Savings"},
			percentages: []int{80, 20},
			want:        []int64{80000, 20000},
		},
		{
			name:        "zero income",
			income:      0,
			labels:      []string{"Needs", "Wants", "Savings"},
			percentages: []int{50, 30, 20},
			want:        []int64{0, 0, 0},
		},
		{
			name:        "half units round up",
			income:      75,
			labels:      []string{"Needs", "Savings"},
			percentages: []int{50, 50},
			want:        []int64{38, 38},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ceilings, err := Ceilings(tt.income, NewBreakdown(tt.labels, tt.percentages))
			assert.NoError(t, err)
			assert.Equal(t, tt.want, ceilings)
		})
	}
}

func TestCeilings_NegativeIncome(t *testing.T) {
	_, err := Ceilings(-1, NewBreakdown([]string{"Needs", "Savings"}, []int{80, 20}))
	assert.Error(t, err)
	assert.True(t, budgetErrors.IsInvalidInputError(err))
}

// Each tier rounds on its own, so the ceilings may drift from income by up to
// one unit per tier beyond the first. That drift is accepted, not corrected.
func TestCeilings_IndependentRoundingDrift(t *testing.T) {
	breakdown := NewBreakdown([]string{"A", "B", "C"}, []int{33, 33, 34})

	ceilings, err := Ceilings(101, breakdown)
	assert.NoError(t, err)

	var sum int64
	for _, ceiling := range ceilings {
		sum += ceiling
	}
	drift := sum - 101
	if drift < 0 {
		drift = -drift
	}
	assert.LessOrEqual(t, drift, int64(len(breakdown)-1))
}
