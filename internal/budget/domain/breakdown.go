package domain

import (
	"github.com/sebuszqo/BudgetPlanner/internal/budget/errors"
)

// Tier is one priority bucket of a breakdown. Priority 1 is the most
// restrictive tier by convention (e.g. "Needs").
type Tier struct {
	Label   string `json:"label"`
	Percent int    `json:"percent"`
}

// Breakdown is the ordered percentage split across priority tiers.
// The tier index of a category is its 1-based position in this sequence.
type Breakdown []Tier

// NewBreakdown pairs labels with percentages by position. When the slices
// differ in length the extra entries are dropped; a truncated breakdown will
// fail Validate unless the surviving percentages still sum to 100.
func NewBreakdown(labels []string, percentages []int) Breakdown {
	n := len(labels)
	if len(percentages) < n {
		n = len(percentages)
	}
	breakdown := make(Breakdown, n)
	for i := 0; i < n; i++ {
		breakdown[i] = Tier{Label: labels[i], Percent: percentages[i]}
	}
	return breakdown
}

func (b Breakdown) Labels() []string {
	labels := make([]string, len(b))
	for i, tier := range b {
		labels[i] = tier.Label
	}
	return labels
}

func (b Breakdown) Percentages() []int {
	percentages := make([]int, len(b))
	for i, tier := range b {
		percentages[i] = tier.Percent
	}
	return percentages
}

// Label returns the display label for a 1-based tier index.
func (b Breakdown) Label(tier int) string {
	if tier < 1 || tier > len(b) {
		return ""
	}
	return b[tier-1].Label
}

func (b Breakdown) Equal(other Breakdown) bool {
	if len(b) != len(other) {
		return false
	}
	for i := range b {
		if b[i] != other[i] {
			return false
		}
	}
	return true
}

func (b Breakdown) Validate() error {
	return ValidateBreakdown(b.Percentages())
}

// ValidateBreakdown accepts an ordered percentage sequence iff it is non-empty,
// every value is non-negative and the values sum to exactly 100. Percentages
// are whole numbers entered by a human, so 99 and 101 both reject.
func ValidateBreakdown(percentages []int) error {
	if len(percentages) == 0 {
		return errors.NewValidationError("breakdown must contain at least one tier")
	}
	sum := 0
	for _, percent := range percentages {
		if percent < 0 {
			return errors.NewValidationError("percentages must not be negative")
		}
		sum += percent
	}
	if sum != 100 {
		return errors.NewBreakdownSumError(sum)
	}
	return nil
}
