package domain

import (
	"github.com/sebuszqo/BudgetPlanner/internal/budget/errors"
)

// Ceilings converts monthly income and a breakdown into per-tier monetary
// ceilings, ceiling[i] = round(income * percent[i] / 100) with half-up
// rounding. Each tier rounds independently, so the ceilings may sum to up to
// len(breakdown)-1 units away from income. That matches how the budgets are
// presented to the user and is not corrected here.
func Ceilings(income int64, breakdown Breakdown) ([]int64, error) {
	if income < 0 {
		return nil, errors.NewInvalidInputError("income must not be negative")
	}
	ceilings := make([]int64, len(breakdown))
	for i, tier := range breakdown {
		ceilings[i] = (income*int64(tier.Percent) + 50) / 100
	}
	return ceilings, nil
}
