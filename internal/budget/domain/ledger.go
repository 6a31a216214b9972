package domain

// Ledger is an in-memory view of one profile's categories against the per-tier
// ceilings. It only derives totals; it never mutates anything.
type Ledger struct {
	ceilings   []int64
	categories []Category
}

func NewLedger(ceilings []int64, categories []Category) *Ledger {
	return &Ledger{ceilings: ceilings, categories: categories}
}

// UsedAmount sums the amounts of the categories in a tier.
func (l *Ledger) UsedAmount(tier int) int64 {
	var used int64
	for _, category := range l.categories {
		if category.Priority == tier {
			used += category.Amount
		}
	}
	return used
}

// LimitTotal sums the limits of the categories in a tier.
func (l *Ledger) LimitTotal(tier int) int64 {
	var total int64
	for _, category := range l.categories {
		if category.Priority == tier {
			total += category.Limit
		}
	}
	return total
}

// Remaining is the tier ceiling minus the used amount. Negative means
// over-budget, which is a displayable state, not an error.
func (l *Ledger) Remaining(tier int) int64 {
	return l.ceiling(tier) - l.UsedAmount(tier)
}

// WouldExceedTierLimit reports whether adding proposedLimitDelta to the tier's
// limit total would push it past the tier ceiling. This is a pre-commit check;
// already stored rows may violate it.
func (l *Ledger) WouldExceedTierLimit(tier int, proposedLimitDelta int64) bool {
	return l.LimitTotal(tier)+proposedLimitDelta > l.ceiling(tier)
}

// Orphans returns the categories whose tier index exceeds the active
// breakdown, e.g. after the user switched to a rule with fewer tiers. They are
// kept, not deleted, and reported separately from the per-tier summary.
func (l *Ledger) Orphans() []Category {
	var orphans []Category
	for _, category := range l.categories {
		if category.Priority < 1 || category.Priority > len(l.ceilings) {
			orphans = append(orphans, category)
		}
	}
	return orphans
}

func (l *Ledger) ceiling(tier int) int64 {
	if tier < 1 || tier > len(l.ceilings) {
		return 0
	}
	return l.ceilings[tier-1]
}

type TierSummary struct {
	Priority   int    `json:"priority"`
	Label      string `json:"label"`
	Ceiling    int64  `json:"ceiling"`
	Used       int64  `json:"used"`
	Remaining  int64  `json:"remaining"`
	LimitTotal int64  `json:"limitTotal"`
}

type Summary struct {
	Tiers    []TierSummary `json:"tiers"`
	Orphaned []Category    `json:"orphaned,omitempty"`
}

// Summarize computes the per-tier budget state for a profile: ceiling, used
// amount, remaining budget and limit total for every tier of the active
// breakdown, plus the orphaned categories that no longer map to a tier.
func Summarize(profile Profile, categories []Category) (*Summary, error) {
	ceilings, err := Ceilings(profile.MonthlyIncome, profile.Breakdown)
	if err != nil {
		return nil, err
	}
	ledger := NewLedger(ceilings, categories)

	summary := &Summary{Tiers: make([]TierSummary, len(profile.Breakdown))}
	for i := range profile.Breakdown {
		tier := i + 1
		summary.Tiers[i] = TierSummary{
			Priority:   tier,
			Label:      profile.Breakdown.Label(tier),
			Ceiling:    ceilings[i],
			Used:       ledger.UsedAmount(tier),
			Remaining:  ledger.Remaining(tier),
			LimitTotal: ledger.LimitTotal(tier),
		}
	}
	summary.Orphaned = ledger.Orphans()
	return summary, nil
}
