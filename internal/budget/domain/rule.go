package domain

// Rule is shared, read-only reference data describing a budgeting strategy
// (e.g. "50/30/20"). Rules are seeded administratively, never written by end
// users.
type Rule struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	DefaultBreakdown Breakdown `json:"defaultBreakdown"`
	IsCustomizable   bool      `json:"isCustomizable"`
	// PriorityLimit caps how many tiers a custom breakdown may define.
	// nil means no cap.
	PriorityLimit *int `json:"priorityLimit,omitempty"`
}

type RuleRepository interface {
	FindByID(ruleID string) (*Rule, error)
	FindAll() ([]Rule, error)
	Save(rule Rule) error
	Count() (int, error)
}
