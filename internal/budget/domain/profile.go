package domain

// Profile is the budgeting view of a single user: monthly income, the selected
// rule and the breakdown currently in force. When IsCustom is false the active
// breakdown is the rule's default.
type Profile struct {
	UserID        string
	MonthlyIncome int64
	RuleID        string
	Breakdown     Breakdown
	IsCustom      bool
}

type ProfileRepository interface {
	FindByUserID(userID string) (*Profile, error)
	// SaveSelection persists the rule reference, active breakdown and custom
	// flag in one write.
	SaveSelection(profile Profile) error
}
