package application

import (
	"fmt"

	"github.com/sebuszqo/BudgetPlanner/internal/budget/domain"
	budgetErrors "github.com/sebuszqo/BudgetPlanner/internal/budget/errors"
)

// CustomBreakdown is the user-supplied split for a customizable rule. Tier
// labels are free text, so both labels and percentages have to be stored.
type CustomBreakdown struct {
	Categories  []string `json:"categories"`
	Percentages []int    `json:"percentages"`
}

// isComplete mirrors the selection behavior of the rule picker: a missing or
// partial custom breakdown silently falls back to the rule default.
func (cb *CustomBreakdown) isComplete() bool {
	return cb != nil &&
		len(cb.Categories) > 0 &&
		len(cb.Percentages) > 0 &&
		len(cb.Categories) == len(cb.Percentages)
}

type RuleService struct {
	rules    domain.RuleRepository
	profiles domain.ProfileRepository
}

func NewRuleService(rules domain.RuleRepository, profiles domain.ProfileRepository) *RuleService {
	return &RuleService{rules: rules, profiles: profiles}
}

func (s *RuleService) ListRules() ([]domain.Rule, error) {
	return s.rules.FindAll()
}

// GetSelectedRule returns the rule the profile currently references, or a nil
// rule when the user has not picked one yet.
func (s *RuleService) GetSelectedRule(userID string) (*domain.Rule, *domain.Profile, error) {
	profile, err := s.profiles.FindByUserID(userID)
	if err != nil {
		return nil, nil, err
	}
	if profile.RuleID == "" {
		return nil, profile, nil
	}
	rule, err := s.rules.FindByID(profile.RuleID)
	if err != nil {
		return nil, nil, err
	}
	return rule, profile, nil
}

// SelectRule points the profile at a rule and installs the active breakdown.
// A non-customizable rule, or an absent/incomplete custom breakdown, installs
// the rule default and clears any custom state. An invalid custom breakdown
// leaves the profile untouched.
func (s *RuleService) SelectRule(userID, ruleID string, custom *CustomBreakdown) (*domain.Profile, error) {
	profile, err := s.profiles.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	rule, err := s.rules.FindByID(ruleID)
	if err != nil {
		return nil, err
	}

	if !rule.IsCustomizable || !custom.isComplete() {
		profile.Breakdown = rule.DefaultBreakdown
		profile.IsCustom = false
	} else {
		for _, label := range custom.Categories {
			if label == "" {
				return nil, budgetErrors.NewValidationError("tier labels must not be empty")
			}
		}
		if rule.PriorityLimit != nil && len(custom.Percentages) > *rule.PriorityLimit {
			return nil, budgetErrors.NewValidationError(
				fmt.Sprintf("rule %q supports at most %d priorities", rule.Name, *rule.PriorityLimit))
		}
		if err := domain.ValidateBreakdown(custom.Percentages); err != nil {
			return nil, err
		}
		profile.Breakdown = domain.NewBreakdown(custom.Categories, custom.Percentages)
		profile.IsCustom = true
	}
	profile.RuleID = rule.ID

	if err := s.profiles.SaveSelection(*profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// EnsureDefaultRules seeds the reference rules on an empty store. Existing
// rules are left alone so administrative edits survive restarts.
func (s *RuleService) EnsureDefaultRules() error {
	count, err := s.rules.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	for _, rule := range DefaultRules() {
		if err := s.rules.Save(rule); err != nil {
			return err
		}
	}
	return nil
}

// DefaultRules is the administrative seed set.
func DefaultRules() []domain.Rule {
	customLimit := 5
	return []domain.Rule{
		{
			ID:               "50-30-20",
			Name:             "50/30/20",
			DefaultBreakdown: domain.NewBreakdown([]string{"Needs", "Wants", "Savings"}, []int{50, 30, 20}),
			IsCustomizable:   false,
		},
		{
			ID:               "80-20",
			Name:             "80/20",
			DefaultBreakdown: domain.NewBreakdown([]string{"Needs", "Savings"}, []int{80, 20}),
			IsCustomizable:   true,
		},
		{
			ID:               "60-20-20",
			Name:             "60/20/20",
			DefaultBreakdown: domain.NewBreakdown([]string{"Needs", "Wants", "Savings"}, []int{60, 20, 20}),
			IsCustomizable:   true,
		},
		{
			ID:               "custom",
			Name:             "Custom",
			DefaultBreakdown: domain.NewBreakdown([]string{"Needs", "Wants", "Savings"}, []int{50, 30, 20}),
			IsCustomizable:   true,
			PriorityLimit:    &customLimit,
		},
	}
}
