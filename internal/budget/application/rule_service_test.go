package application

import (
	"testing"

	"github.com/sebuszqo/BudgetPlanner/internal/budget/domain"
	budgetErrors "github.com/sebuszqo/BudgetPlanner/internal/budget/errors"
	"github.com/sebuszqo/BudgetPlanner/internal/budget/infrastructure"
	"github.com/stretchr/testify/assert"
)

func newRuleFixture() (*RuleService, *infrastructure.MockRuleRepository, *infrastructure.MockProfileRepository) {
	rules := &infrastructure.MockRuleRepository{Rules: DefaultRules()}
	profiles := &infrastructure.MockProfileRepository{
		Profiles: map[string]domain.Profile{
			"user-1": {UserID: "user-1", MonthlyIncome: 60000},
		},
	}
	return NewRuleService(rules, profiles), rules, profiles
}

func TestSelectRule_NonCustomizableInstallsDefault(t *testing.T) {
	service, _, profiles := newRuleFixture()

	// A custom breakdown for a non-customizable rule is ignored, not rejected.
	profile, err := service.SelectRule("user-1", "50-30-20", &CustomBreakdown{
		Categories:  []string{"Rent", "Fun"},
		Percentages: []int{70, 30},
	})
	assert.NoError(t, err)
	assert.Equal(t, "50-30-20", profile.RuleID)
	assert.False(t, profile.IsCustom)
	assert.Equal(t, []int{50, 30, 20}, profile.Breakdown.Percentages())
	assert.Equal(t, []string{"Needs", "Wants", "Savings"}, profile.Breakdown.Labels())

	stored := profiles.Profiles["user-1"]
	assert.False(t, stored.IsCustom)
}

func TestSelectRule_IncompleteCustomFallsBackToDefault(t *testing.T) {
	service, _, _ := newRuleFixture()

	tests := []struct {
		name   string
		custom *CustomBreakdown
	}{
		{name: "nil custom", custom: nil},
		{name: "missing percentages", custom: &CustomBreakdown{Categories: []string{"Needs", "Savings"}}},
		{name: "missing categories", custom: &CustomBreakdown{Percentages: []int{80, 20}}},
		{name: "length mismatch", custom: &CustomBreakdown{Categories: []string{"Needs"}, Percentages: []int{80, 20}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile, err := service.SelectRule("user-1", "80-20", tt.custom)
			assert.NoError(t, err)
			assert.False(t, profile.IsCustom)
			assert.Equal(t, []int{80, 20}, profile.Breakdown.Percentages())
		})
	}
}

func TestSelectRule_ValidCustomBreakdown(t *testing.T) {
	service, _, profiles := newRuleFixture()

	profile, err := service.SelectRule("user-1", "80-20", &CustomBreakdown{
		Categories:  []string{"Essentials", "Investments"},
		Percentages: []int{75, 25},
	})
	assert.NoError(t, err)
	assert.True(t, profile.IsCustom)
	assert.Equal(t, []string{"Essentials", "Investments"}, profile.Breakdown.Labels())
	assert.Equal(t, []int{75, 25}, profile.Breakdown.Percentages())

	stored := profiles.Profiles["user-1"]
	assert.True(t, stored.Breakdown.Equal(profile.Breakdown))
}

func TestSelectRule_InvalidSumLeavesProfileUnchanged(t *testing.T) {
	service, _, profiles := newRuleFixture()
	before := profiles.Profiles["user-1"]

	_, err := service.SelectRule("user-1", "80-20", &CustomBreakdown{
		Categories:  []string{"Essentials", "Investments"},
		Percentages: []int{75, 26},
	})
	assert.Error(t, err)
	assert.True(t, budgetErrors.IsValidationError(err))
	assert.EqualError(t, err, "percentages must sum to 100, got 101")

	// No partial writes.
	assert.Equal(t, 0, profiles.Saves)
	assert.Equal(t, before, profiles.Profiles["user-1"])
}

func TestSelectRule_Idempotent(t *testing.T) {
	service, _, profiles := newRuleFixture()
	custom := &CustomBreakdown{
		Categories:  []string{"Essentials", "Investments"},
		Percentages: []int{75, 25},
	}

	first, err := service.SelectRule("user-1", "80-20", custom)
	assert.NoError(t, err)
	afterFirst := profiles.Profiles["user-1"]

	second, err := service.SelectRule("user-1", "80-20", custom)
	assert.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, afterFirst, profiles.Profiles["user-1"])
}

func TestSelectRule_PriorityLimit(t *testing.T) {
	service, _, _ := newRuleFixture()

	_, err := service.SelectRule("user-1", "custom", &CustomBreakdown{
		Categories:  []string{"A", "B", "C", "D", "E", "F"},
		Percentages: []int{20, 20, 20, 20, 10, 10},
	})
	assert.Error(t, err)
	assert.True(t, budgetErrors.IsValidationError(err))
}

func TestSelectRule_EmptyTierLabel(t *testing.T) {
	service, _, _ := newRuleFixture()

	_, err := service.SelectRule("user-1", "80-20", &CustomBreakdown{
		Categories:  []string{"Essentials", ""},
		Percentages: []int{75, 25},
	})
	assert.Error(t, err)
	assert.True(t, budgetErrors.IsValidationError(err))
}

func TestSelectRule_UnknownRuleOrProfile(t *testing.T) {
	service, _, _ := newRuleFixture()

	_, err := service.SelectRule("user-1", "90-10", nil)
	assert.True(t, budgetErrors.IsNotFoundError(err))

	_, err = service.SelectRule("nobody", "80-20", nil)
	assert.True(t, budgetErrors.IsNotFoundError(err))
}

func TestSelectRule_ShrinkingBreakdownKeepsProfileValid(t *testing.T) {
	service, _, _ := newRuleFixture()

	_, err := service.SelectRule("user-1", "50-30-20", nil)
	assert.NoError(t, err)

	// Moving to a two-tier rule is allowed even if tier-3 categories exist;
	// they become orphans handled at summary time.
	profile, err := service.SelectRule("user-1", "80-20", nil)
	assert.NoError(t, err)
	assert.Len(t, profile.Breakdown, 2)
}

func TestEnsureDefaultRules(t *testing.T) {
	rules := &infrastructure.MockRuleRepository{}
	profiles := &infrastructure.MockProfileRepository{}
	service := NewRuleService(rules, profiles)

	assert.NoError(t, service.EnsureDefaultRules())
	assert.Len(t, rules.Rules, 4)

	for _, rule := range rules.Rules {
		assert.NoError(t, rule.DefaultBreakdown.Validate())
	}

	// A second run never duplicates the seed set.
	assert.NoError(t, service.EnsureDefaultRules())
	assert.Len(t, rules.Rules, 4)
}

func TestGetSelectedRule(t *testing.T) {
	service, _, _ := newRuleFixture()

	rule, profile, err := service.GetSelectedRule("user-1")
	assert.NoError(t, err)
	assert.Nil(t, rule)
	assert.NotNil(t, profile)

	_, err = service.SelectRule("user-1", "60-20-20", nil)
	assert.NoError(t, err)

	rule, profile, err = service.GetSelectedRule("user-1")
	assert.NoError(t, err)
	assert.Equal(t, "60/20/20", rule.Name)
	assert.Equal(t, "60-20-20", profile.RuleID)
}
