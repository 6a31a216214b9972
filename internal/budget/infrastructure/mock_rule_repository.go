package infrastructure

import (
	"github.com/sebuszqo/BudgetPlanner/internal/budget/domain"
	budgetErrors "github.com/sebuszqo/BudgetPlanner/internal/budget/errors"
)

type MockRuleRepository struct {
	Rules []domain.Rule
}

func (m *MockRuleRepository) FindByID(ruleID string) (*domain.Rule, error) {
	for _, rule := range m.Rules {
		if rule.ID == ruleID {
			found := rule
			return &found, nil
		}
	}
	return nil, budgetErrors.NewNotFoundError("rule")
}

func (m *MockRuleRepository) FindAll() ([]domain.Rule, error) {
	return m.Rules, nil
}

func (m *MockRuleRepository) Save(rule domain.Rule) error {
	for i, existing := range m.Rules {
		if existing.ID == rule.ID {
			m.Rules[i] = rule
			return nil
		}
	}
	m.Rules = append(m.Rules, rule)
	return nil
}

func (m *MockRuleRepository) Count() (int, error) {
	return len(m.Rules), nil
}
