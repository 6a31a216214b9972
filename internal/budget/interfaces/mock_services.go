package interfaces

import (
	"github.com/sebuszqo/BudgetPlanner/internal/budget/application"
	"github.com/sebuszqo/BudgetPlanner/internal/budget/domain"
)

type MockRuleService struct {
	Rules       []domain.Rule
	Profile     *domain.Profile
	SelectedErr error
	Err         error
}

func (m *MockRuleService) ListRules() ([]domain.Rule, error) {
	return m.Rules, m.Err
}

func (m *MockRuleService) GetSelectedRule(userID string) (*domain.Rule, *domain.Profile, error) {
	if m.Err != nil {
		return nil, nil, m.Err
	}
	if len(m.Rules) == 0 {
		return nil, m.Profile, nil
	}
	return &m.Rules[0], m.Profile, nil
}

func (m *MockRuleService) SelectRule(userID, ruleID string, custom *application.CustomBreakdown) (*domain.Profile, error) {
	if m.SelectedErr != nil {
		return nil, m.SelectedErr
	}
	return m.Profile, nil
}

type MockCategoryService struct {
	Categories []domain.Category
	Category   *domain.Category
	Summary    *domain.Summary
	Err        error
}

func (m *MockCategoryService) CreateCategory(userID, name string, priority int, limit int64) (*domain.Category, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Category, nil
}

func (m *MockCategoryService) AdjustAmount(userID, categoryID string, newAmount int64) (*domain.Category, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Category, nil
}

func (m *MockCategoryService) DeleteCategory(userID, categoryID string) error {
	return m.Err
}

func (m *MockCategoryService) ListCategories(userID string) ([]domain.Category, error) {
	return m.Categories, m.Err
}

func (m *MockCategoryService) GetSummary(userID string) (*domain.Summary, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Summary, nil
}
