package infrastructure

import (
	"github.com/sebuszqo/BudgetPlanner/internal/budget/domain"
	budgetErrors "github.com/sebuszqo/BudgetPlanner/internal/budget/errors"
)

type MockCategoryRepository struct {
	Categories []domain.Category
}

func (m *MockCategoryRepository) Save(category domain.Category) error {
	m.Categories = append(m.Categories, category)
	return nil
}

func (m *MockCategoryRepository) FindByUser(userID string) ([]domain.Category, error) {
	var categories []domain.Category
	for _, category := range m.Categories {
		if category.UserID == userID {
			categories = append(categories, category)
		}
	}
	return categories, nil
}

func (m *MockCategoryRepository) FindByID(categoryID string) (*domain.Category, error) {
	for _, category := range m.Categories {
		if category.ID == categoryID {
			found := category
			return &found, nil
		}
	}
	return nil, budgetErrors.NewNotFoundError("category")
}

func (m *MockCategoryRepository) UpdateAmount(categoryID string, amount int64) error {
	for i, category := range m.Categories {
		if category.ID == categoryID {
			m.Categories[i].Amount = amount
			return nil
		}
	}
	return budgetErrors.NewNotFoundError("category")
}

func (m *MockCategoryRepository) Delete(categoryID string) error {
	for i, category := range m.Categories {
		if category.ID == categoryID {
			m.Categories = append(m.Categories[:i], m.Categories[i+1:]...)
			return nil
		}
	}
	return budgetErrors.NewNotFoundError("category")
}

func (m *MockCategoryRepository) ResetAmounts() error {
	for i := range m.Categories {
		m.Categories[i].Amount = 0
	}
	return nil
}
