package infrastructure

import (
	"github.com/sebuszqo/BudgetPlanner/internal/budget/domain"
	budgetErrors "github.com/sebuszqo/BudgetPlanner/internal/budget/errors"
)

type MockProfileRepository struct {
	Profiles map[string]domain.Profile
	SaveErr  error
	Saves    int
}

func (m *MockProfileRepository) FindByUserID(userID string) (*domain.Profile, error) {
	profile, ok := m.Profiles[userID]
	if !ok {
		return nil, budgetErrors.NewNotFoundError("profile")
	}
	found := profile
	return &found, nil
}

func (m *MockProfileRepository) SaveSelection(profile domain.Profile) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	if m.Profiles == nil {
		m.Profiles = map[string]domain.Profile{}
	}
	m.Profiles[profile.UserID] = profile
	m.Saves++
	return nil
}
