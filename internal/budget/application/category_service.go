package application

import (
	"strings"

	"github.com/google/uuid"
	"github.com/sebuszqo/BudgetPlanner/internal/budget/domain"
	budgetErrors "github.com/sebuszqo/BudgetPlanner/internal/budget/errors"
)

// CategoryService validates and persists category mutations. Every operation
// re-reads the profile and category set from the store before deciding, so a
// call never acts on stale client-supplied totals. There is no locking across
// the read-validate-write sequence; two concurrent creates can each pass
// validation and jointly overshoot a ceiling.
type CategoryService struct {
	categories domain.CategoryRepository
	profiles   domain.ProfileRepository
}

func NewCategoryService(categories domain.CategoryRepository, profiles domain.ProfileRepository) *CategoryService {
	return &CategoryService{categories: categories, profiles: profiles}
}

// CreateCategory adds a category under a priority tier. The new category's
// limit must fit under the tier ceiling together with the limits of the
// categories already in that tier. New categories start with amount 0.
func (s *CategoryService) CreateCategory(userID, name string, priority int, limit int64) (*domain.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, budgetErrors.NewValidationError("category name must not be empty")
	}
	if limit < 0 {
		return nil, budgetErrors.NewInvalidInputError("limit must not be negative")
	}

	profile, err := s.profiles.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	if priority < 1 || priority > len(profile.Breakdown) {
		return nil, budgetErrors.NewInvalidTierError(priority, len(profile.Breakdown))
	}

	ceilings, err := domain.Ceilings(profile.MonthlyIncome, profile.Breakdown)
	if err != nil {
		return nil, err
	}
	existing, err := s.categories.FindByUser(userID)
	if err != nil {
		return nil, err
	}

	ledger := domain.NewLedger(ceilings, existing)
	if ledger.WouldExceedTierLimit(priority, limit) {
		return nil, &budgetErrors.BudgetExceededError{
			Tier:      priority,
			Label:     profile.Breakdown.Label(priority),
			Attempted: ledger.LimitTotal(priority) + limit,
			Ceiling:   ceilings[priority-1],
		}
	}

	category := domain.Category{
		ID:       uuid.NewString(),
		UserID:   userID,
		Name:     name,
		Priority: priority,
		Amount:   0,
		Limit:    limit,
	}
	if err := s.categories.Save(category); err != nil {
		return nil, err
	}
	return &category, nil
}

// AdjustAmount sets a category's spent amount. Increases are capped by the
// category's own limit; decreases always go through, clamped at zero, even
// when the stored amount already sits above the limit.
func (s *CategoryService) AdjustAmount(userID, categoryID string, newAmount int64) (*domain.Category, error) {
	category, err := s.findOwned(userID, categoryID)
	if err != nil {
		return nil, err
	}

	if newAmount < 0 {
		newAmount = 0
	}
	if newAmount > category.Amount && newAmount > category.Limit {
		return nil, &budgetErrors.LimitExceededError{
			CategoryName: category.Name,
			Requested:    newAmount,
			Limit:        category.Limit,
		}
	}

	if err := s.categories.UpdateAmount(category.ID, newAmount); err != nil {
		return nil, err
	}
	category.Amount = newAmount
	return category, nil
}

// DeleteCategory removes a category. Deleting an id that is already gone
// reports NotFound, so a repeated delete is safe.
func (s *CategoryService) DeleteCategory(userID, categoryID string) error {
	category, err := s.findOwned(userID, categoryID)
	if err != nil {
		return err
	}
	return s.categories.Delete(category.ID)
}

func (s *CategoryService) ListCategories(userID string) ([]domain.Category, error) {
	return s.categories.FindByUser(userID)
}

// GetSummary computes the per-tier budget state from freshly read store data.
func (s *CategoryService) GetSummary(userID string) (*domain.Summary, error) {
	profile, err := s.profiles.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	categories, err := s.categories.FindByUser(userID)
	if err != nil {
		return nil, err
	}
	return domain.Summarize(*profile, categories)
}

// ResetMonthlyAmounts zeroes every category amount so a new budgeting month
// starts from a clean slate. Limits and breakdowns are untouched.
func (s *CategoryService) ResetMonthlyAmounts() error {
	return s.categories.ResetAmounts()
}

// findOwned hides other users' categories behind NotFound rather than a
// distinct authorization error.
func (s *CategoryService) findOwned(userID, categoryID string) (*domain.Category, error) {
	category, err := s.categories.FindByID(categoryID)
	if err != nil {
		return nil, err
	}
	if category.UserID != userID {
		return nil, budgetErrors.NewNotFoundError("category")
	}
	return category, nil
}
