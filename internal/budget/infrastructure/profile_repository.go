package infrastructure

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/sebuszqo/BudgetPlanner/internal/budget/domain"
	budgetErrors "github.com/sebuszqo/BudgetPlanner/internal/budget/errors"
)

// ProfileRepository reads and writes the budgeting columns of the users table.
// Account fields (credentials, 2FA) are owned by the user package; this type
// only touches income, rule selection and the active breakdown.
type ProfileRepository struct {
	db *sql.DB
}

func NewProfileRepository(db *sql.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) FindByUserID(userID string) (*domain.Profile, error) {
	query := `
		SELECT id, monthly_income, selected_rule_id, breakdown_labels, breakdown_percentages, is_custom_breakdown
		FROM users
		WHERE id = $1
	`
	var profile domain.Profile
	var ruleID sql.NullString
	var labels, percentages []byte

	err := r.db.QueryRow(query, userID).Scan(
		&profile.UserID, &profile.MonthlyIncome, &ruleID, &labels, &percentages, &profile.IsCustom)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, budgetErrors.NewNotFoundError("profile")
		}
		return nil, fmt.Errorf("could not find profile: %w", err)
	}

	profile.RuleID = ruleID.String
	profile.Breakdown, err = unmarshalBreakdown(labels, percentages)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepository) SaveSelection(profile domain.Profile) error {
	labels, percentages, err := marshalBreakdown(profile.Breakdown)
	if err != nil {
		return err
	}
	query := `
		UPDATE users
		SET selected_rule_id = $1,
		    breakdown_labels = $2,
		    breakdown_percentages = $3,
		    is_custom_breakdown = $4,
		    updated_at = NOW()
		WHERE id = $5
	`
	result, err := r.db.Exec(query, profile.RuleID, labels, percentages, profile.IsCustom, profile.UserID)
	if err != nil {
		return fmt.Errorf("could not save rule selection: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return budgetErrors.NewNotFoundError("profile")
	}
	return nil
}
