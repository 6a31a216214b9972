package infrastructure

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/sebuszqo/BudgetPlanner/internal/budget/domain"
	budgetErrors "github.com/sebuszqo/BudgetPlanner/internal/budget/errors"
)

type CategoryRepository struct {
	db *sql.DB
}

func NewCategoryRepository(db *sql.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Save(category domain.Category) error {
	query := `
		INSERT INTO categories (id, user_id, name, priority, amount, category_limit)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.Exec(query, category.ID, category.UserID, category.Name, category.Priority, category.Amount, category.Limit)
	if err != nil {
		return fmt.Errorf("could not save category: %w", err)
	}
	return nil
}

func (r *CategoryRepository) FindByUser(userID string) ([]domain.Category, error) {
	query := `
		SELECT id, user_id, name, priority, amount, category_limit
		FROM categories
		WHERE user_id = $1
		ORDER BY priority, created_at
	`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var category domain.Category
		if err := rows.Scan(&category.ID, &category.UserID, &category.Name, &category.Priority, &category.Amount, &category.Limit); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

func (r *CategoryRepository) FindByID(categoryID string) (*domain.Category, error) {
	query := `
		SELECT id, user_id, name, priority, amount, category_limit
		FROM categories
		WHERE id = $1
	`
	var category domain.Category
	err := r.db.QueryRow(query, categoryID).Scan(
		&category.ID, &category.UserID, &category.Name, &category.Priority, &category.Amount, &category.Limit)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, budgetErrors.NewNotFoundError("category")
		}
		return nil, fmt.Errorf("could not find category: %w", err)
	}
	return &category, nil
}

func (r *CategoryRepository) UpdateAmount(categoryID string, amount int64) error {
	result, err := r.db.Exec("UPDATE categories SET amount = $1 WHERE id = $2", amount, categoryID)
	if err != nil {
		return fmt.Errorf("could not update category amount: %w", err)
	}
	return requireRow(result, "category")
}

func (r *CategoryRepository) Delete(categoryID string) error {
	result, err := r.db.Exec("DELETE FROM categories WHERE id = $1", categoryID)
	if err != nil {
		return fmt.Errorf("could not delete category: %w", err)
	}
	return requireRow(result, "category")
}

func (r *CategoryRepository) ResetAmounts() error {
	_, err := r.db.Exec("UPDATE categories SET amount = 0")
	if err != nil {
		return fmt.Errorf("could not reset category amounts: %w", err)
	}
	return nil
}

func requireRow(result sql.Result, resource string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return budgetErrors.NewNotFoundError(resource)
	}
	return nil
}
