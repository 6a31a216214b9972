package infrastructure

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sebuszqo/BudgetPlanner/internal/budget/domain"
	budgetErrors "github.com/sebuszqo/BudgetPlanner/internal/budget/errors"
)

type RuleRepository struct {
	db *sql.DB
}

func NewRuleRepository(db *sql.DB) *RuleRepository {
	return &RuleRepository{db: db}
}

func (r *RuleRepository) FindByID(ruleID string) (*domain.Rule, error) {
	query := `
		SELECT id, name, breakdown_labels, breakdown_percentages, is_customizable, priority_limit
		FROM rules
		WHERE id = $1
	`
	rule, err := scanRule(r.db.QueryRow(query, ruleID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, budgetErrors.NewNotFoundError("rule")
		}
		return nil, fmt.Errorf("could not find rule: %w", err)
	}
	return rule, nil
}

func (r *RuleRepository) FindAll() ([]domain.Rule, error) {
	query := `
		SELECT id, name, breakdown_labels, breakdown_percentages, is_customizable, priority_limit
		FROM rules
		ORDER BY name
	`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rules []domain.Rule
	for rows.Next() {
		rule, err := scanRule(rows)
		if err != nil {
			return nil, err
		}
		rules = append(rules, *rule)
	}
	return rules, rows.Err()
}

func (r *RuleRepository) Save(rule domain.Rule) error {
	labels, percentages, err := marshalBreakdown(rule.DefaultBreakdown)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO rules (id, name, breakdown_labels, breakdown_percentages, is_customizable, priority_limit)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name,
		    breakdown_labels = EXCLUDED.breakdown_labels,
		    breakdown_percentages = EXCLUDED.breakdown_percentages,
		    is_customizable = EXCLUDED.is_customizable,
		    priority_limit = EXCLUDED.priority_limit
	`
	var priorityLimit sql.NullInt64
	if rule.PriorityLimit != nil {
		priorityLimit = sql.NullInt64{Int64: int64(*rule.PriorityLimit), Valid: true}
	}
	_, err = r.db.Exec(query, rule.ID, rule.Name, labels, percentages, rule.IsCustomizable, priorityLimit)
	if err != nil {
		return fmt.Errorf("could not save rule: %w", err)
	}
	return nil
}

func (r *RuleRepository) Count() (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM rules").Scan(&count)
	return count, err
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRule(row rowScanner) (*domain.Rule, error) {
	var rule domain.Rule
	var labels, percentages []byte
	var priorityLimit sql.NullInt64

	err := row.Scan(&rule.ID, &rule.Name, &labels, &percentages, &rule.IsCustomizable, &priorityLimit)
	if err != nil {
		return nil, err
	}

	rule.DefaultBreakdown, err = unmarshalBreakdown(labels, percentages)
	if err != nil {
		return nil, err
	}
	if priorityLimit.Valid {
		limit := int(priorityLimit.Int64)
		rule.PriorityLimit = &limit
	}
	return &rule, nil
}

func marshalBreakdown(breakdown domain.Breakdown) ([]byte, []byte, error) {
	labels, err := json.Marshal(breakdown.Labels())
	if err != nil {
		return nil, nil, err
	}
	percentages, err := json.Marshal(breakdown.Percentages())
	if err != nil {
		return nil, nil, err
	}
	return labels, percentages, nil
}

func unmarshalBreakdown(labelsJSON, percentagesJSON []byte) (domain.Breakdown, error) {
	if len(labelsJSON) == 0 || len(percentagesJSON) == 0 {
		return nil, nil
	}
	var labels []string
	var percentages []int
	if err := json.Unmarshal(labelsJSON, &labels); err != nil {
		return nil, fmt.Errorf("could not decode breakdown labels: %w", err)
	}
	if err := json.Unmarshal(percentagesJSON, &percentages); err != nil {
		return nil, fmt.Errorf("could not decode breakdown percentages: %w", err)
	}
	if len(labels) != len(percentages) {
		return nil, fmt.Errorf("breakdown labels and percentages differ in length: %d vs %d", len(labels), len(percentages))
	}
	return domain.NewBreakdown(labels, percentages), nil
}
