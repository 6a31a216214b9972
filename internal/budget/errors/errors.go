package errors

import (
	"errors"
	"fmt"
)

type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func NewValidationError(msg string) error {
	return &ValidationError{Msg: msg}
}

func IsValidationError(err error) bool {
	var validationError *ValidationError
	ok := errors.As(err, &validationError)
	return ok
}

// NewBreakdownSumError reports a breakdown whose percentages do not sum to 100.
// The computed sum is included so callers can render a specific message.
func NewBreakdownSumError(sum int) error {
	return &ValidationError{Msg: fmt.Sprintf("percentages must sum to 100, got %d", sum)}
}

type InvalidInputError struct {
	Msg string
}

func (e *InvalidInputError) Error() string {
	return e.Msg
}

func NewInvalidInputError(msg string) error {
	return &InvalidInputError{Msg: msg}
}

func IsInvalidInputError(err error) bool {
	var invalidInputError *InvalidInputError
	ok := errors.As(err, &invalidInputError)
	return ok
}

type InvalidTierError struct {
	Tier    int
	MaxTier int
}

func (e *InvalidTierError) Error() string {
	return fmt.Sprintf("priority %d is outside the active breakdown (1-%d)", e.Tier, e.MaxTier)
}

func NewInvalidTierError(tier, maxTier int) error {
	return &InvalidTierError{Tier: tier, MaxTier: maxTier}
}

func IsInvalidTierError(err error) bool {
	var invalidTierError *InvalidTierError
	ok := errors.As(err, &invalidTierError)
	return ok
}

// BudgetExceededError rejects a category creation whose limit would push the
// tier's limit total past the tier ceiling. Attempted is the limit total the
// caller tried to reach.
type BudgetExceededError struct {
	Tier      int
	Label     string
	Attempted int64
	Ceiling   int64
}

func (e *BudgetExceededError) Error() string {
	return fmt.Sprintf("total limit %d exceeds the %s budget of %d", e.Attempted, e.Label, e.Ceiling)
}

func IsBudgetExceededError(err error) bool {
	var budgetExceededError *BudgetExceededError
	ok := errors.As(err, &budgetExceededError)
	return ok
}

// LimitExceededError rejects an amount increase past the category's own limit.
type LimitExceededError struct {
	CategoryName string
	Requested    int64
	Limit        int64
}

func (e *LimitExceededError) Error() string {
	return fmt.Sprintf("amount %d exceeds the limit %d set for category %q", e.Requested, e.Limit, e.CategoryName)
}

func IsLimitExceededError(err error) bool {
	var limitExceededError *LimitExceededError
	ok := errors.As(err, &limitExceededError)
	return ok
}

type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

func NewNotFoundError(resource string) error {
	return &NotFoundError{Resource: resource}
}

func IsNotFoundError(err error) bool {
	var notFoundError *NotFoundError
	ok := errors.As(err, &notFoundError)
	return ok
}
