package auth

import (
	"database/sql"
	"errors"
	"fmt"
)

type Repository interface {
	saveTwoFactorSecret(userID, secret string) error
	enableTwoFactor(userID string) error
	disableTwoFactor(userID string) error
	getTwoFactorSecret(userID string) (string, bool, error)
}

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) Repository {
	return &userRepository{db: db}
}

func (r *userRepository) saveTwoFactorSecret(userID, secret string) error {
	result, err := r.db.Exec(
		"UPDATE users SET two_factor_secret = $1, updated_at = NOW() WHERE id = $2",
		secret, userID,
	)
	if err != nil {
		return fmt.Errorf("could not save two-factor secret: %v", err)
	}
	return requireUserRow(result)
}

func (r *userRepository) enableTwoFactor(userID string) error {
	result, err := r.db.Exec(
		"UPDATE users SET two_factor_enabled = TRUE, updated_at = NOW() WHERE id = $1",
		userID,
	)
	if err != nil {
		return fmt.Errorf("could not enable two-factor auth: %v", err)
	}
	return requireUserRow(result)
}

func (r *userRepository) disableTwoFactor(userID string) error {
	result, err := r.db.Exec(
		"UPDATE users SET two_factor_enabled = FALSE, two_factor_secret = '', updated_at = NOW() WHERE id = $1",
		userID,
	)
	if err != nil {
		return fmt.Errorf("could not disable two-factor auth: %v", err)
	}
	return requireUserRow(result)
}

func (r *userRepository) getTwoFactorSecret(userID string) (string, bool, error) {
	var secret string
	var enabled bool
	err := r.db.QueryRow(
		"SELECT two_factor_secret, two_factor_enabled FROM users WHERE id = $1",
		userID,
	).Scan(&secret, &enabled)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, ErrUserNotFound
		}
		return "", false, fmt.Errorf("could not read two-factor secret: %v", err)
	}
	return secret, enabled, nil
}

func requireUserRow(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrUserNotFound
	}
	return nil
}
