package user

import (
	"database/sql"
	"errors"
	"fmt"
)

var ErrUserNotFound = errors.New("user not found")

type Repository interface {
	createUser(user *User) error
	getUserByID(id string) (*User, error)
	getUserByUsernameOrEmail(usernameOrEmail string) (*User, error)
	userExistsByUsernameOrEmail(username, email string) (*User, error)
	updateProfile(user *User) error
	updatePassword(userID, newPasswordHash string) error
}

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) Repository {
	return &userRepository{db: db}
}

const userColumns = `
	id, username, email, password_hash, age, gender, monthly_income, total_savings,
	two_factor_enabled, two_factor_secret, created_at, updated_at
`

func (r *userRepository) createUser(user *User) error {
	query := `
		INSERT INTO users (username, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id
	`
	var id string
	err := r.db.QueryRow(query, user.Username, user.Email, user.PasswordHash).Scan(&id)
	if err != nil {
		return fmt.Errorf("could not create user: %v", err)
	}
	user.ID = id
	return nil
}

func (r *userRepository) scanUser(row *sql.Row) (*User, error) {
	var user User
	var age sql.NullInt64
	err := row.Scan(
		&user.ID, &user.Username, &user.Email, &user.PasswordHash, &age, &user.Gender,
		&user.MonthlyIncome, &user.TotalSavings, &user.TwoFactorEnabled, &user.TwoFactorSecret,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("could not find user: %v", err)
	}
	if age.Valid {
		userAge := int(age.Int64)
		user.Age = &userAge
	}
	return &user, nil
}

func (r *userRepository) getUserByID(id string) (*User, error) {
	query := "SELECT " + userColumns + " FROM users WHERE id = $1"
	return r.scanUser(r.db.QueryRow(query, id))
}

func (r *userRepository) getUserByUsernameOrEmail(usernameOrEmail string) (*User, error) {
	query := "SELECT " + userColumns + " FROM users WHERE username = $1 OR email = LOWER($1)"
	return r.scanUser(r.db.QueryRow(query, usernameOrEmail))
}

func (r *userRepository) userExistsByUsernameOrEmail(username, email string) (*User, error) {
	query := "SELECT " + userColumns + " FROM users WHERE username = $1 OR email = $2"
	existing, err := r.scanUser(r.db.QueryRow(query, username, email))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return existing, nil
}

func (r *userRepository) updateProfile(user *User) error {
	query := `
		UPDATE users
		SET age = $1, gender = $2, monthly_income = $3, total_savings = $4, updated_at = NOW()
		WHERE id = $5
	`
	var age sql.NullInt64
	if user.Age != nil {
		age = sql.NullInt64{Int64: int64(*user.Age), Valid: true}
	}
	result, err := r.db.Exec(query, age, user.Gender, user.MonthlyIncome, user.TotalSavings, user.ID)
	if err != nil {
		return fmt.Errorf("could not update profile: %v", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *userRepository) updatePassword(userID, newPasswordHash string) error {
	result, err := r.db.Exec(
		"UPDATE users SET password_hash = $1, updated_at = NOW() WHERE id = $2",
		newPasswordHash, userID,
	)
	if err != nil {
		return fmt.Errorf("could not update password: %v", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrUserNotFound
	}
	return nil
}
