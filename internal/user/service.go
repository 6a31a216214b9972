package user

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/badoux/checkmail"
	"golang.org/x/crypto/bcrypt"
)

const (
	maxEmailLength    = 254
	minEmailLength    = 3
	maxUsernameLength = 30
	minUsernameLength = 3
	bcryptCost        = 12
	minPasswordLength = 8
)

var (
	ErrInvalidEmail          = fmt.Errorf("email address is not valid")
	ErrEmailLength           = fmt.Errorf("email address length must be between %d and %d", minEmailLength, maxEmailLength)
	ErrUsernameLength        = fmt.Errorf("username length must be between %d and %d", minUsernameLength, maxUsernameLength)
	ErrPasswordTooShort      = fmt.Errorf("password must be at least %d characters", minPasswordLength)
	ErrEmailAlreadyExists    = errors.New("email already exists")
	ErrUsernameAlreadyExists = errors.New("username already exists")
	ErrInternalError         = errors.New("internal Server Error")
	ErrInvalidOldPassword    = errors.New("invalid old password")
	ErrInvalidGender         = errors.New("gender must be one of Male, Female, Other or empty")
	ErrNegativeAmount        = errors.New("monthly income and total savings must not be negative")
)

type User struct {
	ID               string    `json:"id"`
	Username         string    `json:"username"`
	Email            string    `json:"email"`
	PasswordHash     string    `json:"-"`
	Age              *int      `json:"age,omitempty"`
	Gender           string    `json:"gender"`
	MonthlyIncome    int64     `json:"monthly_income"`
	TotalSavings     int64     `json:"total_savings"`
	TwoFactorEnabled bool      `json:"two_factor_enabled"`
	TwoFactorSecret  string    `json:"-"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// ProfileUpdate carries a partial profile edit; nil fields keep their stored
// value.
type ProfileUpdate struct {
	Age           *int
	Gender        *string
	MonthlyIncome *int64
	TotalSavings  *int64
}

type Service interface {
	Register(email, username, password string) (*User, error)
	GetUserByID(userID string) (*User, error)
	GetUserByUsernameOrEmail(usernameOrEmail string) (*User, error)
	UpdateProfile(userID string, update ProfileUpdate) (*User, error)
	ChangePasswordWithOldPassword(userID, oldPassword, newPassword string) error
}

type service struct {
	repo Repository
}

func NewUserService(repo Repository) Service {
	return &service{repo: repo}
}

func hashPassword(password string) (string, error) {
	hashedPasswordBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	return string(hashedPasswordBytes), err
}

func validateEmailAddress(email string) error {
	if err := checkmail.ValidateFormat(email); err != nil {
		return ErrInvalidEmail
	}
	if len(email) > maxEmailLength || len(email) <= minEmailLength {
		return ErrEmailLength
	}
	return nil
}

func validGender(gender string) bool {
	switch gender {
	case "", "Male", "Female", "Other":
		return true
	}
	return false
}

func (s *service) Register(email, username, password string) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	username = strings.TrimSpace(username)

	if err := validateEmailAddress(email); err != nil {
		return nil, err
	}
	if len(username) < minUsernameLength || len(username) > maxUsernameLength {
		return nil, ErrUsernameLength
	}
	if len(password) < minPasswordLength {
		return nil, ErrPasswordTooShort
	}

	existing, err := s.repo.userExistsByUsernameOrEmail(username, email)
	if err != nil {
		return nil, ErrInternalError
	}
	if existing != nil {
		if existing.Email == email {
			return nil, ErrEmailAlreadyExists
		}
		return nil, ErrUsernameAlreadyExists
	}

	passwordHash, err := hashPassword(password)
	if err != nil {
		return nil, ErrInternalError
	}

	newUser := &User{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
	}
	if err := s.repo.createUser(newUser); err != nil {
		return nil, ErrInternalError
	}
	return newUser, nil
}

func (s *service) GetUserByID(userID string) (*User, error) {
	return s.repo.getUserByID(userID)
}

func (s *service) GetUserByUsernameOrEmail(usernameOrEmail string) (*User, error) {
	return s.repo.getUserByUsernameOrEmail(strings.TrimSpace(usernameOrEmail))
}

func (s *service) UpdateProfile(userID string, update ProfileUpdate) (*User, error) {
	existingUser, err := s.repo.getUserByID(userID)
	if err != nil {
		return nil, err
	}

	if update.Age != nil {
		existingUser.Age = update.Age
	}
	if update.Gender != nil {
		if !validGender(*update.Gender) {
			return nil, ErrInvalidGender
		}
		existingUser.Gender = *update.Gender
	}
	if update.MonthlyIncome != nil {
		if *update.MonthlyIncome < 0 {
			return nil, ErrNegativeAmount
		}
		existingUser.MonthlyIncome = *update.MonthlyIncome
	}
	if update.TotalSavings != nil {
		if *update.TotalSavings < 0 {
			return nil, ErrNegativeAmount
		}
		existingUser.TotalSavings = *update.TotalSavings
	}

	if err := s.repo.updateProfile(existingUser); err != nil {
		return nil, ErrInternalError
	}
	return existingUser, nil
}

func (s *service) ChangePasswordWithOldPassword(userID, oldPassword, newPassword string) error {
	existingUser, err := s.repo.getUserByID(userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(existingUser.PasswordHash), []byte(oldPassword)); err != nil {
		return ErrInvalidOldPassword
	}
	if len(newPassword) < minPasswordLength {
		return ErrPasswordTooShort
	}

	newPasswordHash, err := hashPassword(newPassword)
	if err != nil {
		return ErrInternalError
	}
	return s.repo.updatePassword(userID, newPasswordHash)
}
