package auth

import (
	"errors"
	"net/http"

	"github.com/sebuszqo/BudgetPlanner/internal/user"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials      = errors.New("invalid username or password")
	ErrTwoFactorRequired       = errors.New("two-factor code required")
	ErrInvalidTwoFactorCode    = errors.New("invalid two-factor code")
	ErrTwoFactorAlreadyEnabled = errors.New("two-factor auth is already enabled")
	ErrTwoFactorNotEnabled     = errors.New("two-factor auth is not enabled")
	ErrTwoFactorNotRegistered  = errors.New("no two-factor secret registered")
	ErrUserNotFound            = errors.New("user not found")
	ErrInternalError           = errors.New("internal Server Error")
)

type Service interface {
	Login(usernameOrEmail, password, twoFactorCode string) (string, *user.User, error)
	RegisterTwoFactor(userID string) (string, string, error)
	ConfirmTwoFactor(userID, code string) error
	DisableTwoFactor(userID, code string) error
	JWTAccessTokenMiddleware() func(http.Handler) http.Handler
}

type service struct {
	repo          Repository
	userService   user.Service
	jwtManager    JWTManagerInterface
	authenticator Authenticator
}

func NewAuthService(repo Repository, userService user.Service, jwtManager JWTManagerInterface, authenticator Authenticator) Service {
	return &service{
		repo:          repo,
		userService:   userService,
		jwtManager:    jwtManager,
		authenticator: authenticator,
	}
}

// Login exchanges credentials (and a TOTP code when 2FA is on) for an access
// token. Unknown users and wrong passwords are indistinguishable to the
// caller.
func (s *service) Login(usernameOrEmail, password, twoFactorCode string) (string, *user.User, error) {
	existingUser, err := s.userService.GetUserByUsernameOrEmail(usernameOrEmail)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, ErrInternalError
	}

	if err := bcrypt.CompareHashAndPassword([]byte(existingUser.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	if existingUser.TwoFactorEnabled {
		if twoFactorCode == "" {
			return "", nil, ErrTwoFactorRequired
		}
		if !s.authenticator.VerifyCode(existingUser.TwoFactorSecret, twoFactorCode) {
			return "", nil, ErrInvalidTwoFactorCode
		}
	}

	token, err := s.jwtManager.GenerateAccessJWT(existingUser.ID, defaultJWTDuration)
	if err != nil {
		return "", nil, ErrInternalError
	}
	return token, existingUser, nil
}

// RegisterTwoFactor creates a pending TOTP secret; it only becomes active
// after ConfirmTwoFactor proves the user can produce codes for it.
func (s *service) RegisterTwoFactor(userID string) (string, string, error) {
	existingUser, err := s.userService.GetUserByID(userID)
	if err != nil {
		return "", "", err
	}
	if existingUser.TwoFactorEnabled {
		return "", "", ErrTwoFactorAlreadyEnabled
	}

	otpURI, secret, err := s.authenticator.GenerateSecret(existingUser.Email)
	if err != nil {
		return "", "", err
	}
	if err := s.repo.saveTwoFactorSecret(userID, secret); err != nil {
		return "", "", err
	}
	return otpURI, secret, nil
}

func (s *service) ConfirmTwoFactor(userID, code string) error {
	secret, enabled, err := s.repo.getTwoFactorSecret(userID)
	if err != nil {
		return err
	}
	if enabled {
		return ErrTwoFactorAlreadyEnabled
	}
	if secret == "" {
		return ErrTwoFactorNotRegistered
	}
	if !s.authenticator.VerifyCode(secret, code) {
		return ErrInvalidTwoFactorCode
	}
	return s.repo.enableTwoFactor(userID)
}

func (s *service) DisableTwoFactor(userID, code string) error {
	secret, enabled, err := s.repo.getTwoFactorSecret(userID)
	if err != nil {
		return err
	}
	if !enabled {
		return ErrTwoFactorNotEnabled
	}
	if !s.authenticator.VerifyCode(secret, code) {
		return ErrInvalidTwoFactorCode
	}
	return s.repo.disableTwoFactor(userID)
}
