package service

import (
	"crypto/subtle"
	"errors"
	"recipe-api/config"
	"recipe-api/logger"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// TokenIssuer is the part of TokenService the login flow needs.
type TokenIssuer interface {
	Issue(userID string) (string, error)
}

// AuthService checks a username/password pair against the configured
// credentials and issues a token on success. The username is the user id.
type AuthService struct {
	credentials map[string]string
	tokens      TokenIssuer
}

func NewAuthService(credentials []config.Credential, tokens TokenIssuer) *AuthService {
	m := make(map[string]string, len(credentials))
	for _, c := range credentials {
		m[strings.TrimSpace(c.Username)] = c.Password
	}
	return &AuthService{credentials: m, tokens: tokens}
}

// Login returns a signed token, ErrInvalidCredentials, or an issuing error.
func (s *AuthService) Login(username, password string) (string, error) {
	stored, ok := s.credentials[username]
	if !ok || !CheckPassword(password, stored) {
		logger.Log.WithField("username", username).Info("Login rejected")
		return "", ErrInvalidCredentials
	}
	return s.tokens.Issue(username)
}

// HashPassword produces a bcrypt hash suitable for the users config section.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to hash password")
		return "", err
	}
	return string(bytes), nil
}

// CheckPassword compares password with stored, which is either a bcrypt
// hash or a plain configured password.
func CheckPassword(password, stored string) bool {
	if isBcryptHash(stored) {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(stored)) == 1
}

func isBcryptHash(s string) bool {
	return strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$")
}
