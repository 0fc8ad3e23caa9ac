// file: service/auth_service_test.go

package service

import (
	"errors"
	"recipe-api/config"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type mockTokenIssuer struct{ mock.Mock }

func (m *mockTokenIssuer) Issue(userID string) (string, error) {
	args := m.Called(userID)
	return args.String(0), args.Error(1)
}

func TestAuthService_LoginThenVerify(t *testing.T) {
	tokens, err := NewTokenService(testSecret, "HS256", 2*time.Hour)
	require.NoError(t, err)
	authService := NewAuthService([]config.Credential{
		{Username: "anna", Password: "pass1"},
		{Username: "ben", Password: "pass2"},
	}, tokens)

	for _, user := range []string{"anna", "ben"} {
		password := map[string]string{"anna": "pass1", "ben": "pass2"}[user]
		token, err := authService.Login(user, password)
		require.NoError(t, err)

		subject, err := tokens.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, user, subject)
	}
}

func TestAuthService_Login(t *testing.T) {
	issuer := new(mockTokenIssuer)
	authService := NewAuthService([]config.Credential{{Username: "anna", Password: "pass1"}}, issuer)

	t.Run("success", func(t *testing.T) {
		issuer.On("Issue", "anna").Return("signed-token", nil).Once()

		token, err := authService.Login("anna", "pass1")

		assert.NoError(t, err)
		assert.Equal(t, "signed-token", token)
		issuer.AssertExpectations(t)
	})

	t.Run("wrong password", func(t *testing.T) {
		token, err := authService.Login("anna", "nope")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.Empty(t, token)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := authService.Login("mallory", "pass1")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("issuer failure", func(t *testing.T) {
		issuer.On("Issue", "anna").Return("", errors.New("sign failed")).Once()

		_, err := authService.Login("anna", "pass1")

		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrInvalidCredentials)
		issuer.AssertExpectations(t)
	})

	issuer.AssertNumberOfCalls(t, "Issue", 2)
}

func TestAuthService_BcryptCredential(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	issuer := new(mockTokenIssuer)
	issuer.On("Issue", "chef").Return("t", nil)
	authService := NewAuthService([]config.Credential{{Username: "chef", Password: string(hash)}}, issuer)

	_, err = authService.Login("chef", "s3cret")
	assert.NoError(t, err)

	_, err = authService.Login("chef", string(hash))
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestHashAndCheckPassword(t *testing.T) {
	password := "mySecretPassword123"

	hashedPassword, err := HashPassword(password)
	require.NoError(t, err)
	assert.NotEqual(t, password, hashedPassword)

	assert.True(t, CheckPassword(password, hashedPassword))
	assert.False(t, CheckPassword("notMyPassword", hashedPassword))

	assert.True(t, CheckPassword("plain", "plain"))
	assert.False(t, CheckPassword("plain", "Plain"))
}
