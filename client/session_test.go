package client

import (
	"os"
	"path/filepath"
	"recipe-api/model"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unsignedTestToken(t *testing.T, userID string) string {
	t.Helper()
	claims := model.AppClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("whatever"))
	require.NoError(t, err)
	return s
}

func TestFileTokenStore_RoundTrip(t *testing.T) {
	store := FileTokenStore{Path: filepath.Join(t.TempDir(), "nested", "token")}

	token, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, token, "missing file means no token")

	require.NoError(t, store.Save("abc.def.ghi"))
	info, err := os.Stat(store.Path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	token, err = store.Load()
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	require.NoError(t, store.Clear())
	require.NoError(t, store.Clear(), "clearing twice is fine")
	token, err = store.Load()
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestSession_RestoresSavedToken(t *testing.T) {
	store := &MemoryTokenStore{}
	require.NoError(t, store.Save(unsignedTestToken(t, "anna")))

	s, err := NewSession(store)
	require.NoError(t, err)

	assert.True(t, s.IsLoggedIn())
	userID, ok := s.UserID()
	assert.True(t, ok)
	assert.Equal(t, "anna", userID)
}

func TestSession_MalformedTokenClearsSession(t *testing.T) {
	for name, token := range map[string]string{
		"garbage":      "not-a-token",
		"bad payload":  "eyJhbGciOiJIUzI1NiJ9.!!!.sig",
		"missing user": unsignedTestToken(t, ""),
	} {
		t.Run(name, func(t *testing.T) {
			store := &MemoryTokenStore{}
			require.NoError(t, store.Save(token))
			s, err := NewSession(store)
			require.NoError(t, err)

			_, ok := s.UserID()

			assert.False(t, ok)
			assert.False(t, s.IsLoggedIn())
			stored, _ := store.Load()
			assert.Empty(t, stored)
		})
	}
}

func TestSession_Empty(t *testing.T) {
	s, err := NewSession(&MemoryTokenStore{})
	require.NoError(t, err)

	assert.False(t, s.IsLoggedIn())
	_, ok := s.UserID()
	assert.False(t, ok)
}
