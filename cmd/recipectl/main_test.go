package main

import (
	"bytes"
	"net/http/httptest"
	"path/filepath"
	"recipe-api/app"
	"recipe-api/config"
	"recipe-api/repository"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startServer(t *testing.T) string {
	t.Helper()
	cfg := &config.Config{}
	cfg.JWT.SecretKey = "cli-test-secret"
	cfg.JWT.Algorithm = "HS256"
	cfg.JWT.TTL = time.Hour
	cfg.Storage.Driver = config.StorageMemory
	cfg.Users = []config.Credential{{Username: "anna", Password: "anna-pass"}}
	application, err := app.New(cfg, repository.NewMemoryRecipeRepository(), nil)
	require.NoError(t, err)
	srv := httptest.NewServer(application.Router)
	t.Cleanup(srv.Close)
	return srv.URL
}

func TestRun_Session(t *testing.T) {
	url := startServer(t)
	tokenFile := filepath.Join(t.TempDir(), "token")
	recipectl := func(args ...string) (string, error) {
		var out bytes.Buffer
		err := run(append([]string{"--server", url, "--token-file", tokenFile, "--log-level", "error"}, args...), &out)
		return out.String(), err
	}

	_, err := recipectl("list")
	assert.Error(t, err, "not logged in yet")

	_, err = recipectl("login", "-u", "anna", "-p", "nope")
	assert.EqualError(t, err, "Invalid username or password")

	out, err := recipectl("login", "-u", "anna", "-p", "anna-pass")
	require.NoError(t, err)
	assert.Contains(t, out, "Logged in as anna")

	out, err = recipectl("whoami")
	require.NoError(t, err)
	assert.Equal(t, "anna\n", out)

	out, err = recipectl("add", "--title", "Tea", "-i", "water", "-i", "leaves", "--instructions", "steep", "-t", "getränk,schnell")
	require.NoError(t, err)
	id := strings.TrimSpace(strings.TrimPrefix(out, "Created "))
	require.NotEmpty(t, id)

	_, err = recipectl("add", "--title", "Soup", "-i", "water", "--instructions", "boil", "-t", "herzhaft")
	require.NoError(t, err)

	out, err = recipectl("list", "--tag", "getränk", "--tag", "schnell")
	require.NoError(t, err)
	assert.Contains(t, out, "Tea")
	assert.NotContains(t, out, "Soup")

	out, err = recipectl("favorite", id)
	require.NoError(t, err)
	assert.Contains(t, out, "Tea is now a favorite")

	_, err = recipectl("edit", id, "--title", "Green tea")
	require.NoError(t, err)

	out, err = recipectl("list", "--favorites")
	require.NoError(t, err)
	assert.Contains(t, out, "Green tea")
	assert.NotContains(t, out, "Soup")

	_, err = recipectl("delete", id)
	require.NoError(t, err)
	_, err = recipectl("delete", id)
	assert.Error(t, err)

	out, err = recipectl("logout")
	require.NoError(t, err)
	assert.Contains(t, out, "Logged out")
	_, err = recipectl("whoami")
	assert.Error(t, err)
}

func TestRun_Tags(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"--token-file", filepath.Join(t.TempDir(), "token"), "tags"}, &out))
	assert.Contains(t, out.String(), "vegetarisch")
	assert.Contains(t, out.String(), "tag-color-4")
}

func TestRun_UnknownCommand(t *testing.T) {
	var out bytes.Buffer
	err := run([]string{"--token-file", filepath.Join(t.TempDir(), "token"), "bake"}, &out)
	assert.EqualError(t, err, `unknown command "bake"`)
}
