package client

import (
	"errors"
	"fmt"
)

var (
	ErrNotLoggedIn    = errors.New("not logged in")
	ErrSessionExpired = errors.New("session expired, please log in again")
	ErrRecipeGone     = errors.New("recipe not found or already deleted")
	ErrNoToken        = errors.New("no token in login response")
)

// APIError is a non-2xx response that has no dedicated sentinel. Message is
// the server's message when it sent one.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("request failed (%d)", e.StatusCode)
	}
	return fmt.Sprintf("%s (%d)", e.Message, e.StatusCode)
}
