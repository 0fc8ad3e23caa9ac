// Package client is a Go consumer of the recipe API. It keeps the session
// token, attaches it to every call and turns 401 responses into a cleared
// session.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"recipe-api/logger"
	"recipe-api/model"
	"strings"
	"sync"
	"time"
)

type Client struct {
	baseURL string
	http    *http.Client
	session *Session

	mu         sync.Mutex
	loginError string
}

type Option func(*Client)

// WithHTTPClient replaces the default client with a 10s timeout.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func New(baseURL string, session *Session, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
		session: session,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Session() *Session {
	return c.session
}

// LoginError is the message of the last failed login, or empty.
func (c *Client) LoginError() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loginError
}

func (c *Client) setLoginError(msg string) {
	c.mu.Lock()
	c.loginError = msg
	c.mu.Unlock()
}

// Login exchanges credentials for a token and stores it in the session.
// On failure LoginError holds a user-facing message.
func (c *Client) Login(ctx context.Context, username, password string) error {
	c.setLoginError("")

	body, err := json.Marshal(model.LoginRequest{Username: username, Password: password})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/login", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.setLoginError("Network error or server unreachable")
		return fmt.Errorf("login request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		apiErr := decodeAPIError(resp)
		msg := apiErr.Message
		if msg == "" {
			msg = fmt.Sprintf("Error (%d)", resp.StatusCode)
		}
		c.setLoginError(msg)
		return apiErr
	}

	var out model.LoginResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil || out.Token == "" {
		c.setLoginError("No token received in response")
		return ErrNoToken
	}
	return c.session.set(out.Token)
}

// Logout forgets the token locally and clears any login error.
func (c *Client) Logout() {
	c.session.Clear()
	c.setLoginError("")
}

// do sends an authenticated request and decodes a JSON response into out
// when out is non-nil. 401 clears the session.
func (c *Client) do(ctx context.Context, method, path string, in, out interface{}) error {
	token := c.session.Token()
	if token == "" {
		return ErrNotLoggedIn
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		logger.Log.WithField("path", path).Info("Session expired, clearing token")
		c.session.Clear()
		return ErrSessionExpired
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) *APIError {
	apiErr := &APIError{StatusCode: resp.StatusCode}
	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		apiErr.Message = body.Message
	}
	return apiErr
}

func isStatus(err error, code int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == code
}
