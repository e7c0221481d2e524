// Package gateway is the thin client for the backend's auth endpoints.
// It translates /auth/login and /auth/signup responses into credentials or
// typed errors and never retries.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/silvercloudhq/silvercloud-cli/credentials"
	errs "github.com/silvercloudhq/silvercloud-cli/internal/errors"
	"github.com/silvercloudhq/silvercloud-cli/internal/httputil"
)

type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a gateway client for the given backend base URL. A nil
// httpClient falls back to http.DefaultClient.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: baseURL, http: httpClient}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

// Login exchanges an email/password pair for a token pair. The backend is
// authoritative on validation; a rejection surfaces as *errs.AuthError with
// the server's message.
func (c *Client) Login(ctx context.Context, email, password string) (credentials.Credentials, error) {
	body, err := c.post(ctx, "/auth/login", loginRequest{Email: email, Password: password})
	if err != nil {
		return credentials.Credentials{}, err
	}
	var creds credentials.Credentials
	if err := json.Unmarshal(body, &creds); err != nil {
		return credentials.Credentials{}, &errs.DecodeError{Resource: "login", Err: err}
	}
	if !creds.Complete() {
		return credentials.Credentials{}, &errs.DecodeError{
			Resource: "login",
			Err:      fmt.Errorf("response missing access_token or refresh_token"),
		}
	}
	return creds, nil
}

// Signup registers a new account. There is no auto-login: a successful
// signup returns nothing and the user logs in afterwards.
func (c *Client) Signup(ctx context.Context, email, password, fullName string) error {
	_, err := c.post(ctx, "/auth/signup", signupRequest{Email: email, Password: password, FullName: fullName})
	return err
}

func (c *Client) post(ctx context.Context, path string, payload any) ([]byte, error) {
	url := c.baseURL + path
	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s request: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(encoded))
	if err != nil {
		return nil, fmt.Errorf("failed to build %s request: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &errs.NetworkError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		message := httputil.ExtractMessage(body)
		if message == "" {
			message = "authentication failed"
		}
		return nil, &errs.AuthError{Message: message}
	}
	return body, nil
}
