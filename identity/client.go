// Package identity talks to the identity backend (a GoTrue-style provider)
// that issued the token pair. The session manager presents stored tokens
// here on bootstrap and revokes them on logout.
package identity

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

// User is the authenticated identity a session asserts.
type User struct {
	ID       string
	Email    string
	Role     string
	FullName string
}

type Client struct {
	baseURL string
	anonKey string
	http    *http.Client
}

// New creates an identity client. The anon key is the provider's public API
// key and accompanies every call; user-level authorization rides on the
// tokens themselves.
func New(baseURL, anonKey string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: baseURL, anonKey: anonKey, http: httpClient}
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type wireUser struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	UserMetadata struct {
		FullName string `json:"full_name"`
	} `json:"user_metadata"`
}

func (w wireUser) user() User {
	return User{ID: w.ID, Email: w.Email, Role: w.Role, FullName: w.UserMetadata.FullName}
}

type refreshResponse struct {
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token"`
	ExpiresIn    int      `json:"expires_in"`
	User         wireUser `json:"user"`
}

// Refresh presents a refresh token and returns the rotated token pair plus
// the identity it belongs to. This is the single bootstrap strategy: it
// both validates the stored pair server-side and renews it.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (credentials.Credentials, User, error) {
	url := c.baseURL + "/auth/v1/token?grant_type=refresh_token"
	body, err := c.do(ctx, url, refreshRequest{RefreshToken: refreshToken}, "")
	if err != nil {
		return credentials.Credentials{}, User{}, err
	}

	var parsed refreshResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return credentials.Credentials{}, User{}, &errs.DecodeError{Resource: "token refresh", Err: err}
	}
	creds := credentials.Credentials{AccessToken: parsed.AccessToken, RefreshToken: parsed.RefreshToken}
	if !creds.Complete() {
		return credentials.Credentials{}, User{}, &errs.DecodeError{
			Resource: "token refresh",
			Err:      fmt.Errorf("response missing access_token or refresh_token"),
		}
	}
	return creds, parsed.User.user(), nil
}

// SignOut revokes the session behind the access token. Callers treat
// failure as advisory: local credential removal never depends on it.
func (c *Client) SignOut(ctx context.Context, accessToken string) error {
	url := c.baseURL + "/auth/v1/logout"
	_, err := c.do(ctx, url, struct{}{}, accessToken)
	return err
}

func (c *Client) do(ctx context.Context, url string, payload any, accessToken string) ([]byte, error) {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode identity request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(encoded))
	if err != nil {
		return nil, fmt.Errorf("failed to build identity request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.anonKey)
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &errs.NetworkError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		message := httputil.ExtractMessage(body)
		if message == "" {
			message = fmt.Sprintf("identity backend rejected the request with status %d", resp.StatusCode)
		}
		return nil, &errs.AuthError{Message: message}
	}
	return body, nil
}
