// Package api is the generic call wrapper for the backend's /api resource
// endpoints. Every request reads the access token fresh from the credential
// store at call time, so a logout between calls is honored immediately.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/silvercloudhq/silvercloud-cli/credentials"
	errs "github.com/silvercloudhq/silvercloud-cli/internal/errors"
	"github.com/silvercloudhq/silvercloud-cli/internal/httputil"
)

type Client struct {
	baseURL string
	store   credentials.Store
	http    *http.Client
	log     zerolog.Logger
}

func NewClient(baseURL string, store credentials.Store, httpClient *http.Client, log zerolog.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: baseURL, store: store, http: httpClient, log: log}
}

// Request performs a JSON call against the backend and returns the raw
// response body. The bearer header is attached when the store holds a
// token and omitted when it does not; there is no retry, no token refresh
// and no special handling of 401s. Callers own decoding and own the
// decision of how to surface an auth failure.
func (c *Client) Request(ctx context.Context, method, path string, body any) (json.RawMessage, error) {
	url := c.baseURL + path

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s request: %w", path, err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s request: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	requestID := uuid.New().String()
	req.Header.Set("X-Request-ID", requestID)

	// Read the token at call time, never from a cached session: a logout
	// that happened since the last call must strip the header.
	if creds, loadErr := c.store.Load(); loadErr != nil {
		c.log.Debug().Err(loadErr).Str("request_id", requestID).Str("path", path).
			Msg("credential load failed, sending request unauthenticated")
	} else if creds != nil {
		req.Header.Set("Authorization", "Bearer "+creds.AccessToken)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &errs.NetworkError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		message := httputil.ExtractMessage(respBody)
		if message == "" {
			message = fmt.Sprintf("request failed with status %d", resp.StatusCode)
		}
		c.log.Debug().Str("request_id", requestID).Int("status", resp.StatusCode).
			Str("path", path).Msg("api request failed")
		return nil, &errs.APIError{Status: resp.StatusCode, Message: message}
	}
	return respBody, nil
}

func (c *Client) Get(ctx context.Context, path string) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodGet, path, nil)
}

func (c *Client) Post(ctx context.Context, path string, body any) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodPost, path, body)
}

// Decode unmarshals a response body into T, turning malformed payloads into
// a typed error instead of half-populated values.
func Decode[T any](raw json.RawMessage, resource string) (T, error) {
	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		return value, &errs.DecodeError{Resource: resource, Err: err}
	}
	return value, nil
}
