package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/silvercloudhq/silvercloud-cli/api"
	"github.com/silvercloudhq/silvercloud-cli/credentials"
	"github.com/silvercloudhq/silvercloud-cli/credentials/storefake"
	errs "github.com/silvercloudhq/silvercloud-cli/internal/errors"
)

func TestNoAuthHeaderWhenStoreEmpty(t *testing.T) {
	var gotAuth string
	var hasAuth bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hasAuth = r.Header["Authorization"]
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(map[string]string{"ok": "true"})
	}))
	defer server.Close()

	client := api.NewClient(server.URL, storefake.New(), nil, zerolog.Nop())
	_, err := client.Get(context.Background(), "/api/progress")
	require.NoError(t, err)
	require.False(t, hasAuth)
	require.Empty(t, gotAuth)
}

func TestBearerAttachedFromStore(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(map[string]string{"ok": "true"})
	}))
	defer server.Close()

	store := storefake.New()
	require.NoError(t, store.Save(credentials.Credentials{AccessToken: "AT1", RefreshToken: "RT1"}))

	client := api.NewClient(server.URL, store, nil, zerolog.Nop())
	_, err := client.Get(context.Background(), "/api/program")
	require.NoError(t, err)
	require.Equal(t, "Bearer AT1", gotAuth)
}

// The token must be read at call time: a save between two calls changes the
// header on the second one.
func TestTokenReadFreshPerCall(t *testing.T) {
	var gotAuth []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = append(gotAuth, r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(map[string]string{"ok": "true"})
	}))
	defer server.Close()

	store := storefake.New()
	require.NoError(t, store.Save(credentials.Credentials{AccessToken: "AT1", RefreshToken: "RT1"}))
	client := api.NewClient(server.URL, store, nil, zerolog.Nop())

	_, err := client.Get(context.Background(), "/api/program")
	require.NoError(t, err)

	require.NoError(t, store.Save(credentials.Credentials{AccessToken: "AT2", RefreshToken: "RT2"}))
	_, err = client.Get(context.Background(), "/api/program")
	require.NoError(t, err)

	require.Equal(t, []string{"Bearer AT1", "Bearer AT2"}, gotAuth)
}

// A logout racing a fetch: the store was cleared before the call, so the
// request goes out unauthenticated and the backend's 401 surfaces as a
// typed error for the view to handle.
func TestClearedStoreYields401(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"detail": "Authorization header missing"})
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"ok": "true"})
	}))
	defer server.Close()

	store := storefake.New()
	require.NoError(t, store.Save(credentials.Credentials{AccessToken: "AT1", RefreshToken: "RT1"}))
	client := api.NewClient(server.URL, store, nil, zerolog.Nop())

	require.NoError(t, store.Clear())

	_, err := client.Get(context.Background(), "/api/progress")
	var apiErr *errs.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnauthorized, apiErr.Status)
	require.Equal(t, "Authorization header missing", apiErr.Message)
}

// A failing store still lets the call proceed, just unauthenticated.
func TestLoadFailureSendsUnauthenticated(t *testing.T) {
	var hasAuth bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hasAuth = r.Header["Authorization"]
		json.NewEncoder(w).Encode(map[string]string{"ok": "true"})
	}))
	defer server.Close()

	store := storefake.New()
	require.NoError(t, store.Save(credentials.Credentials{AccessToken: "AT1", RefreshToken: "RT1"}))
	store.LoadErr = errors.New("permission denied")

	client := api.NewClient(server.URL, store, nil, zerolog.Nop())
	_, err := client.Get(context.Background(), "/api/progress")
	require.NoError(t, err)
	require.False(t, hasAuth)
}

func TestAPIErrorFallbackMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := api.NewClient(server.URL, storefake.New(), nil, zerolog.Nop())
	_, err := client.Get(context.Background(), "/api/assets")
	var apiErr *errs.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusBadGateway, apiErr.Status)
	require.Equal(t, "request failed with status 502", apiErr.Message)
}

func TestNetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := api.NewClient(server.URL, storefake.New(), nil, zerolog.Nop())
	_, err := client.Get(context.Background(), "/api/assets")
	var netErr *errs.NetworkError
	require.ErrorAs(t, err, &netErr)
}

func TestPostSendsBody(t *testing.T) {
	var gotBody map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(map[string]string{"ok": "true"})
	}))
	defer server.Close()

	client := api.NewClient(server.URL, storefake.New(), nil, zerolog.Nop())
	_, err := client.Post(context.Background(), "/api/messages", map[string]string{"content": "hello"})
	require.NoError(t, err)
	require.Equal(t, "hello", gotBody["content"])
}

func TestDecode(t *testing.T) {
	type shape struct {
		Name string `json:"name"`
	}

	value, err := api.Decode[shape](json.RawMessage(`{"name":"PHQ-9"}`), "assessment")
	require.NoError(t, err)
	require.Equal(t, "PHQ-9", value.Name)

	_, err = api.Decode[shape](json.RawMessage(`[1,2]`), "assessment")
	var decodeErr *errs.DecodeError
	require.ErrorAs(t, err, &decodeErr)
	require.Equal(t, "assessment", decodeErr.Resource)
}
