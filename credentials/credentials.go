// Package credentials owns the durable token pair the client uses to prove
// and renew its session. The store is a plain transport for two opaque
// strings: no encryption, no expiry enforcement.
package credentials

// Credentials is the access/refresh token pair returned by a successful
// login and presented back to the identity backend on bootstrap.
type Credentials struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Complete reports whether both tokens are present. Presence of both is
// necessary and sufficient to attempt a session bootstrap.
func (c Credentials) Complete() bool {
	return c.AccessToken != "" && c.RefreshToken != ""
}

// Store persists the current token pair across restarts. At most one
// Credentials value exists at a time; a Save or Clear is immediately
// visible to every subsequent Load within the same client, whichever
// component issues it. Writers follow last-writer-wins.
type Store interface {
	// Save replaces the stored token pair.
	Save(creds Credentials) error

	// Load returns the stored pair, or nil when absent or incomplete.
	Load() (*Credentials, error)

	// Clear removes the stored pair. Clearing an empty store is a no-op.
	Clear() error
}
