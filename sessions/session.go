package sessions

import (
	"time"

	"github.com/silvercloudhq/silvercloud-cli/identity"
)

// Session is the in-memory record asserting "this client is authenticated
// as User until revoked". It is never persisted directly: it is
// reconstructed from the stored token pair on every startup and replaced on
// every auth state change.
type Session struct {
	User        identity.User
	AccessToken string
	ExpiresAt   time.Time // zero when the token carries no usable expiry
}

// Expired reports whether the session's access token is past its expiry.
// A zero expiry is treated as not expired; the backend is authoritative.
func (s *Session) Expired(now time.Time) bool {
	if s == nil || s.ExpiresAt.IsZero() {
		return false
	}
	return now.After(s.ExpiresAt)
}
