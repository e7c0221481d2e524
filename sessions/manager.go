package sessions

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/silvercloudhq/silvercloud-cli/credentials"
	"github.com/silvercloudhq/silvercloud-cli/identity"
)

// IdentityClient is the slice of the identity backend the manager needs.
// *identity.Client satisfies it.
type IdentityClient interface {
	Refresh(ctx context.Context, refreshToken string) (credentials.Credentials, identity.User, error)
	SignOut(ctx context.Context, accessToken string) error
}

// Manager is the single authoritative holder of the current session. It
// bootstraps from the credential store at startup, publishes every state
// change to subscribers synchronously, and tears the session down on logout.
type Manager struct {
	store    credentials.Store
	identity IdentityClient
	log      zerolog.Logger

	lock    sync.RWMutex
	current *Session
	subs    map[int]func(*Session)
	nextSub int
}

func NewManager(store credentials.Store, idClient IdentityClient, log zerolog.Logger) *Manager {
	return &Manager{
		store:    store,
		identity: idClient,
		log:      log,
		subs:     make(map[int]func(*Session)),
	}
}

// Current returns the latest published session, or nil when absent.
func (m *Manager) Current() *Session {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.current
}

// Subscribe registers fn to be called synchronously on every publication,
// starting with the next one. The returned function removes the
// subscription.
func (m *Manager) Subscribe(fn func(*Session)) func() {
	m.lock.Lock()
	id := m.nextSub
	m.nextSub++
	m.subs[id] = fn
	m.lock.Unlock()

	return func() {
		m.lock.Lock()
		delete(m.subs, id)
		m.lock.Unlock()
	}
}

// Bootstrap reconstructs a session from stored credentials. It runs once at
// startup and never returns an error: every failure path downgrades to an
// absent session, clears the store when the stored pair was rejected, and
// logs the diagnostic.
func (m *Manager) Bootstrap(ctx context.Context) {
	creds, err := m.store.Load()
	if err != nil {
		m.log.Error().Err(err).Msg("failed to load stored credentials")
		m.publish(nil)
		return
	}
	if creds == nil {
		m.log.Debug().Msg("no stored credentials, starting signed out")
		m.publish(nil)
		return
	}

	rotated, user, err := m.identity.Refresh(ctx, creds.RefreshToken)
	if err != nil {
		m.log.Warn().Err(err).Msg("stored credentials rejected, clearing them")
		if clearErr := m.store.Clear(); clearErr != nil {
			m.log.Error().Err(clearErr).Msg("failed to clear rejected credentials")
		}
		m.publish(nil)
		return
	}

	// The refresh rotated the pair; persist the new one.
	if err := m.store.Save(rotated); err != nil {
		m.log.Error().Err(err).Msg("failed to persist rotated credentials")
	}
	m.publish(m.newSession(user, rotated.AccessToken))
	m.log.Info().Str("user", user.Email).Msg("session restored")
}

// Login persists the freshly issued credentials and publishes the session.
// Called after the auth gateway accepted the user's email/password.
func (m *Manager) Login(ctx context.Context, creds credentials.Credentials) error {
	if err := m.store.Save(creds); err != nil {
		return err
	}
	user, _, err := identity.ParseToken(creds.AccessToken)
	if err != nil {
		m.log.Debug().Err(err).Msg("access token claims unreadable, session carries no identity")
	}
	m.publish(m.newSession(user, creds.AccessToken))
	m.log.Info().Str("user", user.Email).Msg("logged in")
	return nil
}

// Logout is local-first: the identity backend's sign-out is best effort and
// its failure never blocks removal of the stored credentials. Idempotent.
func (m *Manager) Logout(ctx context.Context) {
	if creds, err := m.store.Load(); err == nil && creds != nil {
		if err := m.identity.SignOut(ctx, creds.AccessToken); err != nil {
			m.log.Warn().Err(err).Msg("identity sign-out failed, clearing local session anyway")
		}
	}
	if err := m.store.Clear(); err != nil {
		m.log.Error().Err(err).Msg("failed to clear credentials on logout")
	}
	m.publish(nil)
	m.log.Info().Msg("logged out")
}

func (m *Manager) newSession(user identity.User, accessToken string) *Session {
	s := &Session{User: user, AccessToken: accessToken}
	if parsedUser, expiry, err := identity.ParseToken(accessToken); err == nil {
		s.ExpiresAt = expiry
		if s.User.ID == "" {
			s.User = parsedUser
		}
	}
	return s
}

// publish replaces the current session and notifies subscribers in the
// caller's goroutine, so no reader observes stale state across a render.
func (m *Manager) publish(s *Session) {
	m.lock.Lock()
	m.current = s
	fns := make([]func(*Session), 0, len(m.subs))
	for _, fn := range m.subs {
		fns = append(fns, fn)
	}
	m.lock.Unlock()

	for _, fn := range fns {
		fn(s)
	}
}
