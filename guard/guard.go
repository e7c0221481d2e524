// Package guard decides per navigation whether a requested view renders or
// the login view is shown in its place.
package guard

import "github.com/silvercloudhq/silvercloud-cli/sessions"

type Decision int

const (
	Denied Decision = iota
	Allowed
)

func (d Decision) String() string {
	if d == Allowed {
		return "allowed"
	}
	return "denied"
}

// SessionSource yields the most recent session publication.
// *sessions.Manager satisfies it.
type SessionSource interface {
	Current() *sessions.Session
}

type Guard struct {
	source SessionSource
	public map[string]struct{}
}

// New creates a guard. The listed public routes are always allowed; every
// other route requires a present session.
func New(source SessionSource, publicRoutes ...string) *Guard {
	public := make(map[string]struct{}, len(publicRoutes))
	for _, r := range publicRoutes {
		public[r] = struct{}{}
	}
	return &Guard{source: source, public: public}
}

// Evaluate reads live session state: there is no cached decision, so a
// login or logout flips the outcome on the very next navigation.
func (g *Guard) Evaluate(route string) Decision {
	if _, ok := g.public[route]; ok {
		return Allowed
	}
	if g.source.Current() != nil {
		return Allowed
	}
	return Denied
}
