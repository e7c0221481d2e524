package views

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/silvercloudhq/silvercloud-cli/sessions"
)

// DashboardView greets the authenticated user from the published session.
type DashboardView struct {
	sessions *sessions.Manager
}

func NewDashboardView(manager *sessions.Manager) *DashboardView {
	return &DashboardView{sessions: manager}
}

func (v *DashboardView) Name() string { return "Dashboard" }

func (v *DashboardView) Render(ctx context.Context, w io.Writer) {
	session := v.sessions.Current()
	if session == nil {
		fmt.Fprintln(w, "Not signed in.")
		return
	}

	name := session.User.FullName
	if name == "" {
		name = session.User.Email
	}
	fmt.Fprintf(w, "Dashboard\n  Signed in as %s", name)
	if session.User.Role != "" {
		fmt.Fprintf(w, " (%s)", session.User.Role)
	}
	fmt.Fprintln(w)
	if !session.ExpiresAt.IsZero() {
		if session.Expired(time.Now()) {
			fmt.Fprintf(w, "  Session expired at %s, log in again to refresh it\n", session.ExpiresAt.Format("2006-01-02 15:04:05"))
		} else {
			fmt.Fprintf(w, "  Session valid until %s\n", session.ExpiresAt.Format("2006-01-02 15:04:05"))
		}
	}
}
