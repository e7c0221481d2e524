package views

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/silvercloudhq/silvercloud-cli/gateway"
	"github.com/silvercloudhq/silvercloud-cli/sessions"
)

// FormState is the transient state of the login form. It lives only for the
// duration of one Render and is never shared.
type FormState struct {
	Email    string
	Password string
	FullName string
	SignUp   bool
	Loading  bool
}

// LoginView collects credentials from the terminal and drives the auth
// gateway and the session manager. It is also what the shell renders in
// place of a protected view when the guard denies access.
type LoginView struct {
	gateway  *gateway.Client
	sessions *sessions.Manager
	in       *bufio.Reader
}

// NewLoginView shares the reader with the shell so neither buffers input
// meant for the other.
func NewLoginView(gw *gateway.Client, manager *sessions.Manager, in *bufio.Reader) *LoginView {
	return &LoginView{gateway: gw, sessions: manager, in: in}
}

func (v *LoginView) Name() string { return "Login" }

func (v *LoginView) Render(ctx context.Context, w io.Writer) {
	var form FormState

	fmt.Fprint(w, "Create an account? [y/N] ")
	form.SignUp = strings.EqualFold(v.readLine(), "y")

	if form.SignUp {
		fmt.Fprint(w, "Full name: ")
		form.FullName = v.readLine()
	}
	fmt.Fprint(w, "Email: ")
	form.Email = v.readLine()
	fmt.Fprint(w, "Password: ")
	form.Password = v.readLine()

	if form.SignUp {
		if err := v.SubmitSignup(ctx, form); err != nil {
			fmt.Fprintf(w, "%v\n", err)
			return
		}
		fmt.Fprintln(w, "Registration successful! You can now log in.")
		return
	}

	if err := v.SubmitLogin(ctx, form); err != nil {
		fmt.Fprintf(w, "%v\n", err)
		return
	}
	fmt.Fprintln(w, "Login successful!")
}

// SubmitLogin exchanges the form's credentials at the gateway and, on
// success, hands the token pair to the session manager.
func (v *LoginView) SubmitLogin(ctx context.Context, form FormState) error {
	creds, err := v.gateway.Login(ctx, form.Email, form.Password)
	if err != nil {
		return err
	}
	return v.sessions.Login(ctx, creds)
}

// SubmitSignup registers the account. No auto-login: the user logs in
// afterwards with the same form.
func (v *LoginView) SubmitSignup(ctx context.Context, form FormState) error {
	return v.gateway.Signup(ctx, form.Email, form.Password, form.FullName)
}

func (v *LoginView) readLine() string {
	line, _ := v.in.ReadString('\n')
	return strings.TrimSpace(line)
}
