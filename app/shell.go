// Package app composes the route table, the guard and the views into the
// interactive shell. A denied navigation renders the login view in place of
// the requested one; it is a local composition swap, not a redirect.
package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/silvercloudhq/silvercloud-cli/guard"
	"github.com/silvercloudhq/silvercloud-cli/sessions"
	"github.com/silvercloudhq/silvercloud-cli/views"
)

type Shell struct {
	guard    *guard.Guard
	sessions *sessions.Manager
	routes   map[string]views.View
	login    views.View
	in       *bufio.Reader
	out      io.Writer
	log      zerolog.Logger
}

func NewShell(g *guard.Guard, manager *sessions.Manager, login views.View, in *bufio.Reader, out io.Writer, log zerolog.Logger) *Shell {
	return &Shell{
		guard:    g,
		sessions: manager,
		routes:   make(map[string]views.View),
		login:    login,
		in:       in,
		out:      out,
		log:      log,
	}
}

// Route registers a view under a path.
func (s *Shell) Route(path string, view views.View) {
	s.routes[path] = view
}

// Navigate renders the view for the route, or the login view in its place
// when the guard denies access. The guard is consulted on every call with
// live session state.
func (s *Shell) Navigate(ctx context.Context, route string) {
	view, ok := s.routes[route]
	if !ok {
		fmt.Fprintf(s.out, "No such page: %s\n", route)
		return
	}
	if s.guard.Evaluate(route) == guard.Denied {
		s.log.Debug().Str("route", route).Msg("navigation denied, showing login")
		fmt.Fprintln(s.out, "Please log in to continue.")
		s.login.Render(ctx, s.out)
		return
	}
	view.Render(ctx, s.out)
}

// Run reads one command per line until quit or EOF.
func (s *Shell) Run(ctx context.Context) {
	s.printHelp()
	for {
		fmt.Fprint(s.out, "> ")
		line, err := s.in.ReadString('\n')
		if err != nil {
			return
		}
		input := strings.TrimSpace(line)

		switch {
		case input == "":
			continue
		case input == "quit" || input == "exit":
			return
		case input == "help":
			s.printHelp()
		case input == "login":
			s.Navigate(ctx, "/login")
		case input == "logout":
			s.sessions.Logout(ctx)
			s.Navigate(ctx, "/login")
		case strings.HasPrefix(input, "send "):
			s.sendMessage(ctx, strings.TrimSpace(strings.TrimPrefix(input, "send ")))
		case strings.HasPrefix(input, "/"):
			s.Navigate(ctx, input)
		default:
			fmt.Fprintf(s.out, "Unknown command %q, try help\n", input)
		}
	}
}

// messageSender is satisfied by the messages view.
type messageSender interface {
	Send(ctx context.Context, senderID, content string) error
}

// sendMessage posts into the thread behind /messages. Gated the same way
// as the route itself: no session, no send.
func (s *Shell) sendMessage(ctx context.Context, content string) {
	session := s.sessions.Current()
	if session == nil {
		fmt.Fprintln(s.out, "Please log in to continue.")
		s.login.Render(ctx, s.out)
		return
	}
	sender, ok := s.routes["/messages"].(messageSender)
	if !ok {
		fmt.Fprintln(s.out, "Messaging is not available.")
		return
	}
	if err := sender.Send(ctx, session.User.ID, content); err != nil {
		fmt.Fprintf(s.out, "Failed to send message: %v\n", err)
		return
	}
	fmt.Fprintln(s.out, "Message sent.")
}

func (s *Shell) printHelp() {
	paths := make([]string, 0, len(s.routes))
	for path := range s.routes {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	fmt.Fprintf(s.out, "Pages: %s\n", strings.Join(paths, " "))
	fmt.Fprintln(s.out, "Commands: login logout send <text> help quit")
}
