package views

import (
	"context"
	"fmt"
	"io"
)

// HomeView is the only static page: a welcome banner, no fetch.
type HomeView struct{}

func NewHomeView() *HomeView { return &HomeView{} }

func (v *HomeView) Name() string { return "Home" }

func (v *HomeView) Render(ctx context.Context, w io.Writer) {
	fmt.Fprintln(w, "Welcome to Silvercloud.")
	fmt.Fprintln(w, "Log in to see your program, assessments, progress, messages and assets.")
}
