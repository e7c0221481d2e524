// Package views holds the terminal renderings of the platform's pages. Each
// view fetches its resource through the api client when rendered and
// recovers failures locally as inline text; nothing here ever panics the
// shell or tears down the session.
package views

import (
	"context"
	"io"
)

type View interface {
	Name() string
	Render(ctx context.Context, w io.Writer)
}
