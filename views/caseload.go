package views

import (
	"context"
	"fmt"
	"io"

	"github.com/silvercloudhq/silvercloud-cli/api"
)

// CaseloadView lists the participants assigned to a supporter. The backend
// decides whether the caller's role may see it; a 403 renders inline like
// any other fetch failure.
type CaseloadView struct {
	api *api.Client
}

func NewCaseloadView(client *api.Client) *CaseloadView {
	return &CaseloadView{api: client}
}

func (v *CaseloadView) Name() string { return "Caseload" }

func (v *CaseloadView) Render(ctx context.Context, w io.Writer) {
	raw, err := v.api.Get(ctx, "/api/supporter/caseload")
	if err != nil {
		fmt.Fprintf(w, "Failed to load caseload: %v\n", err)
		return
	}
	participants, err := api.Decode[[]CaseloadParticipant](raw, "caseload")
	if err != nil {
		fmt.Fprintf(w, "Failed to load caseload: %v\n", err)
		return
	}

	fmt.Fprintln(w, "Caseload")
	for _, p := range participants {
		fmt.Fprintf(w, "  %s (%s)\n", p.FullName, p.ID)
	}
}
