package views

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/silvercloudhq/silvercloud-cli/api"
)

type AssessmentsView struct {
	api *api.Client
}

func NewAssessmentsView(client *api.Client) *AssessmentsView {
	return &AssessmentsView{api: client}
}

func (v *AssessmentsView) Name() string { return "Assessments" }

func (v *AssessmentsView) Render(ctx context.Context, w io.Writer) {
	raw, err := v.api.Get(ctx, "/api/assessments")
	if err != nil {
		fmt.Fprintf(w, "Failed to load assessments: %v\n", err)
		return
	}
	assessments, err := api.Decode[[]Assessment](raw, "assessments")
	if err != nil {
		fmt.Fprintf(w, "Failed to load assessments: %v\n", err)
		return
	}

	fmt.Fprintln(w, "Assessments")
	for _, a := range assessments {
		fmt.Fprintf(w, "  %s (%d questions)\n", a.Name, questionCount(a.Questions))
	}
}

func questionCount(questions json.RawMessage) int {
	var list []json.RawMessage
	if err := json.Unmarshal(questions, &list); err != nil {
		return 0
	}
	return len(list)
}
