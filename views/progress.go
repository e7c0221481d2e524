package views

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/silvercloudhq/silvercloud-cli/api"
)

type ProgressView struct {
	api *api.Client
}

func NewProgressView(client *api.Client) *ProgressView {
	return &ProgressView{api: client}
}

func (v *ProgressView) Name() string { return "Progress" }

func (v *ProgressView) Render(ctx context.Context, w io.Writer) {
	raw, err := v.api.Get(ctx, "/api/progress")
	if err != nil {
		fmt.Fprintf(w, "Failed to load progress: %v\n", err)
		return
	}
	report, err := api.Decode[ProgressReport](raw, "progress")
	if err != nil {
		fmt.Fprintf(w, "Failed to load progress: %v\n", err)
		return
	}

	fmt.Fprintf(w, "Program completion: %.0f%%\n", report.CompletionPercentage)

	names := make([]string, 0, len(report.AssessmentTrends))
	for name := range report.AssessmentTrends {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		fmt.Fprintf(w, "  %s:", name)
		for _, result := range report.AssessmentTrends[name] {
			fmt.Fprintf(w, " %d", result.Score)
		}
		fmt.Fprintln(w)
	}
}
