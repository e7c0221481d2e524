package views

import (
	"context"
	"fmt"
	"io"

	"github.com/silvercloudhq/silvercloud-cli/api"
)

type ProgramView struct {
	api *api.Client
}

func NewProgramView(client *api.Client) *ProgramView {
	return &ProgramView{api: client}
}

func (v *ProgramView) Name() string { return "Program" }

func (v *ProgramView) Render(ctx context.Context, w io.Writer) {
	raw, err := v.api.Get(ctx, "/api/program")
	if err != nil {
		fmt.Fprintf(w, "Failed to load program: %v\n", err)
		return
	}
	program, err := api.Decode[Program](raw, "program")
	if err != nil {
		fmt.Fprintf(w, "Failed to load program: %v\n", err)
		return
	}

	fmt.Fprintln(w, "Your Program")
	for _, module := range program.Modules {
		fmt.Fprintf(w, "  %s\n", module.Title)
		for _, lesson := range module.Lessons {
			fmt.Fprintf(w, "    %s\n", lesson.Title)
			for _, exercise := range lesson.Exercises {
				fmt.Fprintf(w, "      - %s (%s)\n", exercise.Title, exercise.Type)
			}
		}
	}
}
