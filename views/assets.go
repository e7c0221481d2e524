package views

import (
	"context"
	"fmt"
	"io"

	"github.com/silvercloudhq/silvercloud-cli/api"
)

type AssetsView struct {
	api *api.Client
}

func NewAssetsView(client *api.Client) *AssetsView {
	return &AssetsView{api: client}
}

func (v *AssetsView) Name() string { return "Assets" }

func (v *AssetsView) Render(ctx context.Context, w io.Writer) {
	raw, err := v.api.Get(ctx, "/api/assets")
	if err != nil {
		fmt.Fprintf(w, "Failed to load assets: %v\n", err)
		return
	}
	assets, err := api.Decode[[]Asset](raw, "assets")
	if err != nil {
		fmt.Fprintf(w, "Failed to load assets: %v\n", err)
		return
	}

	fmt.Fprintln(w, "Assets")
	for _, a := range assets {
		fmt.Fprintf(w, "  %s: %s\n", a.Name, a.URL)
	}
}
