package views

import (
	"context"
	"fmt"
	"io"

	"github.com/silvercloudhq/silvercloud-cli/api"
	"github.com/silvercloudhq/silvercloud-cli/internal/utils"
)

type MessagesView struct {
	api *api.Client

	// Peer is the other side of the rendered thread.
	// TODO: pick the peer from the caseload view instead of a fixed default.
	Peer string
}

func NewMessagesView(client *api.Client, peer string) *MessagesView {
	return &MessagesView{api: client, Peer: peer}
}

func (v *MessagesView) Name() string { return "Messages" }

func (v *MessagesView) Render(ctx context.Context, w io.Writer) {
	raw, err := v.api.Get(ctx, "/api/messages/thread/"+v.Peer)
	if err != nil {
		fmt.Fprintf(w, "Failed to load messages: %v\n", err)
		return
	}
	messages, err := api.Decode[[]Message](raw, "messages")
	if err != nil {
		fmt.Fprintf(w, "Failed to load messages: %v\n", err)
		return
	}

	fmt.Fprintf(w, "Messages with %s\n", v.Peer)
	for _, m := range messages {
		stamp := ""
		if created := utils.Value(m.CreatedAt); !created.IsZero() {
			stamp = created.Format("2006-01-02 15:04")
		}
		fmt.Fprintf(w, "  [%s] %s: %s\n", stamp, m.SenderID, m.Content)
	}
}

// Send posts a message into the thread on behalf of the given sender.
func (v *MessagesView) Send(ctx context.Context, senderID, content string) error {
	_, err := v.api.Post(ctx, "/api/messages", Message{
		SenderID:    senderID,
		RecipientID: v.Peer,
		Content:     content,
	})
	return err
}
