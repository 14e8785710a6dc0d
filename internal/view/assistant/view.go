// Package assistant drives the AI chat screen. The transcript lives only in
// view memory; each send ships just the latest user message.
package assistant

import (
	"context"
	"strings"

	"github.com/hrsuite/hrsuite-console/internal/domain/chat"
	"github.com/hrsuite/hrsuite-console/internal/domain/session"
	"github.com/hrsuite/hrsuite-console/internal/view"
)

const greeting = "Hello! I'm your AI HR Assistant powered by Claude Sonnet 4. I can help you with HR policies, leave balances, performance reviews, and general HR queries. How can I assist you today?"

const fallbackReply = "I apologize, but I encountered an error. Please try again."

type View struct {
	repo     chat.Repository
	sessions session.Store
	notify   view.Notifier

	messages []chat.Message
	busy     bool
}

func New(repo chat.Repository, sessions session.Store, notify view.Notifier) *View {
	return &View{
		repo:     repo,
		sessions: sessions,
		notify:   notify,
		messages: []chat.Message{{Role: chat.RoleAssistant, Content: greeting}},
	}
}

func (v *View) Messages() []chat.Message {
	return v.messages
}

func (v *View) Busy() bool {
	return v.busy
}

// Send appends the user's message to the transcript, asks the backend for a
// reply, and appends it. While a reply is pending further sends are dropped.
// A failed call appends an apology turn so the transcript stays coherent.
func (v *View) Send(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)
	if text == "" || v.busy {
		return nil
	}

	v.messages = append(v.messages, chat.Message{Role: chat.RoleUser, Content: text})
	v.busy = true
	defer func() { v.busy = false }()

	resp, err := v.repo.Send(ctx, chat.SendRequest{
		Message: text,
		UserID:  view.CurrentUser(v.sessions).ID,
	})
	if err != nil {
		v.messages = append(v.messages, chat.Message{Role: chat.RoleAssistant, Content: fallbackReply})
		v.notify.Error(view.ErrorMessage(err, "Failed to get response"))
		return err
	}

	v.messages = append(v.messages, chat.Message{Role: chat.RoleAssistant, Content: resp.Response})
	return nil
}
