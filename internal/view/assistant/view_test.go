package assistant

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hrsuite/hrsuite-console/internal/domain/chat"
	"github.com/hrsuite/hrsuite-console/internal/domain/session"
	"github.com/hrsuite/hrsuite-console/internal/domain/user"
	"github.com/hrsuite/hrsuite-console/internal/pkg/sessionstore"
	"github.com/hrsuite/hrsuite-console/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChatRepo struct {
	reply string
	err   error
	calls int
	last  chat.SendRequest

	onSend func()
}

func (f *fakeChatRepo) Send(_ context.Context, req chat.SendRequest) (chat.SendResponse, error) {
	f.calls++
	f.last = req
	if f.onSend != nil {
		f.onSend()
	}
	if f.err != nil {
		return chat.SendResponse{}, f.err
	}
	return chat.SendResponse{Response: f.reply, Timestamp: time.Now()}, nil
}

type recordingNotifier struct {
	errors []string
}

func (n *recordingNotifier) Success(string)   {}
func (n *recordingNotifier) Error(msg string) { n.errors = append(n.errors, msg) }

func newView(t *testing.T, repo chat.Repository) *View {
	t.Helper()
	store := sessionstore.NewMemoryStore()
	require.NoError(t, store.Set(session.Session{
		Token: "tok",
		User:  user.User{ID: "u-1", FullName: "Jane Doe", Role: user.RoleEmployee},
	}))
	return New(repo, store, &recordingNotifier{})
}

func TestView_StartsWithGreeting(t *testing.T) {
	v := newView(t, &fakeChatRepo{})

	msgs := v.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, chat.RoleAssistant, msgs[0].Role)
	assert.Contains(t, msgs[0].Content, "AI HR Assistant")
}

func TestView_SendAppendsBothTurns(t *testing.T) {
	repo := &fakeChatRepo{reply: "You have 12 vacation days left."}
	v := newView(t, repo)

	require.NoError(t, v.Send(context.Background(), "  How many vacation days do I have?  "))

	msgs := v.Messages()
	require.Len(t, msgs, 3)
	assert.Equal(t, chat.RoleUser, msgs[1].Role)
	assert.Equal(t, "How many vacation days do I have?", msgs[1].Content)
	assert.Equal(t, "You have 12 vacation days left.", msgs[2].Content)
	assert.Equal(t, "u-1", repo.last.UserID)
	assert.False(t, v.Busy())
}

func TestView_SendFailureAppendsApology(t *testing.T) {
	repo := &fakeChatRepo{err: errors.New("upstream timeout")}
	store := sessionstore.NewMemoryStore()
	require.NoError(t, store.Set(session.Session{Token: "tok", User: user.User{ID: "u-1"}}))
	notify := &recordingNotifier{}
	v := New(repo, store, notify)

	require.Error(t, v.Send(context.Background(), "hello"))

	msgs := v.Messages()
	require.Len(t, msgs, 3)
	assert.Equal(t, "hello", msgs[1].Content)
	assert.Equal(t, "I apologize, but I encountered an error. Please try again.", msgs[2].Content)
	assert.Len(t, notify.errors, 1)
}

func TestView_BlankMessageIsIgnored(t *testing.T) {
	repo := &fakeChatRepo{}
	v := newView(t, repo)

	require.NoError(t, v.Send(context.Background(), "   "))

	assert.Zero(t, repo.calls)
	assert.Len(t, v.Messages(), 1)
}

func TestView_BusyLatchDropsOverlappingSend(t *testing.T) {
	repo := &fakeChatRepo{reply: "first reply"}
	v := newView(t, repo)
	repo.onSend = func() {
		// A send arriving while the first is in flight is dropped.
		require.NoError(t, v.Send(context.Background(), "second"))
	}

	require.NoError(t, v.Send(context.Background(), "first"))

	assert.Equal(t, 1, repo.calls)
	require.Len(t, v.Messages(), 3)
	assert.Equal(t, "first", v.Messages()[1].Content)
}

var _ view.Notifier = (*recordingNotifier)(nil)
