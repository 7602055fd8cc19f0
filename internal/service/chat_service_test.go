package service

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/academico/portal-service/internal/identity"
)

type fakeChatClient struct {
	reply string
	err   error
	calls int
	last  string
}

func (f *fakeChatClient) SendMessage(ctx context.Context, message string, user *identity.User) (string, error) {
	f.calls++
	f.last = message
	return f.reply, f.err
}

func authenticatedCtx() context.Context {
	return identity.WithUser(context.Background(), &identity.User{
		ID:        "user-1",
		Email:     "ana@example.edu",
		FirstName: "Ana",
		LastName:  "Torres",
		Role:      identity.RoleStudent,
	})
}

func TestChatSendMessage(t *testing.T) {
	t.Run("forwards message and returns reply", func(t *testing.T) {
		client := &fakeChatClient{reply: "Hello Ana"}
		svc := NewChatService(client, identity.NewProvider(), 500, zerolog.Nop())

		reply, err := svc.SendMessage(authenticatedCtx(), "What is my schedule?")

		require.NoError(t, err)
		assert.Equal(t, "Hello Ana", reply)
		assert.Equal(t, "What is my schedule?", client.last)
	})

	t.Run("rejects empty message", func(t *testing.T) {
		client := &fakeChatClient{}
		svc := NewChatService(client, identity.NewProvider(), 500, zerolog.Nop())

		_, err := svc.SendMessage(authenticatedCtx(), "")

		require.Error(t, err)
		assert.Zero(t, client.calls)
	})

	t.Run("rejects message over the limit", func(t *testing.T) {
		client := &fakeChatClient{}
		svc := NewChatService(client, identity.NewProvider(), 10, zerolog.Nop())

		_, err := svc.SendMessage(authenticatedCtx(), strings.Repeat("a", 11))

		require.Error(t, err)
		assert.Zero(t, client.calls)
	})

	t.Run("requires an authenticated user", func(t *testing.T) {
		client := &fakeChatClient{}
		svc := NewChatService(client, identity.NewProvider(), 500, zerolog.Nop())

		_, err := svc.SendMessage(context.Background(), "hello")

		require.ErrorIs(t, err, identity.ErrUnauthenticated)
		assert.Zero(t, client.calls)
	})
}
