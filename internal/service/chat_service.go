package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/academico/portal-service/internal/identity"
	"github.com/academico/portal-service/internal/service/integration"
)

type ChatService interface {
	SendMessage(ctx context.Context, message string) (string, error)
}

type chatService struct {
	client           integration.ChatClient
	identityProvider identity.Provider
	maxMessageLength int
	logger           zerolog.Logger
}

func NewChatService(
	client integration.ChatClient,
	identityProvider identity.Provider,
	maxMessageLength int,
	logger zerolog.Logger,
) ChatService {
	return &chatService{
		client:           client,
		identityProvider: identityProvider,
		maxMessageLength: maxMessageLength,
		logger:           logger,
	}
}

func (s *chatService) SendMessage(ctx context.Context, message string) (string, error) {
	if message == "" {
		return "", fmt.Errorf("message is required")
	}
	if len([]rune(message)) > s.maxMessageLength {
		return "", fmt.Errorf("message exceeds %d characters", s.maxMessageLength)
	}

	user, err := s.identityProvider.CurrentUser(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to resolve identity: %w", err)
	}

	reply, err := s.client.SendMessage(ctx, message, user)
	if err != nil {
		return "", err
	}

	s.logger.Debug().
		Str("user_id", user.ID).
		Str("role", user.Role.String()).
		Msg("Assistant reply delivered")

	return reply, nil
}
