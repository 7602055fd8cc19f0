package httpd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/academico/portal-service/internal/models"
	"github.com/academico/portal-service/internal/service/integration"
)

type stubChatService struct {
	reply string
	err   error
}

func (s *stubChatService) SendMessage(ctx context.Context, message string) (string, error) {
	return s.reply, s.err
}

func postChatMessage(t *testing.T, h *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat/messages", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.SendChatMessage(rec, req)
	return rec
}

func decodeChatResponse(t *testing.T, rec *httptest.ResponseRecorder) models.ChatMessageResponse {
	t.Helper()

	var resp models.ChatMessageResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestSendChatMessage(t *testing.T) {
	t.Run("successful reply", func(t *testing.T) {
		h := &Handler{chatService: &stubChatService{reply: "Your schedule is free."}, logger: zerolog.Nop()}

		rec := postChatMessage(t, h, `{"message":"hello"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		resp := decodeChatResponse(t, rec)
		assert.True(t, resp.Success)
		assert.Equal(t, "Your schedule is free.", resp.Response)
	})

	t.Run("timeout maps to timeout kind", func(t *testing.T) {
		err := fmt.Errorf("assistant call: %w", integration.ErrTimeout)
		h := &Handler{chatService: &stubChatService{err: err}, logger: zerolog.Nop()}

		rec := postChatMessage(t, h, `{"message":"hello"}`)

		// Сбой доставки — всё равно 200, исход в теле
		require.Equal(t, http.StatusOK, rec.Code)
		resp := decodeChatResponse(t, rec)
		assert.False(t, resp.Success)
		assert.Equal(t, "timeout", resp.Error)
	})

	t.Run("network failure maps to network kind", func(t *testing.T) {
		err := fmt.Errorf("assistant call: %w", integration.ErrUnreachable)
		h := &Handler{chatService: &stubChatService{err: err}, logger: zerolog.Nop()}

		rec := postChatMessage(t, h, `{"message":"hello"}`)

		resp := decodeChatResponse(t, rec)
		assert.False(t, resp.Success)
		assert.Equal(t, "network", resp.Error)
	})

	t.Run("other failures pass the message through", func(t *testing.T) {
		h := &Handler{chatService: &stubChatService{err: errors.New("message is required")}, logger: zerolog.Nop()}

		rec := postChatMessage(t, h, `{"message":""}`)

		resp := decodeChatResponse(t, rec)
		assert.False(t, resp.Success)
		assert.Equal(t, "message is required", resp.Error)
	})

	t.Run("malformed body is a bad request", func(t *testing.T) {
		h := &Handler{chatService: &stubChatService{}, logger: zerolog.Nop()}

		rec := postChatMessage(t, h, `{not json`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
