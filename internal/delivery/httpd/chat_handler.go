package httpd

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/academico/portal-service/pkg/utils"

	"github.com/academico/portal-service/internal/models"
	"github.com/academico/portal-service/internal/service/integration"
)

// SendChatMessage всегда отвечает 200: исход доставки кодируется в теле,
// чтобы клиент показывал понятное сообщение вместо сырой HTTP-ошибки.
func (h *Handler) SendChatMessage(w http.ResponseWriter, r *http.Request) {
	var req models.ChatMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	reply, err := h.chatService.SendMessage(r.Context(), req.Message)
	if err != nil {
		utils.WriteJSON(w, http.StatusOK, chatErrorBody(err))
		return
	}

	utils.WriteJSON(w, http.StatusOK, models.ChatMessageResponse{
		Success:  true,
		Response: reply,
	})
}

func chatErrorBody(err error) models.ChatMessageResponse {
	switch {
	case errors.Is(err, integration.ErrTimeout):
		return models.ChatMessageResponse{Success: false, Error: "timeout"}
	case errors.Is(err, integration.ErrUnreachable):
		return models.ChatMessageResponse{Success: false, Error: "network"}
	default:
		return models.ChatMessageResponse{Success: false, Error: err.Error()}
	}
}
