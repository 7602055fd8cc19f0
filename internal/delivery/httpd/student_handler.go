package httpd

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/academico/portal-service/pkg/utils"
)

func (h *Handler) GetStudentByCode(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if code == "" {
		utils.ErrorResponse(w, http.StatusBadRequest, "Student code is required")
		return
	}

	ctx := r.Context()
	student, err := h.studentService.GetByCode(ctx, code)
	if err != nil {
		// Не найден и сбой запроса — разные исходы
		h.handleServiceError(w, err)
		return
	}

	utils.SuccessResponse(w, student)
}
