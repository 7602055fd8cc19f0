package httpd

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/academico/portal-service/pkg/utils"

	"github.com/academico/portal-service/internal/identity"
	"github.com/academico/portal-service/internal/models"
)

func (h *Handler) GetStudentGrades(w http.ResponseWriter, r *http.Request) {
	studentID := chi.URLParam(r, "id")
	semester := r.URL.Query().Get("semester")
	if studentID == "" || semester == "" {
		utils.ErrorResponse(w, http.StatusBadRequest, "student id and semester are required")
		return
	}

	if !h.requireSelfOrProfessor(w, r, studentID) {
		return
	}

	ctx := r.Context()
	grades, err := h.gradeService.GetStudentGrades(ctx, studentID, semester)
	if err != nil {
		h.logger.Error().Err(err).Str("student_id", studentID).Msg("Failed to fetch student grades")
		utils.SuccessResponse(w, models.StudentGradesResponse{Grades: []models.GradeView{}})
		return
	}

	if grades == nil {
		grades = []models.GradeView{}
	}

	utils.SuccessResponse(w, models.StudentGradesResponse{
		Grades: grades,
		Total:  len(grades),
	})
}

func (h *Handler) RecordGrade(w http.ResponseWriter, r *http.Request) {
	var req models.RecordGradeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, ok := identity.FromContext(r.Context())
	if !ok {
		utils.ErrorResponse(w, http.StatusUnauthorized, "Authentication is required")
		return
	}

	if err := h.gradeService.RecordGrade(r.Context(), &req, user.ID); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			utils.ErrorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		h.handleServiceError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"message": "Grade recorded",
	})
}
