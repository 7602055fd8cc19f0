package httpd

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/academico/portal-service/pkg/utils"

	"github.com/academico/portal-service/internal/grading"
	"github.com/academico/portal-service/internal/identity"
	"github.com/academico/portal-service/internal/models"
)

type attendanceListResponse struct {
	Records   []models.AttendanceView `json:"records"`
	Total     int                     `json:"total"`
	Summaries []grading.CourseSummary `json:"summaries"`
}

func (h *Handler) GetStudentAttendance(w http.ResponseWriter, r *http.Request) {
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
	records, err := h.attendanceService.GetStudentAttendance(ctx, studentID, semester)
	if err != nil {
		h.logger.Error().Err(err).Str("student_id", studentID).Msg("Failed to fetch student attendance")
		utils.SuccessResponse(w, attendanceListResponse{
			Records:   []models.AttendanceView{},
			Summaries: []grading.CourseSummary{},
		})
		return
	}

	if records == nil {
		records = []models.AttendanceView{}
	}

	// Статистика всегда по курсам: общий процент по семестру смешивал бы
	// посещаемость разных курсов
	utils.SuccessResponse(w, attendanceListResponse{
		Records:   records,
		Total:     len(records),
		Summaries: grading.SummarizeByCourse(records),
	})
}

func (h *Handler) RecordAttendance(w http.ResponseWriter, r *http.Request) {
	var req models.RecordAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, ok := identity.FromContext(r.Context())
	if !ok {
		utils.ErrorResponse(w, http.StatusUnauthorized, "Authentication is required")
		return
	}

	if err := h.attendanceService.RecordAttendance(r.Context(), &req, user.ID); err != nil {
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
		"message": "Attendance recorded",
	})
}
