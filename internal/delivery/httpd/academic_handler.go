package httpd

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/academico/portal-service/pkg/utils"

	"github.com/academico/portal-service/internal/models"
)

func (h *Handler) GetSemesters(w http.ResponseWriter, r *http.Request) {
	utils.SuccessResponse(w, h.academicService.GetSemesters())
}

func (h *Handler) GetStudentCourses(w http.ResponseWriter, r *http.Request) {
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
	courses, err := h.academicService.GetStudentCourses(ctx, studentID, semester)
	if err != nil {
		// Экраны ожидают список; сбой деградирует в пустой ответ
		h.logger.Error().Err(err).Str("student_id", studentID).Msg("Failed to fetch student courses")
		utils.SuccessResponse(w, []models.CourseEnrollmentView{})
		return
	}

	if courses == nil {
		courses = []models.CourseEnrollmentView{}
	}

	utils.SuccessResponse(w, courses)
}

func (h *Handler) GetProfessorSections(w http.ResponseWriter, r *http.Request) {
	professorID := chi.URLParam(r, "id")
	semester := r.URL.Query().Get("semester")
	if professorID == "" || semester == "" {
		utils.ErrorResponse(w, http.StatusBadRequest, "professor id and semester are required")
		return
	}

	ctx := r.Context()
	sections, err := h.academicService.GetProfessorSections(ctx, professorID, semester)
	if err != nil {
		h.logger.Error().Err(err).Str("professor_id", professorID).Msg("Failed to fetch professor sections")
		utils.SuccessResponse(w, []models.SectionView{})
		return
	}

	if sections == nil {
		sections = []models.SectionView{}
	}

	utils.SuccessResponse(w, sections)
}

func (h *Handler) GetEnrolledStudents(w http.ResponseWriter, r *http.Request) {
	sectionID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.ErrorResponse(w, http.StatusBadRequest, "Invalid section id")
		return
	}

	ctx := r.Context()
	roster, err := h.academicService.GetEnrolledStudents(ctx, sectionID)
	if err != nil {
		h.logger.Error().Err(err).Int64("section_id", sectionID).Msg("Failed to fetch enrolled students")
		utils.SuccessResponse(w, []models.EnrollmentView{})
		return
	}

	if roster == nil {
		roster = []models.EnrollmentView{}
	}

	utils.SuccessResponse(w, roster)
}

func (h *Handler) SearchCourses(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	var schoolID *int64
	if raw := r.URL.Query().Get("school_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			utils.ErrorResponse(w, http.StatusBadRequest, "Invalid school id")
			return
		}
		schoolID = &id
	}

	ctx := r.Context()
	courses, err := h.academicService.SearchCourses(ctx, query, schoolID)
	if err != nil {
		h.logger.Error().Err(err).Str("query", query).Msg("Failed to search courses")
		utils.SuccessResponse(w, []models.CourseView{})
		return
	}

	if courses == nil {
		courses = []models.CourseView{}
	}

	utils.SuccessResponse(w, courses)
}
