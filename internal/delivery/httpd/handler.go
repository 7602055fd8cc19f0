package httpd

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/academico/portal-service/pkg/utils"

	"github.com/academico/portal-service/internal/identity"
	"github.com/academico/portal-service/internal/models"
	"github.com/academico/portal-service/internal/service"
)

// Pinger сообщает, доступно ли хранилище; health-эндпоинт опирается на него.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	academicService   service.AcademicService
	studentService    service.StudentService
	gradeService      service.GradeService
	attendanceService service.AttendanceService
	chatService       service.ChatService
	db                Pinger
	logger            zerolog.Logger
}

func NewHandler(
	academicService service.AcademicService,
	studentService service.StudentService,
	gradeService service.GradeService,
	attendanceService service.AttendanceService,
	chatService service.ChatService,
	db Pinger,
	logger zerolog.Logger,
) *Handler {
	return &Handler{
		academicService:   academicService,
		studentService:    studentService,
		gradeService:      gradeService,
		attendanceService: attendanceService,
		chatService:       chatService,
		db:                db,
		logger:            logger,
	}
}

func (h *Handler) RegisterRoutes(router chi.Router, verifier *identity.TokenVerifier) {
	router.Get("/health", h.HealthCheck)

	router.Route("/api/v1", func(api chi.Router) {
		api.Use(identity.Middleware(verifier, h.logger))

		api.Get("/semesters", h.GetSemesters)

		api.Route("/students", func(r chi.Router) {
			r.Get("/{code}", h.GetStudentByCode)
			r.Get("/{id}/courses", h.GetStudentCourses)
			r.Get("/{id}/grades", h.GetStudentGrades)
			r.Get("/{id}/attendance", h.GetStudentAttendance)
		})

		api.Route("/professors", func(r chi.Router) {
			r.Get("/{id}/sections", h.GetProfessorSections)
		})

		api.Route("/sections", func(r chi.Router) {
			r.Get("/{id}/students", h.GetEnrolledStudents)
		})

		api.Get("/courses/search", h.SearchCourses)

		api.Route("/grades", func(r chi.Router) {
			r.With(identity.RequireProfessor).Post("/", h.RecordGrade)
		})

		api.Route("/attendance", func(r chi.Router) {
			r.With(identity.RequireProfessor).Post("/", h.RecordAttendance)
		})

		api.Post("/chat/messages", h.SendChatMessage)
	})
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "portal-service",
		"timestamp": time.Now().UTC(),
	}
	status := http.StatusOK

	if h.db != nil {
		if err := h.db.Ping(r.Context()); err != nil {
			h.logger.Error().Err(err).Msg("Database health check failed")
			response["status"] = "degraded"
			response["database"] = "unreachable"
			status = http.StatusServiceUnavailable
		} else {
			response["database"] = "ok"
		}
	}

	utils.WriteJSON(w, status, response)
}

// requireSelfOrProfessor закрывает чужие данные: студент читает только
// свои записи, преподаватель — любые.
func (h *Handler) requireSelfOrProfessor(w http.ResponseWriter, r *http.Request, studentID string) bool {
	user, ok := identity.FromContext(r.Context())
	if !ok {
		utils.ErrorResponse(w, http.StatusUnauthorized, "Authentication is required")
		return false
	}

	if user.Role != identity.RoleProfessor && user.ID != studentID {
		utils.ErrorResponse(w, http.StatusForbidden, "Access to another student's records is not allowed")
		return false
	}

	return true
}

func (h *Handler) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		utils.ErrorResponse(w, http.StatusNotFound, "record not found")
	case errors.Is(err, models.ErrEnrollmentNotFound):
		// Fail-closed: не раскрываем, чего именно не хватило
		utils.ErrorResponse(w, http.StatusNotFound, "enrollment not found")
	default:
		h.logger.Error().Err(err).Msg("Service error")
		utils.ErrorResponse(w, http.StatusInternalServerError, "Internal server error")
	}
}
