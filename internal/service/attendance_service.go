package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/academico/portal-service/internal/models"
	"github.com/academico/portal-service/internal/repository"
	"github.com/academico/portal-service/internal/service/integration"
)

type AttendanceService interface {
	GetStudentAttendance(ctx context.Context, studentID, semester string) ([]models.AttendanceView, error)
	RecordAttendance(ctx context.Context, req *models.RecordAttendanceRequest, professorID string) error
}

type attendanceService struct {
	attendanceRepo repository.AttendanceRepository
	enrollmentRepo repository.EnrollmentRepository
	publisher      integration.EventPublisher
	validate       *validator.Validate
	logger         zerolog.Logger
}

func NewAttendanceService(
	attendanceRepo repository.AttendanceRepository,
	enrollmentRepo repository.EnrollmentRepository,
	publisher integration.EventPublisher,
	logger zerolog.Logger,
) AttendanceService {
	return &attendanceService{
		attendanceRepo: attendanceRepo,
		enrollmentRepo: enrollmentRepo,
		publisher:      publisher,
		validate:       validator.New(),
		logger:         logger,
	}
}

func (s *attendanceService) GetStudentAttendance(ctx context.Context, studentID, semester string) ([]models.AttendanceView, error) {
	records, err := s.attendanceRepo.GetByStudent(ctx, studentID, semester)
	if err != nil {
		return nil, fmt.Errorf("failed to get student attendance: %w", err)
	}

	return records, nil
}

// RecordAttendance отмечает посещаемость. Всегда вставка: повторная
// отметка на ту же дату намеренно даёт вторую запись.
func (s *attendanceService) RecordAttendance(ctx context.Context, req *models.RecordAttendanceRequest, professorID string) error {
	if err := s.validate.Struct(req); err != nil {
		return fmt.Errorf("invalid attendance request: %w", err)
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return fmt.Errorf("invalid attendance date: %w", err)
	}

	// То же правило fail-closed, что и для оценок
	enrollmentID, err := s.enrollmentRepo.ResolveForProfessor(ctx, req.StudentCode, req.CourseCode, professorID)
	if err != nil {
		return fmt.Errorf("failed to resolve enrollment: %w", err)
	}
	if enrollmentID == 0 {
		return models.ErrEnrollmentNotFound
	}

	if err := s.attendanceRepo.Insert(ctx, enrollmentID, date, req.Status, req.Remarks, professorID); err != nil {
		return fmt.Errorf("failed to record attendance: %w", err)
	}

	s.logger.Info().
		Int64("enrollment_id", enrollmentID).
		Str("date", req.Date).
		Str("status", req.Status).
		Msg("Attendance recorded")

	if s.publisher != nil {
		event := &models.AttendanceRecordedEvent{
			EnrollmentID: enrollmentID,
			CourseCode:   req.CourseCode,
			StudentCode:  req.StudentCode,
			Date:         req.Date,
			Status:       req.Status,
			ProfessorID:  professorID,
			Timestamp:    time.Now().Unix(),
		}

		if err := s.publisher.PublishAttendanceRecorded(ctx, event); err != nil {
			s.logger.Error().Err(err).Msg("Failed to publish attendance recorded event")
		}
	}

	return nil
}
