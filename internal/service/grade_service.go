package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/academico/portal-service/internal/grading"
	"github.com/academico/portal-service/internal/models"
	"github.com/academico/portal-service/internal/repository"
	"github.com/academico/portal-service/internal/service/integration"
)

type GradeService interface {
	GetStudentGrades(ctx context.Context, studentID, semester string) ([]models.GradeView, error)
	RecordGrade(ctx context.Context, req *models.RecordGradeRequest, professorID string) error
}

type gradeService struct {
	gradeRepo      repository.GradeRepository
	enrollmentRepo repository.EnrollmentRepository
	publisher      integration.EventPublisher
	validate       *validator.Validate
	logger         zerolog.Logger
}

func NewGradeService(
	gradeRepo repository.GradeRepository,
	enrollmentRepo repository.EnrollmentRepository,
	publisher integration.EventPublisher,
	logger zerolog.Logger,
) GradeService {
	return &gradeService{
		gradeRepo:      gradeRepo,
		enrollmentRepo: enrollmentRepo,
		publisher:      publisher,
		validate:       validator.New(),
		logger:         logger,
	}
}

func (s *gradeService) GetStudentGrades(ctx context.Context, studentID, semester string) ([]models.GradeView, error) {
	grades, err := s.gradeRepo.GetByStudent(ctx, studentID, semester)
	if err != nil {
		return nil, fmt.Errorf("failed to get student grades: %w", err)
	}

	for i := range grades {
		g := &grades[i]
		// Строки до ввода триггера пересчёта могут не нести среднего
		if g.FinalAverage == nil {
			if avg := grading.WeightedAverage(g.MidtermScore, g.FinalScore, g.AssignmentScore); avg != nil {
				rounded := grading.Round1(*avg)
				g.FinalAverage = &rounded
			}
		}
		if g.FinalAverage != nil {
			passed := grading.Passed(g.FinalAverage)
			g.Passed = &passed
		}
	}

	return grades, nil
}

func (s *gradeService) RecordGrade(ctx context.Context, req *models.RecordGradeRequest, professorID string) error {
	// Валидация до любого обращения к базе
	if err := s.validate.Struct(req); err != nil {
		return fmt.Errorf("invalid grade request: %w", err)
	}

	// Разрешаем матрикулу только в секции действующего преподавателя.
	// Нет матрикулы — нет записи, какие бы коды ни пришли.
	enrollmentID, err := s.enrollmentRepo.ResolveForProfessor(ctx, req.StudentCode, req.CourseCode, professorID)
	if err != nil {
		return fmt.Errorf("failed to resolve enrollment: %w", err)
	}
	if enrollmentID == 0 {
		return models.ErrEnrollmentNotFound
	}

	if err := s.gradeRepo.UpsertComponent(ctx, enrollmentID, req.Component, req.Score, req.Remarks, professorID); err != nil {
		return fmt.Errorf("failed to record grade: %w", err)
	}

	s.logger.Info().
		Int64("enrollment_id", enrollmentID).
		Str("component", req.Component).
		Str("course_code", req.CourseCode).
		Msg("Grade component recorded")

	if s.publisher != nil {
		event := &models.GradeRecordedEvent{
			EnrollmentID: enrollmentID,
			CourseCode:   req.CourseCode,
			StudentCode:  req.StudentCode,
			Component:    req.Component,
			Score:        req.Score,
			ProfessorID:  professorID,
			Timestamp:    time.Now().Unix(),
		}

		if err := s.publisher.PublishGradeRecorded(ctx, event); err != nil {
			s.logger.Error().Err(err).Msg("Failed to publish grade recorded event")
			// Публикация не критична, запись уже в базе
		}
	}

	return nil
}
