package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/academico/portal-service/internal/models"
	"github.com/academico/portal-service/internal/repository"
)

type StudentService interface {
	GetByCode(ctx context.Context, code string) (*models.StudentView, error)
}

type studentService struct {
	studentRepo repository.StudentRepository
	logger      zerolog.Logger
}

func NewStudentService(studentRepo repository.StudentRepository, logger zerolog.Logger) StudentService {
	return &studentService{
		studentRepo: studentRepo,
		logger:      logger,
	}
}

// GetByCode ищет студента по коду. Отсутствие студента — ErrNotFound,
// отличимый от сбоя запроса.
func (s *studentService) GetByCode(ctx context.Context, code string) (*models.StudentView, error) {
	student, err := s.studentRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to look up student: %w", err)
	}
	if student == nil {
		return nil, models.ErrNotFound
	}

	return student, nil
}
