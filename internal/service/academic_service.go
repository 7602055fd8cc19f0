package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/academico/portal-service/internal/models"
	"github.com/academico/portal-service/internal/repository"
)

// Список академических периодов, доступных для выбора.
var academicPeriods = []string{"2025-I", "2024-II", "2024-I", "2023-II", "2023-I"}

type AcademicService interface {
	GetSemesters() []string
	GetStudentCourses(ctx context.Context, studentID, semester string) ([]models.CourseEnrollmentView, error)
	GetProfessorSections(ctx context.Context, professorID, semester string) ([]models.SectionView, error)
	GetEnrolledStudents(ctx context.Context, sectionID int64) ([]models.EnrollmentView, error)
	SearchCourses(ctx context.Context, query string, schoolID *int64) ([]models.CourseView, error)
}

type academicService struct {
	enrollmentRepo repository.EnrollmentRepository
	sectionRepo    repository.SectionRepository
	courseRepo     repository.CourseRepository
	logger         zerolog.Logger
}

func NewAcademicService(
	enrollmentRepo repository.EnrollmentRepository,
	sectionRepo repository.SectionRepository,
	courseRepo repository.CourseRepository,
	logger zerolog.Logger,
) AcademicService {
	return &academicService{
		enrollmentRepo: enrollmentRepo,
		sectionRepo:    sectionRepo,
		courseRepo:     courseRepo,
		logger:         logger,
	}
}

func (s *academicService) GetSemesters() []string {
	semesters := make([]string, len(academicPeriods))
	copy(semesters, academicPeriods)
	return semesters
}

func (s *academicService) GetStudentCourses(ctx context.Context, studentID, semester string) ([]models.CourseEnrollmentView, error) {
	courses, err := s.enrollmentRepo.GetCoursesByStudent(ctx, studentID, semester)
	if err != nil {
		return nil, fmt.Errorf("failed to get student courses: %w", err)
	}

	return courses, nil
}

func (s *academicService) GetProfessorSections(ctx context.Context, professorID, semester string) ([]models.SectionView, error) {
	sections, err := s.sectionRepo.GetByProfessor(ctx, professorID, semester)
	if err != nil {
		return nil, fmt.Errorf("failed to get professor sections: %w", err)
	}

	return sections, nil
}

func (s *academicService) GetEnrolledStudents(ctx context.Context, sectionID int64) ([]models.EnrollmentView, error) {
	roster, err := s.sectionRepo.GetRoster(ctx, sectionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get enrolled students: %w", err)
	}

	return roster, nil
}

func (s *academicService) SearchCourses(ctx context.Context, query string, schoolID *int64) ([]models.CourseView, error) {
	// Пустой запрос — пустой результат, полного списка не бывает
	if strings.TrimSpace(query) == "" {
		return []models.CourseView{}, nil
	}

	courses, err := s.courseRepo.Search(ctx, strings.TrimSpace(query), schoolID)
	if err != nil {
		return nil, fmt.Errorf("failed to search courses: %w", err)
	}

	return courses, nil
}
