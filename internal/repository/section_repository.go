package repository

import (
	"context"
	"database/sql"

	"github.com/rs/zerolog"

	"github.com/academico/portal-service/internal/models"
)

type SectionRepository interface {
	GetByProfessor(ctx context.Context, professorID, period string) ([]models.SectionView, error)
	GetRoster(ctx context.Context, sectionID int64) ([]models.EnrollmentView, error)
}

type sectionRepository struct {
	*PostgresRepository
}

func NewSectionRepository(db *sql.DB, logger zerolog.Logger) SectionRepository {
	return &sectionRepository{
		PostgresRepository: NewPostgresRepository(db, logger),
	}
}

func (r *sectionRepository) GetByProfessor(ctx context.Context, professorID, period string) ([]models.SectionView, error) {
	query := `
		SELECT
			s.id, s.name, s.schedule, s.academic_period, s.start_date, s.end_date,
			c.code as course_code, c.name as course_name,
			c.credits, c.theory_hours, c.practice_hours,
			sc.name as school_name
		FROM sections s
		JOIN courses c ON s.course_code = c.code
		LEFT JOIN schools sc ON s.school_id = sc.id
		WHERE s.professor_id = $1 AND s.academic_period = $2 AND s.active = TRUE
		ORDER BY c.code, s.name
	`

	rows, err := r.db.QueryContext(ctx, query, professorID, period)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sections []models.SectionView
	for rows.Next() {
		var section models.SectionView
		err := rows.Scan(
			&section.ID,
			&section.Name,
			&section.Schedule,
			&section.AcademicPeriod,
			&section.StartDate,
			&section.EndDate,
			&section.CourseCode,
			&section.CourseName,
			&section.Credits,
			&section.TheoryHours,
			&section.PracticeHours,
			&section.SchoolName,
		)
		if err != nil {
			return nil, err
		}
		sections = append(sections, section)
	}

	return sections, rows.Err()
}

func (r *sectionRepository) GetRoster(ctx context.Context, sectionID int64) ([]models.EnrollmentView, error) {
	query := `
		SELECT
			e.id as enrollment_id, e.enrolled_at, e.status,
			s.code as student_code,
			u.first_name, u.last_name, u.email
		FROM enrollments e
		JOIN students s ON e.student_id = s.id
		JOIN users u ON s.id = u.id
		WHERE e.section_id = $1
		ORDER BY u.last_name, u.first_name
	`

	rows, err := r.db.QueryContext(ctx, query, sectionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roster []models.EnrollmentView
	for rows.Next() {
		var entry models.EnrollmentView
		err := rows.Scan(
			&entry.EnrollmentID,
			&entry.EnrolledAt,
			&entry.Status,
			&entry.StudentCode,
			&entry.FirstName,
			&entry.LastName,
			&entry.Email,
		)
		if err != nil {
			return nil, err
		}
		roster = append(roster, entry)
	}

	return roster, rows.Err()
}
