package repository

import (
	"context"
	"database/sql"

	"github.com/rs/zerolog"

	"github.com/academico/portal-service/internal/models"
)

type EnrollmentRepository interface {
	GetCoursesByStudent(ctx context.Context, studentID, period string) ([]models.CourseEnrollmentView, error)
	ResolveForProfessor(ctx context.Context, studentCode, courseCode, professorID string) (int64, error)
}

type enrollmentRepository struct {
	*PostgresRepository
}

func NewEnrollmentRepository(db *sql.DB, logger zerolog.Logger) EnrollmentRepository {
	return &enrollmentRepository{
		PostgresRepository: NewPostgresRepository(db, logger),
	}
}

func (r *enrollmentRepository) GetCoursesByStudent(ctx context.Context, studentID, period string) ([]models.CourseEnrollmentView, error) {
	query := `
		SELECT
			e.id as enrollment_id, e.enrolled_at, e.status,
			s.id as section_id, s.name as section_name, s.schedule, s.academic_period,
			c.code as course_code, c.name as course_name,
			c.credits, c.theory_hours, c.practice_hours,
			u.first_name || ' ' || u.last_name as professor_name
		FROM enrollments e
		JOIN sections s ON e.section_id = s.id
		JOIN courses c ON s.course_code = c.code
		JOIN professors p ON s.professor_id = p.id
		JOIN users u ON p.id = u.id
		WHERE e.student_id = $1 AND s.academic_period = $2 AND e.status = 'active'
		ORDER BY c.code
	`

	rows, err := r.db.QueryContext(ctx, query, studentID, period)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []models.CourseEnrollmentView
	for rows.Next() {
		var course models.CourseEnrollmentView
		err := rows.Scan(
			&course.EnrollmentID,
			&course.EnrolledAt,
			&course.Status,
			&course.SectionID,
			&course.SectionName,
			&course.Schedule,
			&course.AcademicPeriod,
			&course.CourseCode,
			&course.CourseName,
			&course.Credits,
			&course.TheoryHours,
			&course.PracticeHours,
			&course.ProfessorName,
		)
		if err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}

	return courses, rows.Err()
}

// ResolveForProfessor находит матрикулу по коду студента и коду курса,
// но только в секции действующего преподавателя. Нет секции — нет записи.
func (r *enrollmentRepository) ResolveForProfessor(ctx context.Context, studentCode, courseCode, professorID string) (int64, error) {
	query := `
		SELECT e.id
		FROM enrollments e
		JOIN students st ON e.student_id = st.id
		JOIN sections s ON e.section_id = s.id
		WHERE st.code = $1
		  AND s.course_code = $2
		  AND s.professor_id = $3
		  AND e.status = 'active'
	`

	var enrollmentID int64
	err := r.db.QueryRowContext(ctx, query, studentCode, courseCode, professorID).Scan(&enrollmentID)

	if err == sql.ErrNoRows {
		return 0, nil
	}

	return enrollmentID, err
}
