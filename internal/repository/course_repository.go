package repository

import (
	"context"
	"database/sql"

	"github.com/rs/zerolog"

	"github.com/academico/portal-service/internal/models"
)

type CourseRepository interface {
	Search(ctx context.Context, query string, schoolID *int64) ([]models.CourseView, error)
}

type courseRepository struct {
	*PostgresRepository
}

func NewCourseRepository(db *sql.DB, logger zerolog.Logger) CourseRepository {
	return &courseRepository{
		PostgresRepository: NewPostgresRepository(db, logger),
	}
}

func (r *courseRepository) Search(ctx context.Context, query string, schoolID *int64) ([]models.CourseView, error) {
	pattern := "%" + query + "%"

	var rows *sql.Rows
	var err error

	if schoolID != nil {
		q := `
			SELECT c.code, c.name, c.credits, c.theory_hours, c.practice_hours
			FROM courses c
			JOIN course_school cs ON c.code = cs.course_code
			WHERE c.active = TRUE
			  AND cs.school_id = $1
			  AND (c.name ILIKE $2 OR c.code ILIKE $2)
			ORDER BY c.code
		`
		rows, err = r.db.QueryContext(ctx, q, *schoolID, pattern)
	} else {
		q := `
			SELECT code, name, credits, theory_hours, practice_hours
			FROM courses
			WHERE active = TRUE
			  AND (name ILIKE $1 OR code ILIKE $1)
			ORDER BY code
		`
		rows, err = r.db.QueryContext(ctx, q, pattern)
	}

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []models.CourseView
	for rows.Next() {
		var course models.CourseView
		err := rows.Scan(
			&course.Code,
			&course.Name,
			&course.Credits,
			&course.TheoryHours,
			&course.PracticeHours,
		)
		if err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}

	return courses, rows.Err()
}
