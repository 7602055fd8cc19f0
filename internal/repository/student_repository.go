package repository

import (
	"context"
	"database/sql"

	"github.com/rs/zerolog"

	"github.com/academico/portal-service/internal/models"
)

type StudentRepository interface {
	GetByCode(ctx context.Context, code string) (*models.StudentView, error)
}

type studentRepository struct {
	*PostgresRepository
}

func NewStudentRepository(db *sql.DB, logger zerolog.Logger) StudentRepository {
	return &studentRepository{
		PostgresRepository: NewPostgresRepository(db, logger),
	}
}

func (r *studentRepository) GetByCode(ctx context.Context, code string) (*models.StudentView, error) {
	query := `
		SELECT s.id, s.code, u.first_name, u.last_name, u.email, sc.name as school_name
		FROM students s
		JOIN users u ON s.id = u.id
		JOIN schools sc ON s.school_id = sc.id
		WHERE s.code = $1
	`

	student := &models.StudentView{}
	err := r.db.QueryRowContext(ctx, query, code).Scan(
		&student.ID,
		&student.Code,
		&student.FirstName,
		&student.LastName,
		&student.Email,
		&student.SchoolName,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	return student, err
}
