package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/academico/portal-service/internal/models"
)

type AttendanceRepository interface {
	GetByStudent(ctx context.Context, studentID, period string) ([]models.AttendanceView, error)
	Insert(ctx context.Context, enrollmentID int64, date time.Time, status, remarks, professorID string) error
}

type attendanceRepository struct {
	*PostgresRepository
}

func NewAttendanceRepository(db *sql.DB, logger zerolog.Logger) AttendanceRepository {
	return &attendanceRepository{
		PostgresRepository: NewPostgresRepository(db, logger),
	}
}

func (r *attendanceRepository) GetByStudent(ctx context.Context, studentID, period string) ([]models.AttendanceView, error) {
	query := `
		SELECT
			a.id, a.date, a.status, a.remarks,
			c.code as course_code, c.name as course_name
		FROM attendance a
		JOIN enrollments e ON a.enrollment_id = e.id
		JOIN sections s ON e.section_id = s.id
		JOIN courses c ON s.course_code = c.code
		WHERE e.student_id = $1 AND s.academic_period = $2
		ORDER BY a.date DESC
	`

	rows, err := r.db.QueryContext(ctx, query, studentID, period)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.AttendanceView
	for rows.Next() {
		var record models.AttendanceView
		err := rows.Scan(
			&record.ID,
			&record.Date,
			&record.Status,
			&record.Remarks,
			&record.CourseCode,
			&record.CourseName,
		)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

// Insert всегда добавляет новую запись; повторная отметка на ту же дату
// даёт вторую запись, дедупликации нет.
func (r *attendanceRepository) Insert(ctx context.Context, enrollmentID int64, date time.Time, status, remarks, professorID string) error {
	// Ровно тот же набор статусов, что и CHECK-ограничение таблицы
	if !models.IsValidAttendanceStatus(status) {
		return fmt.Errorf("unknown attendance status: %s", status)
	}

	query := `
		INSERT INTO attendance (id, enrollment_id, date, status, remarks, registered_by, registered_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	var remarksValue sql.NullString
	if remarks != "" {
		remarksValue = sql.NullString{String: remarks, Valid: true}
	}

	_, err := r.db.ExecContext(ctx, query,
		uuid.New().String(),
		enrollmentID,
		date,
		status,
		remarksValue,
		professorID,
		time.Now(),
	)

	return err
}
