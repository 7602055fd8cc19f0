package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/academico/portal-service/internal/models"
)

type GradeRepository interface {
	GetByStudent(ctx context.Context, studentID, period string) ([]models.GradeView, error)
	UpsertComponent(ctx context.Context, enrollmentID int64, component string, score float64, remarks, professorID string) error
}

type gradeRepository struct {
	*PostgresRepository
}

// Колонка по компоненту оценки; всё прочее отклоняется до SQL.
var gradeComponentColumns = map[string]string{
	models.GradeComponentMidterm.String():     "midterm_score",
	models.GradeComponentFinal.String():       "final_score",
	models.GradeComponentAssignments.String(): "assignment_score",
}

func NewGradeRepository(db *sql.DB, logger zerolog.Logger) GradeRepository {
	return &gradeRepository{
		PostgresRepository: NewPostgresRepository(db, logger),
	}
}

func (r *gradeRepository) GetByStudent(ctx context.Context, studentID, period string) ([]models.GradeView, error) {
	query := `
		SELECT
			g.id, g.enrollment_id, s.course_code,
			g.midterm_score, g.final_score, g.assignment_score,
			g.final_average, g.remarks, g.registered_at, g.updated_at
		FROM grades g
		JOIN enrollments e ON g.enrollment_id = e.id
		JOIN sections s ON e.section_id = s.id
		WHERE e.student_id = $1 AND s.academic_period = $2
		ORDER BY s.course_code
	`

	rows, err := r.db.QueryContext(ctx, query, studentID, period)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var grades []models.GradeView
	for rows.Next() {
		var grade models.GradeView
		err := rows.Scan(
			&grade.ID,
			&grade.EnrollmentID,
			&grade.CourseCode,
			&grade.MidtermScore,
			&grade.FinalScore,
			&grade.AssignmentScore,
			&grade.FinalAverage,
			&grade.Remarks,
			&grade.RegisteredAt,
			&grade.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		grades = append(grades, grade)
	}

	return grades, rows.Err()
}

// UpsertComponent записывает один компонент оценки. Вставка и обновление
// идут одним условным запросом по уникальному enrollment_id, поэтому два
// конкурентных первых выставления сливаются в одну запись, а не теряются.
// Средний балл пересчитывается в той же транзакции, когда есть все три
// компонента.
func (r *gradeRepository) UpsertComponent(ctx context.Context, enrollmentID int64, component string, score float64, remarks, professorID string) error {
	if !models.IsValidGradeComponent(component) {
		return fmt.Errorf("unknown grade component: %s", component)
	}
	column := gradeComponentColumns[component]

	tx, err := r.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	upsert := fmt.Sprintf(`
		INSERT INTO grades (id, enrollment_id, %[1]s, remarks, registered_by, registered_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		ON CONFLICT (enrollment_id) DO UPDATE
		SET %[1]s = EXCLUDED.%[1]s,
		    remarks = EXCLUDED.remarks,
		    registered_by = EXCLUDED.registered_by,
		    updated_at = NOW()
	`, column)

	var remarksValue sql.NullString
	if remarks != "" {
		remarksValue = sql.NullString{String: remarks, Valid: true}
	}

	_, err = tx.ExecContext(ctx, upsert,
		uuid.New().String(),
		enrollmentID,
		score,
		remarksValue,
		professorID,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert grade component: %w", err)
	}

	recompute := `
		UPDATE grades
		SET final_average = ROUND(
			0.30 * midterm_score + 0.30 * final_score + 0.40 * assignment_score, 1)
		WHERE enrollment_id = $1
		  AND midterm_score IS NOT NULL
		  AND final_score IS NOT NULL
		  AND assignment_score IS NOT NULL
	`

	if _, err := tx.ExecContext(ctx, recompute, enrollmentID); err != nil {
		return fmt.Errorf("failed to recompute final average: %w", err)
	}

	return tx.Commit()
}
