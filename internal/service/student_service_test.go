package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/academico/portal-service/internal/models"
)

type fakeStudentRepo struct {
	student *models.StudentView
	err     error
}

func (f *fakeStudentRepo) GetByCode(ctx context.Context, code string) (*models.StudentView, error) {
	return f.student, f.err
}

func TestStudentGetByCode(t *testing.T) {
	ctx := context.Background()

	t.Run("returns student when found", func(t *testing.T) {
		repo := &fakeStudentRepo{student: &models.StudentView{Code: "20201234"}}
		svc := NewStudentService(repo, zerolog.Nop())

		student, err := svc.GetByCode(ctx, "20201234")

		require.NoError(t, err)
		assert.Equal(t, "20201234", student.Code)
	})

	t.Run("missing student yields ErrNotFound", func(t *testing.T) {
		repo := &fakeStudentRepo{}
		svc := NewStudentService(repo, zerolog.Nop())

		_, err := svc.GetByCode(ctx, "00000000")

		require.ErrorIs(t, err, models.ErrNotFound)
	})

	t.Run("query failure is not ErrNotFound", func(t *testing.T) {
		repo := &fakeStudentRepo{err: errors.New("connection reset")}
		svc := NewStudentService(repo, zerolog.Nop())

		_, err := svc.GetByCode(ctx, "20201234")

		require.Error(t, err)
		assert.NotErrorIs(t, err, models.ErrNotFound)
	})
}
