package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/academico/portal-service/internal/models"
)

type fakeCourseRepo struct {
	courses  []models.CourseView
	err      error
	searches int
}

func (f *fakeCourseRepo) Search(ctx context.Context, query string, schoolID *int64) ([]models.CourseView, error) {
	f.searches++
	return f.courses, f.err
}

type fakeSectionRepo struct {
	sections []models.SectionView
	roster   []models.EnrollmentView
	err      error
}

func (f *fakeSectionRepo) GetByProfessor(ctx context.Context, professorID, period string) ([]models.SectionView, error) {
	return f.sections, f.err
}

func (f *fakeSectionRepo) GetRoster(ctx context.Context, sectionID int64) ([]models.EnrollmentView, error) {
	return f.roster, f.err
}

func TestGetSemesters(t *testing.T) {
	svc := NewAcademicService(&fakeEnrollmentRepo{}, &fakeSectionRepo{}, &fakeCourseRepo{}, zerolog.Nop())

	semesters := svc.GetSemesters()

	require.NotEmpty(t, semesters)

	// Возвращается копия: мутация у вызывающего не портит список
	semesters[0] = "mutated"
	assert.NotEqual(t, "mutated", svc.GetSemesters()[0])
}

func TestSearchCourses(t *testing.T) {
	ctx := context.Background()

	t.Run("blank query returns empty without querying", func(t *testing.T) {
		courses := &fakeCourseRepo{courses: []models.CourseView{{Code: "CS101"}}}
		svc := NewAcademicService(&fakeEnrollmentRepo{}, &fakeSectionRepo{}, courses, zerolog.Nop())

		for _, query := range []string{"", "   ", "\t"} {
			result, err := svc.SearchCourses(ctx, query, nil)

			require.NoError(t, err)
			assert.Empty(t, result)
		}
		assert.Zero(t, courses.searches)
	})

	t.Run("trims the query before searching", func(t *testing.T) {
		courses := &fakeCourseRepo{courses: []models.CourseView{{Code: "CS101"}}}
		svc := NewAcademicService(&fakeEnrollmentRepo{}, &fakeSectionRepo{}, courses, zerolog.Nop())

		result, err := svc.SearchCourses(ctx, "  algorithms  ", nil)

		require.NoError(t, err)
		assert.Len(t, result, 1)
		assert.Equal(t, 1, courses.searches)
	})
}
