package httpd

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/academico/portal-service/internal/identity"
	"github.com/academico/portal-service/internal/models"
)

type stubAttendanceService struct {
	records []models.AttendanceView
	err     error
}

func (s *stubAttendanceService) GetStudentAttendance(ctx context.Context, studentID, semester string) ([]models.AttendanceView, error) {
	return s.records, s.err
}

func (s *stubAttendanceService) RecordAttendance(ctx context.Context, req *models.RecordAttendanceRequest, professorID string) error {
	return nil
}

func getStudentAttendance(t *testing.T, h *Handler, studentID string, user *identity.User) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/students/"+studentID+"/attendance?semester=2026-1", nil)

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", studentID)
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	ctx = identity.WithUser(ctx, user)

	rec := httptest.NewRecorder()
	h.GetStudentAttendance(rec, req.WithContext(ctx))
	return rec
}

func TestGetStudentAttendance(t *testing.T) {
	professor := &identity.User{ID: "prof-1", Role: identity.RoleProfessor}

	t.Run("summaries are per course, never blended", func(t *testing.T) {
		var records []models.AttendanceView
		for i := 0; i < 4; i++ {
			records = append(records,
				models.AttendanceView{CourseCode: "CS101", CourseName: "Algorithms", Status: "Present"},
				models.AttendanceView{CourseCode: "MA201", CourseName: "Calculus", Status: "Absent"},
			)
		}
		h := &Handler{attendanceService: &stubAttendanceService{records: records}, logger: zerolog.Nop()}

		rec := getStudentAttendance(t, h, "stu-1", professor)

		require.Equal(t, http.StatusOK, rec.Code)

		var envelope struct {
			Success bool                   `json:"success"`
			Data    attendanceListResponse `json:"data"`
		}
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&envelope))
		require.True(t, envelope.Success)
		assert.Equal(t, 8, envelope.Data.Total)

		require.Len(t, envelope.Data.Summaries, 2)
		cs101, ma201 := envelope.Data.Summaries[0], envelope.Data.Summaries[1]

		assert.Equal(t, "CS101", cs101.CourseCode)
		assert.Equal(t, 4, cs101.Summary.Total)
		assert.Equal(t, 100, cs101.Summary.RatePercent)
		assert.True(t, cs101.Satisfactory)

		assert.Equal(t, "MA201", ma201.CourseCode)
		assert.Equal(t, 4, ma201.Summary.Total)
		assert.Equal(t, 0, ma201.Summary.RatePercent)
		assert.False(t, ma201.Satisfactory)
	})

	t.Run("student reading another student's records is forbidden", func(t *testing.T) {
		h := &Handler{attendanceService: &stubAttendanceService{}, logger: zerolog.Nop()}
		student := &identity.User{ID: "stu-2", Role: identity.RoleStudent}

		rec := getStudentAttendance(t, h, "stu-1", student)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("read failure degrades to an empty list", func(t *testing.T) {
		h := &Handler{attendanceService: &stubAttendanceService{err: assert.AnError}, logger: zerolog.Nop()}

		rec := getStudentAttendance(t, h, "stu-1", professor)

		require.Equal(t, http.StatusOK, rec.Code)

		var envelope struct {
			Data attendanceListResponse `json:"data"`
		}
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&envelope))
		assert.Empty(t, envelope.Data.Records)
		assert.Empty(t, envelope.Data.Summaries)
	})
}
