package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/academico/portal-service/internal/models"
)

type fakeAttendanceRepo struct {
	err     error
	inserts int
	lastDay time.Time
	status  string
}

func (f *fakeAttendanceRepo) GetByStudent(ctx context.Context, studentID, period string) ([]models.AttendanceView, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) Insert(ctx context.Context, enrollmentID int64, date time.Time, status, remarks, professorID string) error {
	f.inserts++
	f.lastDay = date
	f.status = status
	return f.err
}

func validAttendanceRequest() *models.RecordAttendanceRequest {
	return &models.RecordAttendanceRequest{
		CourseCode:  "CS101",
		StudentCode: "20201234",
		Date:        "2026-03-15",
		Status:      "Present",
	}
}

func TestRecordAttendance(t *testing.T) {
	ctx := context.Background()

	t.Run("inserts a record for resolved enrollment", func(t *testing.T) {
		enrollments := &fakeEnrollmentRepo{enrollmentID: 42}
		attendance := &fakeAttendanceRepo{}
		publisher := &fakePublisher{}
		svc := NewAttendanceService(attendance, enrollments, publisher, zerolog.Nop())

		err := svc.RecordAttendance(ctx, validAttendanceRequest(), "prof-1")

		require.NoError(t, err)
		assert.Equal(t, 1, attendance.inserts)
		assert.Equal(t, "Present", attendance.status)
		assert.Equal(t, 2026, attendance.lastDay.Year())
		assert.Equal(t, 1, publisher.attendanceEvents)
	})

	t.Run("repeated marking inserts a second record", func(t *testing.T) {
		// Дубликаты допускаются: разрешение конфликтов — задача читателя
		enrollments := &fakeEnrollmentRepo{enrollmentID: 42}
		attendance := &fakeAttendanceRepo{}
		svc := NewAttendanceService(attendance, enrollments, nil, zerolog.Nop())

		req := validAttendanceRequest()
		require.NoError(t, svc.RecordAttendance(ctx, req, "prof-1"))
		require.NoError(t, svc.RecordAttendance(ctx, req, "prof-1"))

		assert.Equal(t, 2, attendance.inserts)
	})

	t.Run("rejects when professor does not teach the section", func(t *testing.T) {
		enrollments := &fakeEnrollmentRepo{enrollmentID: 0}
		attendance := &fakeAttendanceRepo{}
		svc := NewAttendanceService(attendance, enrollments, nil, zerolog.Nop())

		err := svc.RecordAttendance(ctx, validAttendanceRequest(), "prof-other")

		require.ErrorIs(t, err, models.ErrEnrollmentNotFound)
		assert.Zero(t, attendance.inserts)
	})

	t.Run("rejects malformed date", func(t *testing.T) {
		enrollments := &fakeEnrollmentRepo{enrollmentID: 42}
		attendance := &fakeAttendanceRepo{}
		svc := NewAttendanceService(attendance, enrollments, nil, zerolog.Nop())

		req := validAttendanceRequest()
		req.Date = "15/03/2026"

		err := svc.RecordAttendance(ctx, req, "prof-1")

		require.Error(t, err)
		assert.Zero(t, enrollments.calls)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		enrollments := &fakeEnrollmentRepo{enrollmentID: 42}
		attendance := &fakeAttendanceRepo{}
		svc := NewAttendanceService(attendance, enrollments, nil, zerolog.Nop())

		req := validAttendanceRequest()
		req.Status = "Excused"

		err := svc.RecordAttendance(ctx, req, "prof-1")

		require.Error(t, err)
		assert.Zero(t, attendance.inserts)
	})
}
