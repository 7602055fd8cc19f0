package repository

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// Сторожевые проверки срабатывают до обращения к базе, поэтому nil-база
// здесь безопасна.

func TestUpsertComponentRejectsUnknownComponent(t *testing.T) {
	repo := NewGradeRepository(nil, zerolog.Nop())

	err := repo.UpsertComponent(context.Background(), 1, "participation", 10, "", "prof-1")

	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown grade component")
}

func TestInsertAttendanceRejectsUnknownStatus(t *testing.T) {
	repo := NewAttendanceRepository(nil, zerolog.Nop())

	err := repo.Insert(context.Background(), 1, time.Now(), "Excused", "", "prof-1")

	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown attendance status")
}
