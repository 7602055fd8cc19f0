package httpd

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPinger struct {
	err error
}

func (s *stubPinger) Ping(ctx context.Context) error {
	return s.err
}

func TestHealthCheck(t *testing.T) {
	checkHealth := func(t *testing.T, h *Handler) (int, map[string]interface{}) {
		t.Helper()

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rec := httptest.NewRecorder()
		h.HealthCheck(rec, req)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		return rec.Code, body
	}

	t.Run("healthy when the database responds", func(t *testing.T) {
		h := &Handler{db: &stubPinger{}, logger: zerolog.Nop()}

		code, body := checkHealth(t, h)

		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, "healthy", body["status"])
		assert.Equal(t, "ok", body["database"])
	})

	t.Run("degraded when the database is unreachable", func(t *testing.T) {
		h := &Handler{db: &stubPinger{err: errors.New("connection refused")}, logger: zerolog.Nop()}

		code, body := checkHealth(t, h)

		assert.Equal(t, http.StatusServiceUnavailable, code)
		assert.Equal(t, "degraded", body["status"])
		assert.Equal(t, "unreachable", body["database"])
	})
}
