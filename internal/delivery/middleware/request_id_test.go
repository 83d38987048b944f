package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"stampcard/config"
	deliverycontext "stampcard/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_Process(t *testing.T) {
	tests := []struct {
		name   string
		header string
		reuse  bool
	}{
		{name: "client id is kept", header: "pos-terminal-7:42", reuse: true},
		{name: "missing id is generated", header: ""},
		{name: "id with spaces is replaced", header: "bad id\ninjected"},
		{name: "oversized id is replaced", header: strings.Repeat("a", maxRequestIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewRequestIDMiddleware(slog.Default())
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			if tt.header != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var ctxID string
			err := m.Process(func(c echo.Context) error {
				ctxID = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				assert.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

				return nil
			})(c)
			require.NoError(t, err)

			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.Equal(t, got, ctxID)
			assert.Equal(t, got, deliverycontext.GetRequestID(c))
			if tt.reuse {
				assert.Equal(t, tt.header, got)
			} else {
				_, parseErr := uuid.Parse(got)
				assert.NoError(t, parseErr)
			}
		})
	}
}

func TestLoggerMiddleware_Handle(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	cfg := &config.Config{}
	m := NewLoggerMiddleware(logger, cfg)

	e := echo.New()

	t.Run("logs request with actor", func(t *testing.T) {
		buf.Reset()
		c := e.NewContext(httptest.NewRequest(http.MethodPost, "/add-stamp?x=1", nil), httptest.NewRecorder())
		actorID := uuid.New()
		deliverycontext.SetActorID(c, actorID)

		require.NoError(t, m.Handle(func(c echo.Context) error {
			return c.NoContent(http.StatusCreated)
		})(c))

		line := buf.String()
		assert.Contains(t, line, `"msg":"HTTP Request"`)
		assert.Contains(t, line, `"status":201`)
		assert.Contains(t, line, actorID.String())
		assert.NotContains(t, line, `"query"`)
	})

	t.Run("skips healthy probes", func(t *testing.T) {
		buf.Reset()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), httptest.NewRecorder())

		require.NoError(t, m.Handle(func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})(c))

		assert.Empty(t, buf.String())
	})

	t.Run("renders handler errors before logging", func(t *testing.T) {
		buf.Reset()
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/missing", nil), rec)

		require.NoError(t, m.Handle(func(echo.Context) error {
			return echo.ErrNotFound
		})(c))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, buf.String(), `"level":"WARN"`)
	})
}
