package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"stampcard/config"
	deliverycontext "stampcard/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimitMiddleware_PassThroughWithoutRedis(t *testing.T) {
	cfg := &config.Config{RateLimit: &config.RateLimitConfig{Enabled: true, Capacity: 1}}
	m := NewRateLimitMiddleware(cfg, nil, newDiscardLogger())

	e := echo.New()
	calls := 0
	handler := m.Limit(func(c echo.Context) error {
		calls++

		return c.NoContent(http.StatusCreated)
	})

	for range 3 {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodPost, "/add-stamp", nil), rec)
		require.NoError(t, handler(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Empty(t, rec.Header().Get("X-RateLimit-Limit"))
	}
	assert.Equal(t, 3, calls)
}

func TestRateLimitMiddleware_BucketKey(t *testing.T) {
	m := NewRateLimitMiddleware(&config.Config{RateLimit: &config.RateLimitConfig{Prefix: "pos"}}, nil, newDiscardLogger())
	e := echo.New()

	req := httptest.NewRequest(http.MethodPost, "/add-stamp", nil)
	req.Header.Set(echo.HeaderXRealIP, "203.0.113.7")
	c := e.NewContext(req, httptest.NewRecorder())
	assert.Equal(t, "pos:ip:203.0.113.7", m.bucketKey(c))

	actorID := uuid.New()
	deliverycontext.SetActorID(c, actorID)
	assert.Equal(t, "pos:actor:"+actorID.String(), m.bucketKey(c))
}

func TestAsInt64(t *testing.T) {
	assert.Equal(t, int64(4), asInt64(int64(4)))
	assert.Equal(t, int64(4), asInt64("4"))
	assert.Equal(t, int64(4), asInt64(4.0))
	assert.Zero(t, asInt64(nil))
}
