package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/navidh/exam-center-scheduling/internal/config"
)

func limiterContext(t *testing.T) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/centers", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/v1/centers")
	return c
}

func TestTokenBucketPassThrough(t *testing.T) {
	next := func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}

	t.Run("disabled by config", func(t *testing.T) {
		mw := NewTokenBucket(config.RateLimitConfig{Enabled: false}, nil)
		c := limiterContext(t)
		require.NoError(t, mw(next)(c))
		assert.Equal(t, http.StatusOK, c.Response().Status)
	})

	t.Run("no redis client", func(t *testing.T) {
		mw := NewTokenBucket(config.RateLimitConfig{Enabled: true, Capacity: 1}, nil)
		c := limiterContext(t)
		require.NoError(t, mw(next)(c))
		assert.Equal(t, http.StatusOK, c.Response().Status)
	})
}

func TestBuildRateKey(t *testing.T) {
	userID := uuid.New()
	tests := []struct {
		strategy string
		want     string
	}{
		{"ip", "rl:ip:192.0.2.1"},
		{"user", "rl:user:" + userID.String()},
		{"route", "rl:route:GET /v1/centers"},
		{"ip_user", "rl:ip:192.0.2.1:user:" + userID.String()},
		{"user_route", "rl:user:" + userID.String() + ":route:GET /v1/centers"},
		// Unknown strategies fall back to the most specific key.
		{"bogus", "rl:ip:192.0.2.1:user:" + userID.String() + ":route:GET /v1/centers"},
	}
	for _, tt := range tests {
		t.Run(tt.strategy, func(t *testing.T) {
			c := limiterContext(t)
			c.Set(ContextUserID, userID)
			cfg := config.RateLimitConfig{Prefix: "rl", KeyStrategy: tt.strategy}
			assert.Equal(t, tt.want, buildRateKey(cfg, c))
		})
	}
}

func TestCurrentUserID(t *testing.T) {
	t.Run("typed uuid from auth middleware", func(t *testing.T) {
		c := limiterContext(t)
		id := uuid.New()
		c.Set(ContextUserID, id)
		assert.Equal(t, id.String(), currentUserID(c))
	})

	t.Run("anonymous request", func(t *testing.T) {
		assert.Equal(t, "anon", currentUserID(limiterContext(t)))
	})
}

func TestAsInt64(t *testing.T) {
	assert.Equal(t, int64(7), asInt64(int64(7)))
	assert.Equal(t, int64(7), asInt64(7))
	assert.Equal(t, int64(7), asInt64(7.9))
	assert.Equal(t, int64(7), asInt64("7"))
	assert.Equal(t, int64(0), asInt64("seven"))
	assert.Equal(t, int64(0), asInt64(nil))
}
