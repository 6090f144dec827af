package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRateLimiter(t *testing.T, maxAttempts int, window time.Duration) (*RateLimiter, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRateLimiterWithConfig(client, maxAttempts, window), mr
}

func rateLimitedRouter(rl *RateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/login", rl.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func doLogin(router *gin.Engine) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.RemoteAddr = "203.0.113.7:51234"
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestRateLimiterBlocksAfterMaxAttempts(t *testing.T) {
	t.Setenv("ENV", "")
	t.Setenv("E2E_MODE", "")

	rl, _ := setupRateLimiter(t, 3, time.Minute)
	router := rateLimitedRouter(rl)

	for i := 0; i < 3; i++ {
		recorder := doLogin(router)
		require.Equal(t, http.StatusOK, recorder.Code, "attempt %d should pass", i+1)
	}

	recorder := doLogin(router)
	assert.Equal(t, http.StatusTooManyRequests, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "AUTH-")
}

func TestRateLimiterWindowExpires(t *testing.T) {
	t.Setenv("ENV", "")
	t.Setenv("E2E_MODE", "")

	rl, mr := setupRateLimiter(t, 1, time.Minute)
	router := rateLimitedRouter(rl)

	require.Equal(t, http.StatusOK, doLogin(router).Code)
	require.Equal(t, http.StatusTooManyRequests, doLogin(router).Code)

	mr.FastForward(time.Minute + time.Second)

	assert.Equal(t, http.StatusOK, doLogin(router).Code)
}

func TestRateLimiterFailsOpenOnRedisOutage(t *testing.T) {
	t.Setenv("ENV", "")
	t.Setenv("E2E_MODE", "")

	rl, mr := setupRateLimiter(t, 1, time.Minute)
	router := rateLimitedRouter(rl)

	mr.Close()

	// Login availability wins over strict limiting when redis is down.
	assert.Equal(t, http.StatusOK, doLogin(router).Code)
	assert.Equal(t, http.StatusOK, doLogin(router).Code)
}

func TestRateLimiterSkippedInTestEnv(t *testing.T) {
	t.Setenv("ENV", "test")

	rl, _ := setupRateLimiter(t, 1, time.Minute)
	router := rateLimitedRouter(rl)

	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, doLogin(router).Code)
	}
}

func TestRateLimiterReset(t *testing.T) {
	t.Setenv("ENV", "")
	t.Setenv("E2E_MODE", "")

	rl, _ := setupRateLimiter(t, 1, time.Minute)
	router := rateLimitedRouter(rl)

	require.Equal(t, http.StatusOK, doLogin(router).Code)
	require.Equal(t, http.StatusTooManyRequests, doLogin(router).Code)

	require.NoError(t, rl.Reset(context.Background(), "203.0.113.7"))

	assert.Equal(t, http.StatusOK, doLogin(router).Code)
}
