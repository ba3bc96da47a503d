package httputil

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIPRateLimiter_BurstThenReject(t *testing.T) {
	limiter := NewIPRateLimiter(0.001, 3)

	for i := 0; i < 3; i++ {
		assert.True(t, limiter.Allow("10.0.0.1"), "request %d within burst should pass", i+1)
	}
	assert.False(t, limiter.Allow("10.0.0.1"), "request beyond burst should be rejected")
}

func TestIPRateLimiter_IsolatesClients(t *testing.T) {
	limiter := NewIPRateLimiter(0.001, 1)

	assert.True(t, limiter.Allow("10.0.0.1"))
	assert.False(t, limiter.Allow("10.0.0.1"))
	assert.True(t, limiter.Allow("10.0.0.2"), "a different client has its own bucket")
}

func TestRateLimitMiddleware_Returns429(t *testing.T) {
	limiter := NewIPRateLimiter(0.001, 1)
	handler := RateLimitMiddleware(limiter)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
	req.RemoteAddr = "192.0.2.1:51234"

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "Too many attempts")
}
