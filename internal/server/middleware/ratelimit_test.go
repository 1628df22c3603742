package middleware

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestLimiter(t *testing.T, rate int, window time.Duration) (*RateLimiter, *time.Time) {
	t.Helper()
	rl := NewRateLimiter(rate, window)
	t.Cleanup(rl.Stop)

	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }
	return rl, &now
}

func TestRateLimiter_Allow(t *testing.T) {
	rl, now := newTestLimiter(t, 3, time.Minute)

	for i := range 3 {
		assert.True(t, rl.Allow("10.0.0.1"), "request %d", i+1)
	}
	assert.False(t, rl.Allow("10.0.0.1"))

	// Другой ключ не затронут
	assert.True(t, rl.Allow("10.0.0.2"))

	// Новое окно
	*now = now.Add(time.Minute)
	assert.True(t, rl.Allow("10.0.0.1"))
}

func TestRateLimiter_Sweep(t *testing.T) {
	rl, now := newTestLimiter(t, 1, time.Minute)

	rl.Allow("old")
	*now = now.Add(90 * time.Second)
	rl.Allow("fresh")
	*now = now.Add(60 * time.Second)

	rl.sweep()

	rl.mu.Lock()
	defer rl.mu.Unlock()
	assert.NotContains(t, rl.buckets, "old")
	assert.Contains(t, rl.buckets, "fresh")
}

func TestRateLimiter_StopTwice(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)
	assert.NotPanics(t, func() {
		rl.Stop()
		rl.Stop()
	})
}

func TestRateLimitMiddleware(t *testing.T) {
	general, _ := newTestLimiter(t, 5, time.Minute)
	login, _ := newTestLimiter(t, 1, time.Minute)

	h := RateLimitMiddleware(setupTestLogger(), general, map[string]*RateLimiter{
		"/api/v1/auth/login": login,
	})(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	do := func(path string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, path, nil)
		req.RemoteAddr = "192.0.2.1:5555"
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusOK, do("/api/v1/auth/login").Code)

	w := do("/api/v1/auth/login")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, strconv.Itoa(60), w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), "rate limit exceeded")

	// Общий лимит считается отдельно
	assert.Equal(t, http.StatusOK, do("/api/v1/collections/events").Code)
}

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		headers    map[string]string
		name       string
		remoteAddr string
		want       string
	}{
		{name: "remote addr strips port", remoteAddr: "192.0.2.1:1234", want: "192.0.2.1"},
		{name: "ipv6 remote addr", remoteAddr: "[2001:db8::1]:443", want: "2001:db8::1"},
		{name: "remote addr without port", remoteAddr: "192.0.2.9", want: "192.0.2.9"},
		{
			name:       "x-forwarded-for first hop",
			remoteAddr: "10.0.0.1:1",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.5, 10.0.0.1"},
			want:       "203.0.113.5",
		},
		{
			name:       "x-real-ip",
			remoteAddr: "10.0.0.1:1",
			headers:    map[string]string{"X-Real-IP": "203.0.113.7"},
			want:       "203.0.113.7",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, getClientIP(req))
		})
	}
}
