package middleware

import (
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
)

// RateLimiter ограничивает число запросов с одного ключа (IP) за окно времени.
// Счетчик ключа сбрасывается целиком, когда окно истекло.
type RateLimiter struct {
	buckets map[string]*bucket
	now     func() time.Time
	stop    chan struct{}
	rate    int
	window  time.Duration
	mu      sync.Mutex
	once    sync.Once
}

type bucket struct {
	windowStart time.Time
	remaining   int
}

// NewRateLimiter создает limiter и запускает очистку неактивных ключей.
// Вызывающий обязан вызвать Stop.
func NewRateLimiter(rate int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		buckets: make(map[string]*bucket),
		now:     time.Now,
		stop:    make(chan struct{}),
		rate:    rate,
		window:  window,
	}

	go rl.cleanupLoop()

	return rl
}

func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(rl.window * 2)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.sweep()
		case <-rl.stop:
			return
		}
	}
}

// sweep удаляет ключи, не использовавшиеся дольше двух окон
func (rl *RateLimiter) sweep() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	for key, b := range rl.buckets {
		if now.Sub(b.windowStart) > rl.window*2 {
			delete(rl.buckets, key)
		}
	}
}

// Stop останавливает фоновую очистку. Повторный вызов безопасен.
func (rl *RateLimiter) Stop() {
	rl.once.Do(func() { close(rl.stop) })
}

// Allow проверяет, разрешен ли запрос для данного ключа
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	b, ok := rl.buckets[key]
	if !ok || now.Sub(b.windowStart) >= rl.window {
		b = &bucket{windowStart: now, remaining: rl.rate}
		rl.buckets[key] = b
	}

	if b.remaining <= 0 {
		return false
	}
	b.remaining--
	return true
}

// RateLimitMiddleware отвечает 429, когда limiter отказывает.
// Для путей из strict используется отдельный limiter (вход и регистрация).
func RateLimitMiddleware(logger *slog.Logger, limiter *RateLimiter, strict map[string]*RateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			l := limiter
			if s, ok := strict[r.URL.Path]; ok {
				l = s
			}

			key := getClientIP(r)
			if !l.Allow(key) {
				logger.WarnContext(r.Context(), "rate limit exceeded",
					"ip", key,
					"method", r.Method,
					"path", r.URL.Path,
				)
				w.Header().Set("Retry-After", strconv.Itoa(int(l.window.Seconds())))
				writeJSONError(w, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// getClientIP извлекает IP адрес клиента из запроса.
// Учитывает X-Forwarded-For и X-Real-IP от прокси.
func getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}

	// Порт у одного клиента меняется от соединения к соединению
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
