// Package server собирает HTTP сервер резервных копий lumina.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/iudanet/lumina/internal/config"
	"github.com/iudanet/lumina/internal/server/handlers"
	"github.com/iudanet/lumina/internal/server/jwt"
	"github.com/iudanet/lumina/internal/server/middleware"
	"github.com/iudanet/lumina/internal/server/storage"
)

const (
	healthPath = "/api/v1/health"

	shutdownTimeout = 10 * time.Second

	// Лимит на вход и регистрацию: перебор паролей
	authRateLimit = 10
)

// Storage объединяет все хранилища сервера
type Storage interface {
	storage.UserStorage
	storage.TokenStorage
	storage.CollectionStorage
	handlers.Pinger
}

// Server HTTP сервер lumina
type Server struct {
	http     *http.Server
	janitor  *TokenJanitor
	logger   *slog.Logger
	limiters []*middleware.RateLimiter
}

// New собирает маршруты, middleware и планировщик очистки токенов
func New(cfg *config.Server, store Storage, logger *slog.Logger, version string) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	janitor, err := NewTokenJanitor(cfg.TokenCleanupCron, store, logger)
	if err != nil {
		return nil, err
	}

	tokens := jwt.NewManager(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)

	general := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateLimitWindow)
	authLimiter := middleware.NewRateLimiter(min(authRateLimit, cfg.RateLimit), cfg.RateLimitWindow)

	authHandler := handlers.NewAuthHandler(logger, store, store, tokens)
	collectionsHandler := handlers.NewCollectionsHandler(logger, store)
	healthHandler := handlers.NewHealthHandler(logger, store, version)

	requireAuth := middleware.AuthMiddleware(logger, tokens)

	mux := http.NewServeMux()
	mux.HandleFunc("GET "+healthPath, healthHandler.Health)
	mux.HandleFunc("POST /api/v1/auth/register", authHandler.Register)
	mux.HandleFunc("GET /api/v1/auth/salt/{username}", authHandler.GetSalt)
	mux.HandleFunc("POST /api/v1/auth/login", authHandler.Login)
	mux.HandleFunc("POST /api/v1/auth/refresh", authHandler.Refresh)
	mux.HandleFunc("POST /api/v1/auth/logout", authHandler.Logout)
	mux.Handle("GET /api/v1/collections/{kind}", requireAuth(http.HandlerFunc(collectionsHandler.Get)))
	mux.Handle("PUT /api/v1/collections/{kind}", requireAuth(http.HandlerFunc(collectionsHandler.Put)))

	// Порядок: recovery снаружи, чтобы ловить паники всех слоев
	var handler http.Handler = mux
	handler = middleware.RateLimitMiddleware(logger, general, map[string]*middleware.RateLimiter{
		"/api/v1/auth/login":    authLimiter,
		"/api/v1/auth/register": authLimiter,
	})(handler)
	handler = middleware.LoggingMiddleware(logger, healthPath)(handler)
	handler = middleware.RecoveryMiddleware(logger)(handler)

	return &Server{
		http: &http.Server{
			Addr:              cfg.Addr,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
			ReadTimeout:       time.Minute,
			WriteTimeout:      time.Minute,
			IdleTimeout:       2 * time.Minute,
		},
		janitor:  janitor,
		logger:   logger,
		limiters: []*middleware.RateLimiter{general, authLimiter},
	}, nil
}

// Handler возвращает корневой http.Handler (для тестов)
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

// Run обслуживает запросы до отмены ctx, затем корректно завершает работу
func (s *Server) Run(ctx context.Context) error {
	s.janitor.Sweep(ctx)
	s.janitor.Start()
	defer s.janitor.Stop()
	defer s.stopLimiters()

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", slog.String("addr", s.http.Addr))
		errCh <- s.http.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

// Close освобождает фоновые ресурсы сервера, который не запускался через Run
func (s *Server) Close() {
	s.stopLimiters()
}

func (s *Server) stopLimiters() {
	for _, l := range s.limiters {
		l.Stop()
	}
}
