package server

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/iudanet/lumina/internal/server/storage"
)

// TokenJanitor периодически удаляет просроченные refresh tokens
type TokenJanitor struct {
	cron   *cron.Cron
	tokens storage.TokenStorage
	logger *slog.Logger
	now    func() time.Time
}

// NewTokenJanitor создает планировщик очистки. schedule принимает cron-выражение
// или дескриптор вида "@every 1h".
func NewTokenJanitor(schedule string, tokens storage.TokenStorage, logger *slog.Logger) (*TokenJanitor, error) {
	j := &TokenJanitor{
		cron:   cron.New(cron.WithLocation(time.UTC)),
		tokens: tokens,
		logger: logger,
		now:    time.Now,
	}

	if _, err := j.cron.AddFunc(schedule, func() { j.Sweep(context.Background()) }); err != nil {
		return nil, fmt.Errorf("invalid token cleanup schedule %q: %w", schedule, err)
	}

	return j, nil
}

// Sweep выполняет одну очистку
func (j *TokenJanitor) Sweep(ctx context.Context) int {
	n, err := j.tokens.DeleteExpiredTokens(ctx, j.now())
	if err != nil {
		j.logger.ErrorContext(ctx, "failed to delete expired tokens", slog.Any("error", err))
		return 0
	}
	if n > 0 {
		j.logger.InfoContext(ctx, "expired refresh tokens deleted", slog.Int("count", n))
	}
	return n
}

// Start запускает планировщик в фоне
func (j *TokenJanitor) Start() {
	j.cron.Start()
}

// Stop останавливает планировщик и ждет завершения текущей очистки
func (j *TokenJanitor) Stop() {
	<-j.cron.Stop().Done()
}
