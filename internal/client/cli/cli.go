// Package cli implements the lumina command line client.
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/iudanet/lumina/internal/client/api"
	"github.com/iudanet/lumina/internal/client/assistant"
	"github.com/iudanet/lumina/internal/client/auth"
	"github.com/iudanet/lumina/internal/client/iocli"
	"github.com/iudanet/lumina/internal/client/planner"
	"github.com/iudanet/lumina/internal/client/state"
	"github.com/iudanet/lumina/internal/client/storage/boltdb"
	"github.com/iudanet/lumina/internal/client/sync"
	"github.com/iudanet/lumina/internal/config"
	"github.com/iudanet/lumina/internal/logger"
)

//go:generate moq -out suggester_mock_test.go . Suggester

// Suggester gives planner tips for a day. The second result is false when nothing was produced.
type Suggester interface {
	PlannerSuggestions(ctx context.Context, dayContext string) (*assistant.Suggestions, bool)
}

// VersionInfo is printed by the version command
type VersionInfo struct {
	Version   string
	BuildDate string
	GitCommit string
}

// Option configures Cli
type Option func(*Cli)

// WithLogger sets the logger instead of building one from the config
func WithLogger(l *slog.Logger) Option {
	return func(c *Cli) {
		c.logger = l
	}
}

// WithImageGenerator replaces the Gemini image generator
func WithImageGenerator(g planner.ImageGenerator) Option {
	return func(c *Cli) {
		c.generator = g
	}
}

// WithSuggester replaces the Gemini planner assistant
func WithSuggester(s Suggester) Option {
	return func(c *Cli) {
		c.suggester = s
	}
}

// WithClock sets the clock of the collection holder
func WithClock(now func() time.Time) Option {
	return func(c *Cli) {
		c.now = now
	}
}

// WithVersion sets the build information
func WithVersion(v VersionInfo) Option {
	return func(c *Cli) {
		c.version = v
	}
}

// Cli связывает конфигурацию, локальное хранилище и сервисы с командами
type Cli struct {
	io        iocli.IO
	cfg       *config.Client
	logger    *slog.Logger
	now       func() time.Time
	generator planner.ImageGenerator
	suggester Suggester

	storage     *boltdb.Storage
	holder      *state.Holder
	apiClient   *api.Client
	authService *auth.Service
	syncService *sync.Service

	passwordFile string
	version      VersionInfo
}

// New creates the client. Storage is opened by the command that needs it.
func New(io iocli.IO, cfg *config.Client, opts ...Option) *Cli {
	c := &Cli{
		io:      io,
		cfg:     cfg,
		now:     time.Now,
		version: VersionInfo{Version: "dev", BuildDate: "unknown", GitCommit: "unknown"},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Execute runs the command line and releases resources afterwards
func (c *Cli) Execute(ctx context.Context, args []string) error {
	defer c.Close()

	root := c.rootCommand()
	root.SetArgs(args)
	root.SetOut(c.io)
	root.SetErr(c.io)
	return root.ExecuteContext(ctx)
}

// Close closes the local database
func (c *Cli) Close() {
	if c.storage == nil {
		return
	}
	if err := c.storage.Close(); err != nil {
		c.logger.Error("Failed to close database", "error", err)
	}
	c.storage = nil
}

// setup применяет конфигурацию после разбора флагов
func (c *Cli) setup() error {
	if c.logger == nil {
		l, err := logger.New(os.Stderr, c.cfg.LogLevel, "text")
		if err != nil {
			return err
		}
		c.logger = l
	}

	c.apiClient = api.NewClient(c.cfg.ServerURL)
	return nil
}

// openStorage открывает bbolt и загружает коллекции
func (c *Cli) openStorage(ctx context.Context) error {
	if c.storage != nil {
		return nil
	}

	store, err := boltdb.New(ctx, c.cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	c.storage = store

	c.holder = state.NewHolder(store, state.WithLogger(c.logger), state.WithClock(c.now))
	if err := c.holder.Activate(ctx); err != nil {
		return err
	}

	c.authService = auth.NewService(c.apiClient, store, c.logger)
	c.syncService = sync.NewService(c.apiClient, store, store, c.logger)
	return nil
}

func (c *Cli) imageGenerator(ctx context.Context) (planner.ImageGenerator, error) {
	if c.generator != nil {
		return c.generator, nil
	}

	client, err := c.assistant(ctx)
	if err != nil {
		return nil, err
	}
	c.generator = client
	return client, nil
}

func (c *Cli) plannerAssistant(ctx context.Context) (Suggester, error) {
	if c.suggester != nil {
		return c.suggester, nil
	}

	client, err := c.assistant(ctx)
	if err != nil {
		return nil, err
	}
	c.suggester = client
	return client, nil
}

func (c *Cli) assistant(ctx context.Context) (*assistant.Client, error) {
	client, err := assistant.New(ctx, assistant.Config{
		APIKey:       c.cfg.GeminiAPIKey,
		ImageModel:   c.cfg.ImageModel,
		PlannerModel: c.cfg.PlannerModel,
		Timeout:      c.cfg.GenerateTimeout,
	}, c.logger)
	if errors.Is(err, assistant.ErrNoAPIKey) {
		return nil, fmt.Errorf("%w: set GEMINI_API_KEY", err)
	}
	return client, err
}

// masterPassword читает master password в порядке приоритета:
// 1. переменная окружения LUMINA_MASTER_PASSWORD
// 2. файл из --master-password-file
// 3. интерактивный ввод
func (c *Cli) masterPassword() (string, error) {
	if c.cfg.MasterPassword != "" {
		return c.cfg.MasterPassword, nil
	}

	if c.passwordFile != "" {
		content, err := os.ReadFile(c.passwordFile)
		if err != nil {
			return "", fmt.Errorf("failed to read password file: %w", err)
		}
		password := strings.TrimSpace(string(content))
		if password == "" {
			return "", fmt.Errorf("password file is empty")
		}
		return password, nil
	}

	password, err := c.io.ReadPassword("Master password: ")
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	if password == "" {
		return "", fmt.Errorf("password cannot be empty")
	}
	return password, nil
}

// session открывает сохраненную сессию и обновляет токены при необходимости
func (c *Cli) session(ctx context.Context) (*auth.Session, error) {
	password, err := c.masterPassword()
	if err != nil {
		return nil, err
	}

	session, err := c.authService.Unlock(ctx, password)
	if err != nil {
		if errors.Is(err, auth.ErrNotLoggedIn) {
			return nil, fmt.Errorf("%w. Please run 'lumina login' first", err)
		}
		return nil, err
	}

	if err := c.authService.EnsureFresh(ctx, session); err != nil {
		session.Keys.Wipe()
		if errors.Is(err, api.ErrUnauthorized) {
			return nil, fmt.Errorf("session has expired. Please run 'lumina login' again")
		}
		return nil, err
	}
	return session, nil
}
