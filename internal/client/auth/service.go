package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/iudanet/lumina/internal/client/storage"
	"github.com/iudanet/lumina/internal/crypto"
	"github.com/iudanet/lumina/internal/validation"
	"github.com/iudanet/lumina/pkg/api"
)

// refreshSkew обновляем access token заранее, чтобы он не истек в полете
const refreshSkew = 30 * time.Second

// ErrNotLoggedIn no session is stored on this device
var ErrNotLoggedIn = errors.New("not logged in")

// Session is an unlocked sync server session.
// Keys must be wiped by the caller when the session is no longer needed.
type Session struct {
	Keys         *crypto.Keys
	ExpiresAt    time.Time
	Username     string
	UserID       string
	AccessToken  string
	RefreshToken string
}

// Status describes the stored session without unlocking it
type Status struct {
	ExpiresAt time.Time
	Username  string
	UserID    string
	LoggedIn  bool
}

// Service предоставляет функции авторизации на сервере резервного копирования
type Service struct {
	api    API
	store  *SessionStore
	logger *slog.Logger
	now    func() time.Time
}

// NewService создает новый сервис авторизации
func NewService(apiClient API, authStorage storage.AuthStorage, logger *slog.Logger) *Service {
	return &Service{
		api:    apiClient,
		store:  NewSessionStore(authStorage),
		logger: logger,
		now:    time.Now,
	}
}

// Register регистрирует нового пользователя.
// Master password не покидает устройство: сервер получает только хеш auth key и соль.
func (s *Service) Register(ctx context.Context, username, masterPassword string) (string, error) {
	if err := validation.ValidateUsername(username); err != nil {
		return "", fmt.Errorf("invalid username: %w", err)
	}
	if err := validation.ValidatePassword(masterPassword); err != nil {
		return "", fmt.Errorf("invalid password: %w", err)
	}

	salt, err := crypto.GenerateSaltBase64()
	if err != nil {
		return "", err
	}

	keys, err := crypto.DeriveKeysFromBase64Salt(masterPassword, username, salt)
	if err != nil {
		return "", fmt.Errorf("failed to derive keys: %w", err)
	}
	defer keys.Wipe()

	authKeyHash, err := crypto.HashAuthKey(keys.AuthKey)
	if err != nil {
		return "", fmt.Errorf("failed to hash auth key: %w", err)
	}

	resp, err := s.api.Register(ctx, api.RegisterRequest{
		Username:    username,
		AuthKeyHash: authKeyHash,
		PublicSalt:  salt,
	})
	if err != nil {
		return "", fmt.Errorf("registration failed: %w", err)
	}

	s.logger.Info("User registered", "username", username, "user_id", resp.UserID)
	return resp.UserID, nil
}

// Login аутентифицирует пользователя и сохраняет сессию с зашифрованными токенами
func (s *Service) Login(ctx context.Context, username, masterPassword string) (*Session, error) {
	if err := validation.ValidateUsername(username); err != nil {
		return nil, fmt.Errorf("invalid username: %w", err)
	}
	if masterPassword == "" {
		return nil, fmt.Errorf("invalid password: %w", validation.ErrEmptyPassword)
	}

	saltResp, err := s.api.GetSalt(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to get salt: %w", err)
	}

	keys, err := crypto.DeriveKeysFromBase64Salt(masterPassword, username, saltResp.PublicSalt)
	if err != nil {
		return nil, fmt.Errorf("failed to derive keys: %w", err)
	}

	authKeyHash, err := crypto.HashAuthKey(keys.AuthKey)
	if err != nil {
		keys.Wipe()
		return nil, fmt.Errorf("failed to hash auth key: %w", err)
	}

	tokens, err := s.api.Login(ctx, api.LoginRequest{Username: username, AuthKeyHash: authKeyHash})
	if err != nil {
		keys.Wipe()
		return nil, fmt.Errorf("login failed: %w", err)
	}

	data := &storage.AuthData{
		Username:     username,
		UserID:       tokens.UserID,
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		PublicSalt:   saltResp.PublicSalt,
		ExpiresAt:    s.now().Add(time.Duration(tokens.ExpiresIn) * time.Second).Unix(),
	}
	if err := s.store.Save(ctx, data, keys.EncryptionKey); err != nil {
		keys.Wipe()
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	s.logger.Info("Logged in", "username", username)
	return newSession(data, keys), nil
}

// Unlock открывает сохраненную сессию master password'ом без обращения к серверу
func (s *Service) Unlock(ctx context.Context, masterPassword string) (*Session, error) {
	info, err := s.store.Info(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return nil, ErrNotLoggedIn
		}
		return nil, err
	}

	keys, err := crypto.DeriveKeysFromBase64Salt(masterPassword, info.Username, info.PublicSalt)
	if err != nil {
		return nil, fmt.Errorf("failed to derive keys: %w", err)
	}

	data, err := s.store.Load(ctx, keys.EncryptionKey)
	if err != nil {
		keys.Wipe()
		return nil, err
	}

	return newSession(data, keys), nil
}

// EnsureFresh обновляет пару токенов, если access token истек или вот-вот истечет.
// Новая пара сохраняется, старый refresh token сервер уже отозвал.
func (s *Service) EnsureFresh(ctx context.Context, session *Session) error {
	if s.now().Add(refreshSkew).Before(session.ExpiresAt) {
		return nil
	}

	tokens, err := s.api.Refresh(ctx, session.RefreshToken)
	if err != nil {
		return fmt.Errorf("failed to refresh session: %w", err)
	}

	session.AccessToken = tokens.AccessToken
	session.RefreshToken = tokens.RefreshToken
	session.ExpiresAt = s.now().Add(time.Duration(tokens.ExpiresIn) * time.Second)

	data, err := s.store.Info(ctx)
	if err != nil {
		return fmt.Errorf("failed to read session: %w", err)
	}
	data.AccessToken = session.AccessToken
	data.RefreshToken = session.RefreshToken
	data.ExpiresAt = session.ExpiresAt.Unix()

	if err := s.store.Save(ctx, data, session.Keys.EncryptionKey); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	s.logger.Debug("Session refreshed", "username", session.Username)
	return nil
}

// Logout отзывает refresh token на сервере и удаляет сессию локально.
// Ошибка сервера не мешает локальному выходу.
func (s *Service) Logout(ctx context.Context, masterPassword string) error {
	session, err := s.Unlock(ctx, masterPassword)
	if err != nil {
		return err
	}
	defer session.Keys.Wipe()

	if err := s.api.Logout(ctx, session.RefreshToken); err != nil {
		s.logger.Warn("Failed to revoke session on server", "error", err)
	}

	if err := s.store.Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	s.logger.Info("Logged out", "username", session.Username)
	return nil
}

// Status возвращает состояние сохраненной сессии
func (s *Service) Status(ctx context.Context) (*Status, error) {
	info, err := s.store.Info(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return &Status{}, nil
		}
		return nil, err
	}

	return &Status{
		LoggedIn:  true,
		Username:  info.Username,
		UserID:    info.UserID,
		ExpiresAt: time.Unix(info.ExpiresAt, 0),
	}, nil
}

func newSession(data *storage.AuthData, keys *crypto.Keys) *Session {
	return &Session{
		Keys:         keys,
		Username:     data.Username,
		UserID:       data.UserID,
		AccessToken:  data.AccessToken,
		RefreshToken: data.RefreshToken,
		ExpiresAt:    time.Unix(data.ExpiresAt, 0),
	}
}
