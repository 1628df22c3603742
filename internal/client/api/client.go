// Package api is the HTTP client of the lumina backup server.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/iudanet/lumina/internal/models"
	"github.com/iudanet/lumina/pkg/api"
)

// DefaultTimeout таймаут одного HTTP запроса
const DefaultTimeout = 30 * time.Second

var (
	// ErrUnauthorized сервер отклонил токен или учетные данные
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNotFound запрошенный ресурс отсутствует на сервере
	ErrNotFound = errors.New("not found")
	// ErrConflict ресурс уже существует
	ErrConflict = errors.New("conflict")
)

// StatusError ответ сервера с кодом вне 2xx
type StatusError struct {
	Message    string
	StatusCode int
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
}

// Is сопоставляет коды ответа с sentinel-ошибками пакета
func (e *StatusError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case ErrConflict:
		return e.StatusCode == http.StatusConflict
	}
	return false
}

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient создает новый API клиент
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
}

// Register регистрирует нового пользователя
func (c *Client) Register(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error) {
	var resp api.RegisterResponse
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/register", "", req, &resp); err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	return &resp, nil
}

// GetSalt получает public_salt пользователя
func (c *Client) GetSalt(ctx context.Context, username string) (*api.SaltResponse, error) {
	var resp api.SaltResponse
	if err := c.do(ctx, http.MethodGet, "/api/v1/auth/salt/"+url.PathEscape(username), "", nil, &resp); err != nil {
		return nil, fmt.Errorf("get salt request failed: %w", err)
	}
	return &resp, nil
}

// Login выполняет аутентификацию пользователя
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/login", "", req, &resp); err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// Refresh обменивает refresh token на новую пару токенов
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	err := c.do(ctx, http.MethodPost, "/api/v1/auth/refresh", "", api.RefreshRequest{RefreshToken: refreshToken}, &resp)
	if err != nil {
		return nil, fmt.Errorf("refresh request failed: %w", err)
	}
	return &resp, nil
}

// Logout отзывает refresh token на сервере
func (c *Client) Logout(ctx context.Context, refreshToken string) error {
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/logout", "", api.LogoutRequest{RefreshToken: refreshToken}, nil); err != nil {
		return fmt.Errorf("logout request failed: %w", err)
	}
	return nil
}

// GetCollection загружает резервную копию коллекции
func (c *Client) GetCollection(ctx context.Context, accessToken string, kind models.Kind) (*api.CollectionResponse, error) {
	var resp api.CollectionResponse
	if err := c.do(ctx, http.MethodGet, "/api/v1/collections/"+string(kind), accessToken, nil, &resp); err != nil {
		return nil, fmt.Errorf("get %s failed: %w", kind, err)
	}
	return &resp, nil
}

// PutCollection заменяет резервную копию коллекции
func (c *Client) PutCollection(
	ctx context.Context,
	accessToken string,
	kind models.Kind,
	req api.PutCollectionRequest,
) (*api.PutCollectionResponse, error) {
	var resp api.PutCollectionResponse
	if err := c.do(ctx, http.MethodPut, "/api/v1/collections/"+string(kind), accessToken, req, &resp); err != nil {
		return nil, fmt.Errorf("put %s failed: %w", kind, err)
	}
	return &resp, nil
}

// Health проверяет доступность сервера
func (c *Client) Health(ctx context.Context) (*api.HealthResponse, error) {
	var resp api.HealthResponse
	if err := c.do(ctx, http.MethodGet, "/api/v1/health", "", nil, &resp); err != nil {
		return nil, fmt.Errorf("health check failed: %w", err)
	}
	return &resp, nil
}

// do выполняет HTTP запрос
func (c *Client) do(ctx context.Context, method, path, accessToken string, body, result any) error {
	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		statusErr := &StatusError{StatusCode: resp.StatusCode}
		var errResp api.ErrorResponse
		if json.Unmarshal(respBody, &errResp) == nil {
			statusErr.Message = errResp.Message
		}
		return statusErr
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
