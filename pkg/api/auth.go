// Package api contains the JSON types exchanged between the lumina client and server.
package api

// RegisterRequest - запрос на регистрацию пользователя
type RegisterRequest struct {
	Username    string `json:"username" validate:"required"`
	AuthKeyHash string `json:"auth_key_hash" validate:"required,hexadecimal,len=64"` // SHA-256 от auth_key
	PublicSalt  string `json:"public_salt" validate:"required,base64"`               // соль Argon2id
}

// RegisterResponse - ответ на успешную регистрацию
type RegisterResponse struct {
	UserID  string `json:"user_id"`
	Message string `json:"message"`
}

// SaltResponse содержит публичную соль пользователя для деривации ключей
type SaltResponse struct {
	PublicSalt string `json:"public_salt"`
}

// LoginRequest - запрос на аутентификацию
type LoginRequest struct {
	Username    string `json:"username" validate:"required"`
	AuthKeyHash string `json:"auth_key_hash" validate:"required,hexadecimal,len=64"`
}

// RefreshRequest обменивает refresh token на новую пару токенов
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// LogoutRequest отзывает refresh token
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// TokenResponse - пара токенов
type TokenResponse struct {
	UserID       string `json:"user_id"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"` // время жизни access token в секундах
}

// ErrorResponse - тело любого ответа с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// HealthResponse - ответ health check
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}
