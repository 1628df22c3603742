package models

import "time"

// User представляет пользователя сервера синхронизации
type User struct {
	CreatedAt   time.Time  `json:"created_at"`           // время создания
	LastLogin   *time.Time `json:"last_login,omitempty"` // время последнего входа
	ID          string     `json:"id"`                   // UUID пользователя
	Username    string     `json:"username"`             // уникальный username
	AuthKeyHash string     `json:"auth_key_hash"`        // SHA256 хеш auth_key (hex)
	PublicSalt  string     `json:"public_salt"`          // base64 encoded salt (32 bytes)
}

// RefreshToken представляет refresh token пользователя.
// В базе хранится только SHA256 хеш значения токена.
type RefreshToken struct {
	ExpiresAt time.Time `json:"expires_at"` // время истечения
	CreatedAt time.Time `json:"created_at"` // время создания
	TokenHash string    `json:"token_hash"` // SHA256 хеш токена (hex)
	UserID    string    `json:"user_id"`    // ID пользователя
}

// IsExpired сообщает, истек ли токен на момент now.
func (t *RefreshToken) IsExpired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}
