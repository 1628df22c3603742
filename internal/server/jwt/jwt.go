// Package jwt выпускает и проверяет токены доступа сервера резервных копий.
package jwt

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
)

// Issuer записывается в claim iss и проверяется при валидации
const Issuer = "lumina"

// RefreshTokenSize размер случайного refresh token в байтах
const RefreshTokenSize = 32

// ErrInvalidToken is returned for any token that fails validation
var ErrInvalidToken = errors.New("invalid token")

// Claims represents JWT claims
type Claims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	gojwt.RegisteredClaims
}

// Manager provides JWT token generation and validation
type Manager struct {
	now             func() time.Time
	secret          []byte
	accessTokenTTL  time.Duration
	refreshTokenTTL time.Duration
}

// NewManager creates a new JWT manager.
// secret should be a cryptographically secure random string
func NewManager(secret string, accessTokenTTL, refreshTokenTTL time.Duration) *Manager {
	return &Manager{
		secret:          []byte(secret),
		accessTokenTTL:  accessTokenTTL,
		refreshTokenTTL: refreshTokenTTL,
		now:             time.Now,
	}
}

// AccessTokenTTL returns the access token lifetime
func (m *Manager) AccessTokenTTL() time.Duration {
	return m.accessTokenTTL
}

// GenerateAccessToken creates a new HS256 access token.
// Returns the token and its lifetime in seconds.
func (m *Manager) GenerateAccessToken(userID, username string) (string, int64, error) {
	now := m.now()

	claims := Claims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: gojwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    Issuer,
			IssuedAt:  gojwt.NewNumericDate(now),
			NotBefore: gojwt.NewNumericDate(now),
			ExpiresAt: gojwt.NewNumericDate(now.Add(m.accessTokenTTL)),
		},
	}

	token := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, int64(m.accessTokenTTL.Seconds()), nil
}

// ValidateAccessToken validates and parses JWT access token
func (m *Manager) ValidateAccessToken(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := gojwt.ParseWithClaims(tokenString, claims, func(*gojwt.Token) (any, error) {
		return m.secret, nil
	},
		gojwt.WithValidMethods([]string{gojwt.SigningMethodHS256.Alg()}),
		gojwt.WithIssuer(Issuer),
		gojwt.WithExpirationRequired(),
		gojwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if !token.Valid || claims.UserID == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// GenerateRefreshToken creates a new random refresh token and its expiry
func (m *Manager) GenerateRefreshToken() (string, time.Time, error) {
	tokenBytes := make([]byte, RefreshTokenSize)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", time.Time{}, fmt.Errorf("failed to generate random token: %w", err)
	}

	token := base64.RawURLEncoding.EncodeToString(tokenBytes)
	return token, m.now().Add(m.refreshTokenTTL), nil
}
