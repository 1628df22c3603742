package crypto

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
)

// ErrInvalidAuthKey is returned when an auth key does not match the stored hash
var ErrInvalidAuthKey = errors.New("invalid auth key")

// HashAuthKey хеширует auth_key для хранения на сервере.
// auth_key уже получен через Argon2id, поэтому достаточно SHA-256
func HashAuthKey(authKey []byte) (string, error) {
	if len(authKey) == 0 {
		return "", fmt.Errorf("auth key cannot be empty")
	}

	hash := sha256.Sum256(authKey)
	return hex.EncodeToString(hash[:]), nil
}

// VerifyAuthKey сравнивает auth_key с сохраненным хешем за постоянное время
func VerifyAuthKey(authKey []byte, hashedAuthKey string) error {
	if hashedAuthKey == "" {
		return fmt.Errorf("hashed auth key cannot be empty")
	}

	computed, err := HashAuthKey(authKey)
	if err != nil {
		return err
	}

	if subtle.ConstantTimeCompare([]byte(computed), []byte(hashedAuthKey)) != 1 {
		return ErrInvalidAuthKey
	}
	return nil
}

// HashToken возвращает SHA-256 refresh токена; сервер хранит только хеш
func HashToken(token string) string {
	hash := sha256.Sum256([]byte(token))
	return hex.EncodeToString(hash[:])
}
