package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
)

// NonceSize - размер nonce для AES-GCM
const NonceSize = 12

// ErrDecrypt is returned when a ciphertext is corrupted, truncated or was
// sealed with another key or associated data
var ErrDecrypt = errors.New("failed to decrypt: authentication failed or corrupted data")

func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("encryption key must be %d bytes, got %d", KeySize, len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}
	return aead, nil
}

// Seal шифрует данные AES-256-GCM.
// aad привязывает шифротекст к контексту (например, ключу коллекции):
// открыть его с другим aad не получится.
// Формат результата: nonce (12 bytes) + ciphertext + auth_tag (16 bytes)
func Seal(plaintext, key, aad []byte) ([]byte, error) {
	if len(plaintext) == 0 {
		return nil, fmt.Errorf("plaintext cannot be empty")
	}

	aead, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, NonceSize, NonceSize+len(plaintext)+aead.Overhead())
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	// Seal дописывает ciphertext и tag сразу после nonce
	return aead.Seal(nonce, nonce, plaintext, aad), nil
}

// Open расшифровывает данные, зашифрованные Seal с тем же aad
func Open(sealed, key, aad []byte) ([]byte, error) {
	aead, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	if len(sealed) < NonceSize+aead.Overhead() {
		return nil, fmt.Errorf("%w: data too short", ErrDecrypt)
	}

	plaintext, err := aead.Open(nil, sealed[:NonceSize], sealed[NonceSize:], aad)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecrypt, err)
	}
	return plaintext, nil
}

// SealToBase64 шифрует данные и кодирует результат в Base64 для JSON
func SealToBase64(plaintext, key, aad []byte) (string, error) {
	sealed, err := Seal(plaintext, key, aad)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// OpenFromBase64 декодирует Base64 и расшифровывает данные
func OpenFromBase64(sealedBase64 string, key, aad []byte) ([]byte, error) {
	sealed, err := base64.StdEncoding.DecodeString(sealedBase64)
	if err != nil {
		return nil, fmt.Errorf("failed to decode base64: %w", err)
	}
	return Open(sealed, key, aad)
}
