package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"

	"golang.org/x/crypto/argon2"
)

// Параметры Argon2id
const (
	// Argon2Time - количество итераций (time cost)
	Argon2Time = 1
	// Argon2Memory - объем памяти в KB (64MB)
	Argon2Memory = 64 * 1024
	// Argon2Threads - количество параллельных потоков
	Argon2Threads = 4
	// KeySize - длина каждого производного ключа в байтах
	KeySize = 32
	// SaltSize - размер публичной соли пользователя
	SaltSize = 32
)

// Контексты деривации: один пароль дает два независимых ключа
const (
	authContext       = "lumina/auth"
	collectionContext = "lumina/collections"
)

var (
	ErrEmptyPassword = errors.New("master password cannot be empty")
	ErrEmptyUsername = errors.New("username cannot be empty")
	ErrInvalidSalt   = errors.New("invalid salt")
)

// Keys содержит ключи, производные от master password
type Keys struct {
	AuthKey       []byte // AuthKey доказывает серверу знание пароля, хранится там только как хеш
	EncryptionKey []byte // EncryptionKey шифрует коллекции перед отправкой и токены сессии, сервер его не видит
}

// Wipe затирает ключи в памяти
func (k *Keys) Wipe() {
	if k == nil {
		return
	}
	clear(k.AuthKey)
	clear(k.EncryptionKey)
}

// GenerateSalt генерирует случайную публичную соль
func GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}
	return salt, nil
}

// GenerateSaltBase64 генерирует соль в Base64 для передачи на сервер
func GenerateSaltBase64() (string, error) {
	salt, err := GenerateSalt()
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(salt), nil
}

// DeriveKeys derives the auth and encryption keys with Argon2id.
// The username is mixed in so equal passwords of different users give different keys.
func DeriveKeys(masterPassword, username string, salt []byte) (*Keys, error) {
	if masterPassword == "" {
		return nil, ErrEmptyPassword
	}
	if username == "" {
		return nil, ErrEmptyUsername
	}
	if len(salt) != SaltSize {
		return nil, fmt.Errorf("%w: must be %d bytes, got %d", ErrInvalidSalt, SaltSize, len(salt))
	}

	derive := func(context string) []byte {
		input := make([]byte, 0, len(masterPassword)+len(username)+len(context)+2)
		input = append(input, masterPassword...)
		input = append(input, 0)
		input = append(input, username...)
		input = append(input, 0)
		input = append(input, context...)
		defer clear(input)

		return argon2.IDKey(input, salt, Argon2Time, Argon2Memory, Argon2Threads, KeySize)
	}

	return &Keys{
		AuthKey:       derive(authContext),
		EncryptionKey: derive(collectionContext),
	}, nil
}

// DeriveKeysFromBase64Salt derives keys from a Base64 salt as returned by the server
func DeriveKeysFromBase64Salt(masterPassword, username, saltBase64 string) (*Keys, error) {
	salt, err := base64.StdEncoding.DecodeString(saltBase64)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSalt, err)
	}
	return DeriveKeys(masterPassword, username, salt)
}
