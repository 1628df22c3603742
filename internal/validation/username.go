package validation

import (
	"errors"
	"fmt"
	"regexp"
)

// UsernamePattern допустимый формат username:
// латинские буквы, цифры и нижнее подчеркивание, 3-32 символа
var UsernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]{3,32}$`)

const (
	// MinUsernameLen минимальная длина username
	MinUsernameLen = 3
	// MaxUsernameLen максимальная длина username
	MaxUsernameLen = 32
	// MinPasswordLen минимальная длина master password
	MinPasswordLen = 12
)

var (
	// ErrEmptyUsername username не задан
	ErrEmptyUsername = errors.New("username cannot be empty")
	// ErrEmptyPassword master password не задан
	ErrEmptyPassword = errors.New("password cannot be empty")
)

// ValidateUsername проверяет, что username подходит для регистрации на сервере синхронизации
func ValidateUsername(username string) error {
	switch {
	case username == "":
		return ErrEmptyUsername
	case len(username) < MinUsernameLen:
		return fmt.Errorf("username must be at least %d characters long", MinUsernameLen)
	case len(username) > MaxUsernameLen:
		return fmt.Errorf("username must not exceed %d characters", MaxUsernameLen)
	case !UsernamePattern.MatchString(username):
		return fmt.Errorf("username can only contain letters (a-z, A-Z), numbers (0-9), and underscores (_)")
	}
	return nil
}

// ValidatePassword проверяет минимальные требования к master password
func ValidatePassword(password string) error {
	if password == "" {
		return ErrEmptyPassword
	}
	if len(password) < MinPasswordLen {
		return fmt.Errorf("password must be at least %d characters long", MinPasswordLen)
	}
	return nil
}
