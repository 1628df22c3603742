package validation

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/iudanet/lumina/internal/models"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// json.Marshal заменяет невалидные байты на U+FFFD, такая строка не переживет сохранение
	if err := v.RegisterValidation("utf8", func(fl validator.FieldLevel) bool {
		return utf8.ValidString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// ValidateEntity проверяет сущность по тегам validate
func ValidateEntity[T models.Entity](entity T) error {
	if err := validate.Struct(entity); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// ValidateRequest проверяет DTO запроса API по тегам validate
func ValidateRequest(req any) error {
	if err := validate.Struct(req); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// ValidateCollection проверяет каждую сущность коллекции.
// Уникальность ID не проверяется: идентификаторы генерирует вызывающая сторона.
func ValidateCollection[T models.Entity](items []T) error {
	for i, item := range items {
		if err := ValidateEntity(item); err != nil {
			return fmt.Errorf("%s[%d] (id=%q): %w", item.Kind(), i, item.Key(), err)
		}
	}
	return nil
}

// formatValidationError собирает ошибки полей в одно читаемое сообщение
func formatValidationError(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, formatFieldError(e))
	}
	return errors.New(strings.Join(messages, "; "))
}

func formatFieldError(e validator.FieldError) string {
	field := e.Field()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, e.Param())
	case "datetime":
		return fmt.Sprintf("%s must match layout %s", field, e.Param())
	case "url|datauri":
		return fmt.Sprintf("%s must be a URL or data URI", field)
	case "base64":
		return fmt.Sprintf("%s must be base64 encoded", field)
	case "hexadecimal":
		return fmt.Sprintf("%s must be hexadecimal", field)
	case "utf8":
		return fmt.Sprintf("%s must be valid UTF-8", field)
	case "len":
		return fmt.Sprintf("%s must be %s characters long", field, e.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
