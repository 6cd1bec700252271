package hostprofiles

import (
	"errors"

	"github.com/m04kA/SMC-RentalService/pkg/validate"
)

var (
	// ErrProfileNotFound возвращается, когда профиль не найден
	ErrProfileNotFound = errors.New("host profile not found")

	// ErrMissingUserID не передан userId
	ErrMissingUserID = errors.New("userId is required")

	// ErrMissingLanguages не переданы languages
	ErrMissingLanguages = errors.New("languages is required")

	// ErrMissingResponseTime не передан responseTime
	ErrMissingResponseTime = errors.New("responseTime is required")

	// ErrMissingResponseRate не передан responseRate
	ErrMissingResponseRate = errors.New("responseRate is required")

	// ErrInvalidUserID userId не является положительным целым
	ErrInvalidUserID = errors.New("userId must be a valid integer")

	// ErrUserNotFound пользователь профиля не существует
	ErrUserNotFound = errors.New("user does not exist")

	// ErrDuplicateProfile у пользователя уже есть профиль
	ErrDuplicateProfile = errors.New("host profile already exists for this user")

	// ErrInvalidLanguages languages не является массивом строк
	ErrInvalidLanguages = errors.New("languages must be an array")

	// ErrInvalidResponseTime responseTime вне списка допустимых
	ErrInvalidResponseTime = errors.New("invalid responseTime")

	// ErrInvalidResponseRate responseRate не целое или вне 0..100
	ErrInvalidResponseRate = errors.New("responseRate must be between 0 and 100")

	// ErrInvalidAverageRating averageRating вне 0..5
	ErrInvalidAverageRating = errors.New("averageRating must be between 0 and 5")

	// ErrValidationFailed прочие поля не прошли проверку
	ErrValidationFailed = errors.New("validation failed")

	// ErrNoFieldsToUpdate в запросе на обновление нет полей
	ErrNoFieldsToUpdate = errors.New("no fields to update")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

// ValidationError ошибка конкретного поля.
// Для averageRating Unwrap возвращает ErrInvalidAverageRating
type ValidationError struct {
	validate.FieldError
}

func (e *ValidationError) Error() string {
	if e.Field == "averageRating" {
		return ErrInvalidAverageRating.Error()
	}
	return e.Message()
}

func (e *ValidationError) Unwrap() error {
	if e.Field == "averageRating" {
		return ErrInvalidAverageRating
	}
	return ErrValidationFailed
}
