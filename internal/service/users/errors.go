package users

import (
	"errors"

	"github.com/m04kA/SMC-RentalService/pkg/validate"
)

var (
	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("user not found")

	// ErrMissingEmail не передан email
	ErrMissingEmail = errors.New("email is required")

	// ErrMissingName не передано имя
	ErrMissingName = errors.New("name is required")

	// ErrMissingUserType не передан userType
	ErrMissingUserType = errors.New("userType is required")

	// ErrInvalidEmail email не соответствует шаблону
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrInvalidUserType userType вне списка допустимых
	ErrInvalidUserType = errors.New("invalid userType, must be one of: guest, host, both")

	// ErrInvalidName имя в обновлении пустое
	ErrInvalidName = errors.New("name cannot be empty")

	// ErrDuplicateEmail email уже занят
	ErrDuplicateEmail = errors.New("email already exists")

	// ErrForbiddenField попытка изменить email или joinedAt
	ErrForbiddenField = errors.New("cannot update email or joinedAt fields")

	// ErrNoFieldsToUpdate в запросе на обновление нет полей
	ErrNoFieldsToUpdate = errors.New("no fields to update")

	// ErrValidationFailed поля не прошли проверку длины
	ErrValidationFailed = errors.New("validation failed")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

// ValidationError ошибка конкретного поля
type ValidationError struct {
	validate.FieldError
}

func (e *ValidationError) Error() string {
	return e.Message()
}

func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}
