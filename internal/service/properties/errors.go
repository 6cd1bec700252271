package properties

import (
	"errors"

	"github.com/m04kA/SMC-RentalService/pkg/validate"
)

var (
	// ErrPropertyNotFound возвращается, когда объект не найден
	ErrPropertyNotFound = errors.New("property not found")

	// ErrMissingRequiredFields не переданы обязательные текстовые поля
	ErrMissingRequiredFields = errors.New("missing required fields")

	// ErrInvalidPrice цена не является положительным числом
	ErrInvalidPrice = errors.New("price must be a positive number")

	// ErrInvalidRating рейтинг вне диапазона 0..5
	ErrInvalidRating = errors.New("rating must be between 0 and 5")

	// ErrNoFieldsToUpdate в запросе на обновление нет полей
	ErrNoFieldsToUpdate = errors.New("no fields to update")

	// ErrPropertyHasBookings на объект ссылаются бронирования
	ErrPropertyHasBookings = errors.New("property has bookings")

	// ErrValidationFailed поле не прошло проверку
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
