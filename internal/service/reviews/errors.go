package reviews

import (
	"errors"

	"github.com/m04kA/SMC-RentalService/pkg/validate"
)

var (
	// ErrReviewNotFound возвращается, когда отзыв не найден
	ErrReviewNotFound = errors.New("review not found")

	// ErrMissingPropertyID не передан propertyId
	ErrMissingPropertyID = errors.New("propertyId is required")

	// ErrMissingBookingID не передан bookingId
	ErrMissingBookingID = errors.New("bookingId is required")

	// ErrInvalidPropertyID propertyId не является положительным целым
	ErrInvalidPropertyID = errors.New("propertyId must be a positive integer")

	// ErrInvalidBookingID bookingId не является положительным целым
	ErrInvalidBookingID = errors.New("bookingId must be a positive integer")

	// ErrMissingScore не передана одна из оценок
	ErrMissingScore = errors.New("rating is required")

	// ErrInvalidScore оценка вне диапазона 1..5
	ErrInvalidScore = errors.New("rating out of range")

	// ErrValidationFailed прочие поля не прошли проверку
	ErrValidationFailed = errors.New("validation failed")

	// ErrPropertyNotFound объект, к которому относится отзыв, не найден
	ErrPropertyNotFound = errors.New("property not found")

	// ErrBookingNotFound бронирование, к которому относится отзыв, не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrNoFieldsToUpdate в запросе на обновление нет полей
	ErrNoFieldsToUpdate = errors.New("no fields to update")

	// ErrUserNotFound пользователь из идентичности запроса не найден
	ErrUserNotFound = errors.New("user not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

// scoreFields поля оценок в JSON
var scoreFields = map[string]struct{}{
	"rating":        {},
	"cleanliness":   {},
	"accuracy":      {},
	"checkIn":       {},
	"communication": {},
	"location":      {},
	"value":         {},
}

// ValidationError ошибка конкретного поля.
// Для оценок Unwrap возвращает ErrMissingScore или ErrInvalidScore
type ValidationError struct {
	validate.FieldError
}

func (e *ValidationError) Error() string {
	if _, ok := scoreFields[e.Field]; ok && e.Tag != "required" {
		return e.Field + " must be a number between 1 and 5"
	}
	return e.Message()
}

func (e *ValidationError) Unwrap() error {
	if _, ok := scoreFields[e.Field]; !ok {
		return ErrValidationFailed
	}
	if e.Tag == "required" {
		return ErrMissingScore
	}
	return ErrInvalidScore
}
