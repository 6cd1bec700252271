package transactions

import (
	"errors"

	"github.com/m04kA/SMC-RentalService/pkg/validate"
)

var (
	// ErrTransactionNotFound возвращается, когда транзакция не найдена
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrMissingBookingID не передан bookingId
	ErrMissingBookingID = errors.New("bookingId is required")

	// ErrMissingAmount не передана сумма
	ErrMissingAmount = errors.New("amount is required")

	// ErrMissingStatus не передан статус
	ErrMissingStatus = errors.New("status is required")

	// ErrInvalidBookingID bookingId не является целым числом
	ErrInvalidBookingID = errors.New("bookingId must be an integer")

	// ErrInvalidAmount сумма не является положительным целым
	ErrInvalidAmount = errors.New("amount must be a positive integer")

	// ErrInvalidStatus статус не из списка допустимых
	ErrInvalidStatus = errors.New("invalid transaction status")

	// ErrValidationFailed прочие поля не прошли проверку
	ErrValidationFailed = errors.New("validation failed")

	// ErrBookingNotFound бронирование, к которому относится платеж, не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrDuplicateTransactionID внешний идентификатор платежа уже использован
	ErrDuplicateTransactionID = errors.New("transactionId already exists")

	// ErrNoFieldsToUpdate в запросе на обновление нет полей
	ErrNoFieldsToUpdate = errors.New("no fields to update")

	// ErrUserNotFound пользователь из идентичности запроса не найден
	ErrUserNotFound = errors.New("user not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

// ValidationError ошибка конкретного поля.
// Unwrap возвращает ErrInvalidStatus для статуса и ErrValidationFailed для остальных полей
type ValidationError struct {
	validate.FieldError
}

func (e *ValidationError) Error() string {
	return e.Message()
}

func (e *ValidationError) Unwrap() error {
	if e.Field == "status" {
		return ErrInvalidStatus
	}
	return ErrValidationFailed
}
