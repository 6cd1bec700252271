package create_booking

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingRequiredFields не переданы обязательные поля
	ErrMissingRequiredFields = errors.New("create_booking: missing required fields")

	// ErrInvalidPropertyID propertyId не является целым числом
	ErrInvalidPropertyID = errors.New("create_booking: invalid property id")

	// ErrEmptyGuestName имя гостя пустое после обрезки пробелов
	ErrEmptyGuestName = errors.New("create_booking: guest name cannot be empty")

	// ErrInvalidEmail email не похож на local@domain.tld
	ErrInvalidEmail = errors.New("create_booking: invalid email format")

	// ErrInvalidGuests количество гостей не является положительным целым
	ErrInvalidGuests = errors.New("create_booking: guests must be a positive number")

	// ErrInvalidTotalPrice переданная стоимость не является неотрицательным целым
	ErrInvalidTotalPrice = errors.New("create_booking: total price must be a non-negative integer")

	// ErrPropertyNotFound объект не найден
	ErrPropertyNotFound = errors.New("create_booking: property not found")

	// ErrExceedsCapacity гостей больше, чем вмещает объект
	ErrExceedsCapacity = errors.New("create_booking: exceeds property capacity")

	// ErrInvalidDate дата заезда или выезда не разбирается
	ErrInvalidDate = errors.New("create_booking: invalid date")

	// ErrInvalidDateRange дата выезда не позже даты заезда
	ErrInvalidDateRange = errors.New("create_booking: check-out must be after check-in")

	// ErrStayTooLong слишком длинное бронирование для закрытия ночей в календаре
	ErrStayTooLong = errors.New("create_booking: stay is too long to reserve")

	// ErrDatesUnavailable часть ночей уже занята в календаре
	ErrDatesUnavailable = errors.New("create_booking: dates are unavailable")

	// ErrConcurrentUpdate конкурентная транзакция изменила те же ночи, запрос нужно повторить
	ErrConcurrentUpdate = errors.New("create_booking: concurrent update, retry the request")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// CapacityError превышение вместимости с фактическим максимумом объекта
type CapacityError struct {
	MaxGuests int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("Property can only accommodate %d guests", e.MaxGuests)
}

func (e *CapacityError) Unwrap() error {
	return ErrExceedsCapacity
}
