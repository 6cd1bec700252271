package get_availability

import "errors"

var (
	// ErrMissingPropertyID не передан propertyId
	ErrMissingPropertyID = errors.New("get_availability: propertyId is required")

	// ErrInvalidPropertyID propertyId не является целым числом
	ErrInvalidPropertyID = errors.New("get_availability: invalid property id")

	// ErrPropertyNotFound объект не найден
	ErrPropertyNotFound = errors.New("get_availability: property not found")

	// ErrInvalidDateFormat граница диапазона не в формате YYYY-MM-DD
	ErrInvalidDateFormat = errors.New("get_availability: invalid date format")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_availability: internal error")
)
