package upsert_availability

import "errors"

var (
	// ErrMissingPropertyID не передан propertyId
	ErrMissingPropertyID = errors.New("upsert_availability: propertyId is required")

	// ErrMissingDate не передана дата
	ErrMissingDate = errors.New("upsert_availability: date is required")

	// ErrMissingIsAvailable не передан isAvailable
	ErrMissingIsAvailable = errors.New("upsert_availability: isAvailable is required")

	// ErrInvalidPropertyID propertyId не является целым числом
	ErrInvalidPropertyID = errors.New("upsert_availability: invalid property id")

	// ErrInvalidDateFormat дата не в формате YYYY-MM-DD
	ErrInvalidDateFormat = errors.New("upsert_availability: invalid date format")

	// ErrInvalidIsAvailable isAvailable не является булевым литералом
	ErrInvalidIsAvailable = errors.New("upsert_availability: isAvailable must be a boolean")

	// ErrInvalidPrice цена не является целым числом
	ErrInvalidPrice = errors.New("upsert_availability: price must be a valid integer")

	// ErrPropertyNotFound объект не найден
	ErrPropertyNotFound = errors.New("upsert_availability: property not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("upsert_availability: internal error")
)
