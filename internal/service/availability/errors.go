package availability

import "errors"

var (
	// ErrRecordNotFound запись календаря не найдена
	ErrRecordNotFound = errors.New("availability: record not found")

	// ErrNoFieldsToUpdate в запросе нет ни isAvailable, ни price
	ErrNoFieldsToUpdate = errors.New("availability: no fields to update")

	// ErrInvalidIsAvailable isAvailable не является булевым литералом
	ErrInvalidIsAvailable = errors.New("availability: isAvailable must be a boolean")

	// ErrInvalidPrice price не является целым числом
	ErrInvalidPrice = errors.New("availability: price must be a valid integer")

	// ErrMissingRequiredFields для резервирования не переданы propertyId, checkIn или checkOut
	ErrMissingRequiredFields = errors.New("availability: missing required fields")

	// ErrInvalidPropertyID propertyId не является целым числом
	ErrInvalidPropertyID = errors.New("availability: invalid property id")

	// ErrPropertyNotFound объект не найден
	ErrPropertyNotFound = errors.New("availability: property not found")

	// ErrInvalidDate дата заезда или выезда не разбирается
	ErrInvalidDate = errors.New("availability: invalid date")

	// ErrInvalidDateRange дата выезда не позже даты заезда
	ErrInvalidDateRange = errors.New("availability: check-out must be after check-in")

	// ErrStayTooLong диапазон длиннее domain.MaxReservedNights
	ErrStayTooLong = errors.New("availability: too many nights to reserve at once")

	// ErrDatesUnavailable хотя бы одна ночь диапазона уже недоступна
	ErrDatesUnavailable = errors.New("availability: dates are unavailable")

	// ErrConcurrentUpdate конкурентная транзакция изменила те же ночи
	ErrConcurrentUpdate = errors.New("availability: concurrent update, retry the request")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("availability: internal error")
)
