package property

import "errors"

var (
	// ErrPropertyNotFound возвращается, когда объект не найден
	ErrPropertyNotFound = errors.New("property.repository: property not found")

	// ErrPropertyHasBookings возвращается при удалении объекта, на который ссылаются бронирования
	ErrPropertyHasBookings = errors.New("property.repository: property is referenced by bookings")

	// ErrEmptyPatch возвращается при попытке обновления без полей
	ErrEmptyPatch = errors.New("property.repository: nothing to update")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("property.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("property.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("property.repository: failed to scan row")

	// ErrEncodeJSON возвращается при ошибке сериализации images/amenities
	ErrEncodeJSON = errors.New("property.repository: failed to encode json column")
)
