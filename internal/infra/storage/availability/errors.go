package availability

import "errors"

var (
	// ErrRecordNotFound возвращается, когда запись календаря не найдена
	ErrRecordNotFound = errors.New("availability.repository: record not found")

	// ErrEmptyPatch возвращается при попытке обновления без полей
	ErrEmptyPatch = errors.New("availability.repository: nothing to update")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("availability.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("availability.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("availability.repository: failed to scan row")
)
