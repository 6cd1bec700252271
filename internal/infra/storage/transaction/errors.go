package transaction

import "errors"

var (
	// ErrTransactionNotFound возвращается, когда транзакция не найдена
	ErrTransactionNotFound = errors.New("transaction.repository: transaction not found")

	// ErrDuplicateTransactionID возвращается при нарушении уникальности transaction_id
	ErrDuplicateTransactionID = errors.New("transaction.repository: duplicate transaction id")

	// ErrEmptyPatch возвращается при попытке обновления без полей
	ErrEmptyPatch = errors.New("transaction.repository: nothing to update")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("transaction.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("transaction.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("transaction.repository: failed to scan row")
)
