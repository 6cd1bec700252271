package hostprofile

import "errors"

var (
	// ErrProfileNotFound возвращается, когда профиль не найден
	ErrProfileNotFound = errors.New("hostprofile.repository: profile not found")

	// ErrDuplicateProfile возвращается, когда у пользователя уже есть профиль
	ErrDuplicateProfile = errors.New("hostprofile.repository: profile already exists for user")

	// ErrUserNotFound возвращается при ссылке на несуществующего пользователя
	ErrUserNotFound = errors.New("hostprofile.repository: user not found")

	// ErrEmptyPatch возвращается при попытке обновления без полей
	ErrEmptyPatch = errors.New("hostprofile.repository: nothing to update")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("hostprofile.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("hostprofile.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("hostprofile.repository: failed to scan row")

	// ErrEncodeJSON возвращается при ошибке сериализации languages
	ErrEncodeJSON = errors.New("hostprofile.repository: failed to encode json column")
)
