package domain

// ErrorKind класс ошибки, определяет HTTP статус ответа
type ErrorKind int

const (
	KindMissingField  ErrorKind = iota + 1 // обязательное поле отсутствует
	KindInvalidFormat                      // значение есть, но некорректно
	KindInvalidRange                       // значение вне допустимых границ
	KindNotFound                           // связанная сущность не найдена
	KindConflict                           // конкурентное или повторное изменение
	KindInternal                           // ошибка хранилища или среды выполнения
)

func (k ErrorKind) String() string {
	switch k {
	case KindMissingField:
		return "missing_field"
	case KindInvalidFormat:
		return "invalid_format"
	case KindInvalidRange:
		return "invalid_range"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindInternal:
		return "internal"
	default:
		return "unknown"
	}
}
