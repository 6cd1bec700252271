package types

import (
	"bytes"
	"strconv"
)

// StrictBool логическое значение из JSON без приведения типов:
// допустимы только литералы true и false, строки "true" или числа 1/0 считаются некорректными
type StrictBool struct {
	present bool
	null    bool
	valid   bool
	value   bool
}

// NewStrictBool создает заданное значение
func NewStrictBool(v bool) StrictBool {
	return StrictBool{present: true, valid: true, value: v}
}

// UnmarshalJSON вызывается только для присутствующего ключа
func (b *StrictBool) UnmarshalJSON(data []byte) error {
	*b = StrictBool{present: true}

	switch string(bytes.TrimSpace(data)) {
	case "null":
		b.null = true
	case "true":
		b.valid, b.value = true, true
	case "false":
		b.valid, b.value = true, false
	}
	return nil
}

// MarshalJSON пишет true/false или null
func (b StrictBool) MarshalJSON() ([]byte, error) {
	if !b.Valid() {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatBool(b.value)), nil
}

// IsPresent ключ был в запросе
func (b StrictBool) IsPresent() bool {
	return b.present
}

// IsSet ключ был передан и не равен null
func (b StrictBool) IsSet() bool {
	return b.present && !b.null
}

// Valid значение является булевым литералом
func (b StrictBool) Valid() bool {
	return b.IsSet() && b.valid
}

// Bool возвращает значение, false если оно некорректно
func (b StrictBool) Bool() bool {
	return b.Valid() && b.value
}
