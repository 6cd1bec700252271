package types

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
)

// ErrNotInteger возвращается, когда значение нельзя интерпретировать как целое число
var ErrNotInteger = errors.New("value is not an integer")

// FlexInt целое число из JSON, которое клиент может прислать числом или строкой ("4").
// Отличает отсутствующее поле, null и некорректное значение:
// ошибки формата не ломают декодирование всего тела, их проверяет валидация
type FlexInt struct {
	present bool
	null    bool
	valid   bool
	value   int64
}

// NewFlexInt создает заданное значение
func NewFlexInt(v int64) FlexInt {
	return FlexInt{present: true, valid: true, value: v}
}

// NullFlexInt создает явный null
func NullFlexInt() FlexInt {
	return FlexInt{present: true, null: true}
}

// FlexIntFromString разбирает строку (например, query-параметр)
func FlexIntFromString(raw string) FlexInt {
	v, err := parseInteger(raw)
	if err != nil {
		return FlexInt{present: true}
	}
	return NewFlexInt(v)
}

// UnmarshalJSON вызывается только для присутствующего ключа, в том числе со значением null
func (f *FlexInt) UnmarshalJSON(data []byte) error {
	*f = FlexInt{present: true}

	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		f.null = true
		return nil
	}

	var raw interface{}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return nil
	}

	var (
		v   int64
		err error
	)
	switch typed := raw.(type) {
	case json.Number:
		v, err = parseInteger(typed.String())
	case string:
		v, err = parseInteger(typed)
	default:
		err = ErrNotInteger
	}
	if err != nil {
		return nil
	}

	f.valid = true
	f.value = v
	return nil
}

// MarshalJSON пишет число или null
func (f FlexInt) MarshalJSON() ([]byte, error) {
	if !f.IsSet() {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatInt(f.value, 10)), nil
}

// IsPresent ключ был в запросе (в том числе null или мусор)
func (f FlexInt) IsPresent() bool {
	return f.present
}

// IsNull ключ был передан со значением null
func (f FlexInt) IsNull() bool {
	return f.present && f.null
}

// IsSet ключ был передан и не равен null
func (f FlexInt) IsSet() bool {
	return f.present && !f.null
}

// Valid значение задано и является целым числом
func (f FlexInt) Valid() bool {
	return f.IsSet() && f.valid
}

// Int64 возвращает значение, 0 если оно не задано или некорректно
func (f FlexInt) Int64() int64 {
	if !f.Valid() {
		return 0
	}
	return f.value
}

// Ptr возвращает указатель на значение или nil
func (f FlexInt) Ptr() *int64 {
	if !f.Valid() {
		return nil
	}
	v := f.value
	return &v
}

// parseInteger принимает "42", " 42 " и "42.0", но не "42.5" и не "4e400"
func parseInteger(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, ErrNotInteger
	}
	if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return v, nil
	}

	fv, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsInf(fv, 0) || math.IsNaN(fv) || fv != math.Trunc(fv) {
		return 0, ErrNotInteger
	}
	// float64(math.MaxInt64) округляется до 2^63, поэтому граница включается
	if fv >= math.MaxInt64 || fv < math.MinInt64 {
		return 0, ErrNotInteger
	}
	return int64(fv), nil
}
