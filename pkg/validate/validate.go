package validate

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError первая ошибка валидации поля в терминах JSON
type FieldError struct {
	Field string // имя поля из json-тега
	Tag   string // правило, которое не прошло
	Param string
}

// New создает валидатор, который сообщает имена полей из json-тегов
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Fields раскладывает ошибку validator.Struct на ошибки полей.
// Для прочих ошибок возвращает nil
func Fields(err error) []FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	result := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		result = append(result, FieldError{Field: fe.Field(), Tag: fe.Tag(), Param: fe.Param()})
	}
	return result
}

// Message человекочитаемое описание ошибки поля
func (e FieldError) Message() string {
	switch e.Tag {
	case "required":
		return e.Field + " is required"
	case "oneof":
		return e.Field + " must be one of: " + strings.Join(strings.Fields(e.Param), ", ")
	case "gt":
		return e.Field + " must be greater than " + e.Param
	case "gte":
		return e.Field + " must be at least " + e.Param
	case "lte":
		return e.Field + " must be at most " + e.Param
	case "min":
		return e.Field + " must contain at least " + e.Param + " item(s)"
	case "max":
		return e.Field + " must be at most " + e.Param + " characters"
	case "iso4217":
		return e.Field + " must be an ISO 4217 currency code"
	default:
		return e.Field + " is invalid"
	}
}
