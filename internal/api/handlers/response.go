package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// Коды ошибок, общие для всех эндпоинтов
const (
	CodeInvalidRequestBody = "INVALID_REQUEST_BODY"
	CodeInvalidID          = "INVALID_ID"
	CodeInternalError      = "INTERNAL_ERROR"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeRequestTimeout     = "REQUEST_TIMEOUT"
	CodeRequestCanceled    = "REQUEST_CANCELED"
)

const (
	MsgInvalidRequestBody = "Invalid request body"
	MsgInvalidID          = "Valid ID is required"
	msgInternalPrefix     = "internal server error: "
)

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// RespondJSON отправляет JSON ответ
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// RespondError отправляет ошибку с сообщением и машинным кодом
func RespondError(w http.ResponseWriter, status int, message, code string) {
	RespondJSON(w, status, ErrorResponse{Error: message, Code: code})
}

func RespondBadRequest(w http.ResponseWriter, message, code string) {
	RespondError(w, http.StatusBadRequest, message, code)
}

func RespondNotFound(w http.ResponseWriter, message, code string) {
	RespondError(w, http.StatusNotFound, message, code)
}

func RespondConflict(w http.ResponseWriter, message, code string) {
	RespondError(w, http.StatusConflict, message, code)
}

func RespondUnauthorized(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusUnauthorized, message, CodeUnauthorized)
}

// StatusForKind HTTP статус для класса ошибки
func StatusForKind(kind domain.ErrorKind) int {
	switch kind {
	case domain.KindMissingField, domain.KindInvalidFormat, domain.KindInvalidRange:
		return http.StatusBadRequest
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// RespondKind отправляет ошибку со статусом, определяемым классом ошибки
func RespondKind(w http.ResponseWriter, kind domain.ErrorKind, message, code string) {
	RespondError(w, StatusForKind(kind), message, code)
}

// RespondInternalError отправляет 500 с текстом причины.
// Истекший дедлайн и отмена запроса отдаются как 504 и 503
func RespondInternalError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		RespondError(w, http.StatusGatewayTimeout, "request timed out", CodeRequestTimeout)
	case errors.Is(err, context.Canceled):
		RespondError(w, http.StatusServiceUnavailable, "request canceled", CodeRequestCanceled)
	default:
		message := msgInternalPrefix + "unknown error"
		if err != nil {
			message = msgInternalPrefix + err.Error()
		}
		RespondError(w, http.StatusInternalServerError, message, CodeInternalError)
	}
}
