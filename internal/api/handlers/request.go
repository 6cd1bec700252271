package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
)

// ErrEmptyBody тело запроса отсутствует
var ErrEmptyBody = errors.New("request body is empty")

// maxBodyBytes ограничение размера JSON тела
const maxBodyBytes = 1 << 20

// DecodeJSON декодирует JSON тело запроса
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return ErrEmptyBody
	}
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyBody
		}
		return fmt.Errorf("decode json: %w", err)
	}
	return nil
}

// ParseIDVar читает положительный целый id из переменной пути
func ParseIDVar(r *http.Request, name string) (int64, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s %q", name, raw)
	}
	return id, nil
}

// ParsePagination читает limit и offset из query.
// Некорректный или неположительный limit заменяется на defaultLimit, превышение обрезается до maxLimit.
// Некорректный или отрицательный offset заменяется на 0
func ParsePagination(r *http.Request, defaultLimit, maxLimit int) (limit, offset int) {
	q := r.URL.Query()

	limit = defaultLimit
	if v, err := strconv.Atoi(strings.TrimSpace(q.Get("limit"))); err == nil && v > 0 {
		limit = v
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	if v, err := strconv.Atoi(strings.TrimSpace(q.Get("offset"))); err == nil && v > 0 {
		offset = v
	}
	return limit, offset
}

// QueryInt64 читает необязательный целый query-параметр.
// ok=false, если параметр передан, но не является целым числом
func QueryInt64(r *http.Request, name string) (value *int64, ok bool) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil, true
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, false
	}
	return &v, true
}

// QueryString читает необязательный строковый query-параметр
func QueryString(r *http.Request, name string) *string {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil
	}
	return &raw
}
