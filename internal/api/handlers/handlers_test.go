package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestRespondKind(t *testing.T) {
	tests := []struct {
		kind   domain.ErrorKind
		status int
	}{
		{domain.KindMissingField, http.StatusBadRequest},
		{domain.KindInvalidFormat, http.StatusBadRequest},
		{domain.KindInvalidRange, http.StatusBadRequest},
		{domain.KindNotFound, http.StatusNotFound},
		{domain.KindConflict, http.StatusConflict},
		{domain.KindInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			rec := httptest.NewRecorder()
			RespondKind(rec, tt.kind, "message", "SOME_CODE")

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.Equal(t, ErrorResponse{Error: "message", Code: "SOME_CODE"}, decodeError(t, rec))
		})
	}
}

func TestRespondInternalError(t *testing.T) {
	t.Run("carries cause", func(t *testing.T) {
		rec := httptest.NewRecorder()
		RespondInternalError(rec, errors.New("connection refused"))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		body := decodeError(t, rec)
		assert.Equal(t, "internal server error: connection refused", body.Error)
		assert.Equal(t, CodeInternalError, body.Code)
	})

	t.Run("deadline", func(t *testing.T) {
		rec := httptest.NewRecorder()
		RespondInternalError(rec, fmt.Errorf("query: %w", context.DeadlineExceeded))
		assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
	})

	t.Run("canceled", func(t *testing.T) {
		rec := httptest.NewRecorder()
		RespondInternalError(rec, context.Canceled)
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func TestDecodeJSON(t *testing.T) {
	var v map[string]interface{}

	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
	assert.ErrorIs(t, DecodeJSON(r, &v), ErrEmptyBody)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{broken"))
	assert.Error(t, DecodeJSON(r, &v))

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"a":1}`))
	require.NoError(t, DecodeJSON(r, &v))
	assert.Equal(t, float64(1), v["a"])
}

func TestParsePagination(t *testing.T) {
	tests := []struct {
		query      string
		wantLimit  int
		wantOffset int
	}{
		{query: "", wantLimit: 90, wantOffset: 0},
		{query: "limit=10&offset=20", wantLimit: 10, wantOffset: 20},
		{query: "limit=500", wantLimit: 100},
		{query: "limit=abc&offset=xyz", wantLimit: 90},
		{query: "limit=0&offset=-5", wantLimit: 90},
		{query: "limit=-1", wantLimit: 90},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/?"+tt.query, nil)
			limit, offset := ParsePagination(r, 90, 100)
			assert.Equal(t, tt.wantLimit, limit)
			assert.Equal(t, tt.wantOffset, offset)
		})
	}
}

func TestParseIDVar(t *testing.T) {
	r := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"id": "42"})
	id, err := ParseIDVar(r, "id")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, raw := range []string{"abc", "0", "-3", ""} {
		r := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"id": raw})
		_, err := ParseIDVar(r, "id")
		assert.Error(t, err, raw)
	}
}

func TestQueryInt64(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/?propertyId=7&bad=x", nil)

	v, ok := QueryInt64(r, "propertyId")
	require.True(t, ok)
	assert.Equal(t, int64(7), *v)

	v, ok = QueryInt64(r, "absent")
	assert.True(t, ok)
	assert.Nil(t, v)

	_, ok = QueryInt64(r, "bad")
	assert.False(t, ok)
}
