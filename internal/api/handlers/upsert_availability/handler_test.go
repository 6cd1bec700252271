package upsert_availability

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	upsertAvailability "github.com/m04kA/SMC-RentalService/internal/usecase/upsert_availability"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubUseCase struct {
	resp *upsertAvailability.Response
	err  error
}

func (s *stubUseCase) Execute(_ context.Context, _ *upsertAvailability.Request) (*upsertAvailability.Response, error) {
	return s.resp, s.err
}

func do(uc *stubUseCase, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/property-availability", strings.NewReader(body))
	rec := httptest.NewRecorder()
	NewHandler(uc, nopLogger{}).Handle(rec, req)
	return rec
}

func TestHandler_StatusByCreated(t *testing.T) {
	price := int64(900)
	for _, created := range []bool{true, false} {
		uc := &stubUseCase{resp: &upsertAvailability.Response{
			ID: 3, PropertyID: 1, Date: "2025-06-01", IsAvailable: true, Price: &price, Created: created,
		}}

		rec := do(uc, `{"propertyId":1,"date":"2025-06-01","isAvailable":true,"price":900}`)

		want := http.StatusOK
		if created {
			want = http.StatusCreated
		}
		require.Equal(t, want, rec.Code)

		var body RecordResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		assert.Equal(t, int64(3), body.ID)
		assert.Equal(t, "2025-06-01", body.Date)
		require.NotNil(t, body.Price)
		assert.Equal(t, int64(900), *body.Price)
	}
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{upsertAvailability.ErrMissingPropertyID, http.StatusBadRequest, codeMissingPropertyID},
		{upsertAvailability.ErrMissingDate, http.StatusBadRequest, codeMissingDate},
		{upsertAvailability.ErrMissingIsAvailable, http.StatusBadRequest, codeMissingIsAvailable},
		{upsertAvailability.ErrInvalidPropertyID, http.StatusBadRequest, codeInvalidPropertyID},
		{upsertAvailability.ErrInvalidDateFormat, http.StatusBadRequest, codeInvalidDateFormat},
		{upsertAvailability.ErrInvalidIsAvailable, http.StatusBadRequest, codeInvalidIsAvailable},
		{upsertAvailability.ErrInvalidPrice, http.StatusBadRequest, codeInvalidPrice},
		{upsertAvailability.ErrPropertyNotFound, http.StatusNotFound, codePropertyNotFound},
		{fmt.Errorf("%w: db down", upsertAvailability.ErrInternal), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			rec := do(&stubUseCase{err: tt.err}, `{}`)

			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.code)
		})
	}
}
