package reserve_availability

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/service/availability"
	"github.com/m04kA/SMC-RentalService/internal/service/availability/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubService struct {
	resp *models.ReserveResponse
	err  error
}

func (s *stubService) Reserve(_ context.Context, _ *models.ReserveRequest) (*models.ReserveResponse, error) {
	return s.resp, s.err
}

func do(svc *stubService, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/property-availability/reserve", strings.NewReader(body))
	rec := httptest.NewRecorder()
	NewHandler(svc, nopLogger{}).Handle(rec, req)
	return rec
}

func TestHandler_Reserved(t *testing.T) {
	svc := &stubService{resp: &models.ReserveResponse{
		PropertyID: 1,
		Nights: []*models.RecordResponse{
			{ID: 1, PropertyID: 1, Date: "2025-06-01"},
			{ID: 2, PropertyID: 1, Date: "2025-06-02"},
		},
	}}

	rec := do(svc, `{"propertyId":1,"checkIn":"2025-06-01","checkOut":"2025-06-03"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"2025-06-02"`)
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{availability.ErrMissingRequiredFields, http.StatusBadRequest, codeMissingRequiredFields},
		{availability.ErrInvalidPropertyID, http.StatusBadRequest, codeInvalidPropertyID},
		{availability.ErrPropertyNotFound, http.StatusNotFound, codePropertyNotFound},
		{availability.ErrInvalidDate, http.StatusBadRequest, codeInvalidDate},
		{availability.ErrInvalidDateRange, http.StatusBadRequest, codeInvalidDateRange},
		{availability.ErrStayTooLong, http.StatusBadRequest, codeStayTooLong},
		{fmt.Errorf("%w: 2025-06-02", availability.ErrDatesUnavailable), http.StatusConflict, codeDatesUnavailable},
		{availability.ErrConcurrentUpdate, http.StatusConflict, codeConcurrentUpdate},
		{availability.ErrInternal, http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			rec := do(&stubService{err: tt.err}, `{}`)

			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.code)
		})
	}
}
