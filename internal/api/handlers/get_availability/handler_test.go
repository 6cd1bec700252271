package get_availability

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getAvailability "github.com/m04kA/SMC-RentalService/internal/usecase/get_availability"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubUseCase struct {
	lastReq *getAvailability.Request
	resp    *getAvailability.Response
	err     error
}

func (s *stubUseCase) Execute(_ context.Context, req *getAvailability.Request) (*getAvailability.Response, error) {
	s.lastReq = req
	return s.resp, s.err
}

func do(uc *stubUseCase, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	NewHandler(uc, nopLogger{}).Handle(rec, req)
	return rec
}

func TestHandler_PassesQuery(t *testing.T) {
	uc := &stubUseCase{resp: &getAvailability.Response{}}

	rec := do(uc, "/api/v1/property-availability?propertyId=7&startDate=2025-06-01&limit=abc&offset=5")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	require.NotNil(t, uc.lastReq)
	assert.Equal(t, "7", uc.lastReq.PropertyID)
	require.NotNil(t, uc.lastReq.StartDate)
	assert.Equal(t, "2025-06-01", *uc.lastReq.StartDate)
	assert.Nil(t, uc.lastReq.EndDate)
	assert.Equal(t, 0, uc.lastReq.Limit)
	assert.Equal(t, 5, uc.lastReq.Offset)
}

func TestHandler_ReturnsArray(t *testing.T) {
	uc := &stubUseCase{resp: &getAvailability.Response{Records: []getAvailability.Record{
		{ID: 1, PropertyID: 7, Date: "2025-06-01", IsAvailable: true},
	}}}

	rec := do(uc, "/api/v1/property-availability?propertyId=7")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":1,"propertyId":7,"date":"2025-06-01","isAvailable":true,"price":null}]`, rec.Body.String())
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{getAvailability.ErrMissingPropertyID, http.StatusBadRequest, codeMissingPropertyID},
		{getAvailability.ErrInvalidPropertyID, http.StatusBadRequest, codeInvalidPropertyID},
		{getAvailability.ErrPropertyNotFound, http.StatusNotFound, codePropertyNotFound},
		{getAvailability.ErrInvalidDateFormat, http.StatusBadRequest, codeInvalidDateFormat},
		{context.DeadlineExceeded, http.StatusGatewayTimeout, "REQUEST_TIMEOUT"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			rec := do(&stubUseCase{err: tt.err}, "/api/v1/property-availability")

			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.code)
		})
	}
}
