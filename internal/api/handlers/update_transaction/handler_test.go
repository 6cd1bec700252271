package update_transaction

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/service/transactions"
	"github.com/m04kA/SMC-RentalService/internal/service/transactions/models"
	"github.com/m04kA/SMC-RentalService/pkg/validate"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubService struct {
	lastID int64
	resp   *models.TransactionResponse
	err    error
}

func (s *stubService) Update(_ context.Context, id int64, _ *models.UpdateRequest) (*models.TransactionResponse, error) {
	s.lastID = id
	return s.resp, s.err
}

func do(svc *stubService, path, body string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/transactions/{id}", NewHandler(svc, nopLogger{}).Handle).Methods(http.MethodPut)

	req := httptest.NewRequest(http.MethodPut, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandler_Updated(t *testing.T) {
	svc := &stubService{resp: &models.TransactionResponse{ID: 3, Status: "refunded"}}

	rec := do(svc, "/api/v1/transactions/3", `{"status":"refunded"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(3), svc.lastID)
	assert.Contains(t, rec.Body.String(), `"status":"refunded"`)
}

func TestHandler_InvalidID(t *testing.T) {
	rec := do(&stubService{}, "/api/v1/transactions/abc", `{"status":"refunded"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_ID")
}

func TestHandler_Errors(t *testing.T) {
	statusErr := &transactions.ValidationError{FieldError: validate.FieldError{Field: "status", Tag: "oneof", Param: "pending completed refunded failed"}}
	methodErr := &transactions.ValidationError{FieldError: validate.FieldError{Field: "paymentMethod", Tag: "max", Param: "64"}}

	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"no fields", transactions.ErrNoFieldsToUpdate, http.StatusBadRequest, codeNoUpdates},
		{"invalid status", statusErr, http.StatusBadRequest, codeInvalidStatus},
		{"too long method", methodErr, http.StatusBadRequest, codeValidationFailed},
		{"not found", transactions.ErrTransactionNotFound, http.StatusNotFound, codeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(&stubService{err: tt.err}, "/api/v1/transactions/3", `{}`)

			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.code)
		})
	}
}
