package get_user

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-RentalService/internal/service/users"
	"github.com/m04kA/SMC-RentalService/internal/service/users/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubService struct {
	resp *models.UserResponse
	err  error
}

func (s *stubService) GetByID(context.Context, int64) (*models.UserResponse, error) {
	return s.resp, s.err
}

func do(svc *stubService, path string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/users/{id}", NewHandler(svc, nopLogger{}).Handle).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHandler(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		svc    *stubService
		status int
		body   string
	}{
		{"found", "/api/v1/users/3", &stubService{resp: &models.UserResponse{ID: 3, Name: "Jane"}}, http.StatusOK, `"name":"Jane"`},
		{"not found", "/api/v1/users/4", &stubService{err: users.ErrUserNotFound}, http.StatusNotFound, codeNotFound},
		{"invalid id", "/api/v1/users/abc", &stubService{}, http.StatusBadRequest, "INVALID_ID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(tt.svc, tt.path)

			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.body)
		})
	}
}
