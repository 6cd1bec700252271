package update_host_profile

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/service/hostprofiles"
	"github.com/m04kA/SMC-RentalService/internal/service/hostprofiles/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubService struct {
	lastID  int64
	lastReq *models.UpdateRequest
	resp    *models.HostProfileResponse
	err     error
}

func (s *stubService) Update(_ context.Context, id int64, req *models.UpdateRequest) (*models.HostProfileResponse, error) {
	s.lastID = id
	s.lastReq = req
	return s.resp, s.err
}

func do(svc *stubService, path, body string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/host-profiles/{id}", NewHandler(svc, nopLogger{}).Handle).Methods(http.MethodPut)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, path, strings.NewReader(body)))
	return rec
}

func TestHandler_Updated(t *testing.T) {
	svc := &stubService{resp: &models.HostProfileResponse{ID: 2, SuperhostStatus: true}}

	rec := do(svc, "/api/v1/host-profiles/2", `{"superhostStatus":true,"responseRate":"97"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(2), svc.lastID)
	assert.Equal(t, int64(97), svc.lastReq.ResponseRate.Int64())
	assert.Contains(t, rec.Body.String(), `"superhostStatus":true`)
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"empty", hostprofiles.ErrNoFieldsToUpdate, http.StatusBadRequest, codeNoUpdates},
		{"languages", hostprofiles.ErrInvalidLanguages, http.StatusBadRequest, codeInvalidLanguages},
		{"response time", hostprofiles.ErrInvalidResponseTime, http.StatusBadRequest, codeInvalidResponseTime},
		{"response rate", hostprofiles.ErrInvalidResponseRate, http.StatusBadRequest, codeInvalidRate},
		{"average rating", hostprofiles.ErrInvalidAverageRating, http.StatusBadRequest, codeInvalidRating},
		{"not found", hostprofiles.ErrProfileNotFound, http.StatusNotFound, codeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(&stubService{err: tt.err}, "/api/v1/host-profiles/2", `{}`)

			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.code)
		})
	}
}
