package delete_review

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/service/reviews"
	"github.com/m04kA/SMC-RentalService/internal/service/reviews/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubService struct {
	resp *models.DeleteResponse
	err  error
}

func (s *stubService) Delete(_ context.Context, _ int64) (*models.DeleteResponse, error) {
	return s.resp, s.err
}

func do(svc *stubService, path string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/reviews/{id}", NewHandler(svc, nopLogger{}).Handle).Methods(http.MethodDelete)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, path, nil))
	return rec
}

func TestHandler_Deleted(t *testing.T) {
	svc := &stubService{resp: &models.DeleteResponse{
		Message: "Review deleted successfully",
		Review:  &models.ReviewResponse{ID: 9, Rating: 4},
	}}

	rec := do(svc, "/api/v1/reviews/9")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"message":"Review deleted successfully"`)
	assert.Contains(t, rec.Body.String(), `"review":{"id":9`)
}

func TestHandler_NotFound(t *testing.T) {
	rec := do(&stubService{err: reviews.ErrReviewNotFound}, "/api/v1/reviews/9")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), codeNotFound)
}
