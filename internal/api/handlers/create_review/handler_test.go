package create_review

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/api/middleware"
	"github.com/m04kA/SMC-RentalService/internal/service/reviews"
	"github.com/m04kA/SMC-RentalService/internal/service/reviews/models"
	"github.com/m04kA/SMC-RentalService/pkg/validate"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubService struct {
	userID int64
	resp   *models.ReviewResponse
	err    error
}

func (s *stubService) Create(_ context.Context, userID int64, _ *models.CreateRequest) (*models.ReviewResponse, error) {
	s.userID = userID
	return s.resp, s.err
}

func do(svc *stubService, userID *int64, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reviews", strings.NewReader(body))
	if userID != nil {
		req = req.WithContext(middleware.WithUserID(req.Context(), *userID))
	}
	rec := httptest.NewRecorder()
	NewHandler(svc, nopLogger{}).Handle(rec, req)
	return rec
}

func TestHandler_Created(t *testing.T) {
	userID := int64(42)
	svc := &stubService{resp: &models.ReviewResponse{ID: 9, PropertyID: 1, UserID: 42, Rating: 4.5}}

	rec := do(svc, &userID, `{"propertyId":1,"bookingId":5,"rating":4.5}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, int64(42), svc.userID)
	assert.Contains(t, rec.Body.String(), `"rating":4.5`)
}

func TestHandler_NoUser(t *testing.T) {
	rec := do(&stubService{}, nil, `{}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandler_NonNumericScore(t *testing.T) {
	userID := int64(42)

	rec := do(&stubService{}, &userID, `{"propertyId":1,"bookingId":5,"rating":"five"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_REQUEST_BODY")
}

func TestHandler_Errors(t *testing.T) {
	userID := int64(42)
	missing := func(field string) error {
		return &reviews.ValidationError{FieldError: validate.FieldError{Field: field, Tag: "required"}}
	}
	outOfRange := &reviews.ValidationError{FieldError: validate.FieldError{Field: "cleanliness", Tag: "lte", Param: "5"}}
	commentErr := &reviews.ValidationError{FieldError: validate.FieldError{Field: "comment", Tag: "max", Param: "2000"}}

	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"missing property", reviews.ErrMissingPropertyID, http.StatusBadRequest, codeMissingPropertyID},
		{"missing booking", reviews.ErrMissingBookingID, http.StatusBadRequest, codeMissingBookingID},
		{"invalid property", reviews.ErrInvalidPropertyID, http.StatusBadRequest, codeInvalidPropertyID},
		{"invalid booking", reviews.ErrInvalidBookingID, http.StatusBadRequest, codeInvalidBookingID},
		{"missing rating", missing("rating"), http.StatusBadRequest, "MISSING_RATING"},
		{"missing check in", missing("checkIn"), http.StatusBadRequest, "MISSING_CHECK_IN"},
		{"missing value", fmt.Errorf("create: %w", missing("value")), http.StatusBadRequest, "MISSING_VALUE"},
		{"score out of range", outOfRange, http.StatusBadRequest, codeInvalidRating},
		{"comment too long", commentErr, http.StatusBadRequest, codeValidationFailed},
		{"property not found", reviews.ErrPropertyNotFound, http.StatusNotFound, codePropertyNotFound},
		{"booking not found", reviews.ErrBookingNotFound, http.StatusNotFound, codeBookingNotFound},
		{"user not found", reviews.ErrUserNotFound, http.StatusNotFound, codeUserNotFound},
		{"internal", fmt.Errorf("%w: %w", reviews.ErrInternal, errors.New("db down")), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(&stubService{err: tt.err}, &userID, `{}`)

			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.code)
		})
	}
}

func TestHandler_RangeMessage(t *testing.T) {
	userID := int64(42)
	err := &reviews.ValidationError{FieldError: validate.FieldError{Field: "checkIn", Tag: "gte", Param: "1"}}

	rec := do(&stubService{err: err}, &userID, `{}`)

	assert.Contains(t, rec.Body.String(), "checkIn must be a number between 1 and 5")
}
