package create_review

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/api/middleware"
	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/service/reviews"
	"github.com/m04kA/SMC-RentalService/internal/service/reviews/models"
)

const (
	msgMissingUserID    = "User identity is required"
	msgPropertyID       = "Property ID is required"
	msgBookingID        = "Booking ID is required"
	msgInvalidProperty  = "Valid propertyId is required"
	msgInvalidBooking   = "Valid bookingId is required"
	msgPropertyNotFound = "Property not found"
	msgBookingNotFound  = "Booking not found"
	msgUserNotFound     = "User not found"
)

const (
	codeMissingPropertyID = "MISSING_PROPERTY_ID"
	codeMissingBookingID  = "MISSING_BOOKING_ID"
	codeInvalidPropertyID = "INVALID_PROPERTY_ID"
	codeInvalidBookingID  = "INVALID_BOOKING_ID"
	codeInvalidRating     = "INVALID_RATING_RANGE"
	codeValidationFailed  = "VALIDATION_FAILED"
	codePropertyNotFound  = "PROPERTY_NOT_FOUND"
	codeBookingNotFound   = "BOOKING_NOT_FOUND"
	codeUserNotFound      = "USER_NOT_FOUND"
)

// missingScoreCodes коды отсутствующих оценок по имени поля
var missingScoreCodes = map[string]string{
	"rating":        "MISSING_RATING",
	"cleanliness":   "MISSING_CLEANLINESS",
	"accuracy":      "MISSING_ACCURACY",
	"checkIn":       "MISSING_CHECK_IN",
	"communication": "MISSING_COMMUNICATION",
	"location":      "MISSING_LOCATION",
	"value":         "MISSING_VALUE",
}

type Handler struct {
	service ReviewService
	logger  Logger
}

func NewHandler(service ReviewService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/reviews
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /reviews - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.CreateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reviews - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidRequestBody, handlers.CodeInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		var verr *reviews.ValidationError

		switch {
		case errors.Is(err, reviews.ErrMissingPropertyID):
			handlers.RespondKind(w, domain.KindMissingField, msgPropertyID, codeMissingPropertyID)

		case errors.Is(err, reviews.ErrMissingBookingID):
			handlers.RespondKind(w, domain.KindMissingField, msgBookingID, codeMissingBookingID)

		case errors.Is(err, reviews.ErrInvalidPropertyID):
			handlers.RespondKind(w, domain.KindInvalidFormat, msgInvalidProperty, codeInvalidPropertyID)

		case errors.Is(err, reviews.ErrInvalidBookingID):
			handlers.RespondKind(w, domain.KindInvalidFormat, msgInvalidBooking, codeInvalidBookingID)

		case errors.As(err, &verr) && errors.Is(err, reviews.ErrMissingScore):
			handlers.RespondKind(w, domain.KindMissingField, verr.Error(), missingScoreCodes[verr.Field])

		case errors.As(err, &verr) && errors.Is(err, reviews.ErrInvalidScore):
			handlers.RespondKind(w, domain.KindInvalidRange, verr.Error(), codeInvalidRating)

		case errors.As(err, &verr):
			handlers.RespondKind(w, domain.KindInvalidFormat, verr.Error(), codeValidationFailed)

		case errors.Is(err, reviews.ErrPropertyNotFound):
			handlers.RespondKind(w, domain.KindNotFound, msgPropertyNotFound, codePropertyNotFound)

		case errors.Is(err, reviews.ErrUserNotFound):
			handlers.RespondKind(w, domain.KindNotFound, msgUserNotFound, codeUserNotFound)

		case errors.Is(err, reviews.ErrBookingNotFound):
			handlers.RespondKind(w, domain.KindNotFound, msgBookingNotFound, codeBookingNotFound)

		default:
			h.logger.Error("POST /reviews - Failed to create review: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w, err)
		}
		return
	}

	h.logger.Info("POST /reviews - Review created: id=%d, user_id=%d", result.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
