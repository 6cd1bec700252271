package list_reviews

import (
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/service/reviews/models"
)

const (
	msgInvalidPropertyID  = "Valid propertyId is required"
	msgInvalidUserID      = "Valid userId is required"
	msgInvalidBookingID   = "Valid bookingId is required"
	codeInvalidPropertyID = "INVALID_PROPERTY_ID"
	codeInvalidUserID     = "INVALID_USER_ID"
	codeInvalidBookingID  = "INVALID_BOOKING_ID"
)

type Handler struct {
	service      ReviewService
	defaultLimit int
	maxLimit     int
	logger       Logger
}

func NewHandler(service ReviewService, defaultLimit, maxLimit int, logger Logger) *Handler {
	return &Handler{
		service:      service,
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
		logger:       logger,
	}
}

// Handle GET /api/v1/reviews?propertyId=&userId=&bookingId=&limit=&offset=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	propertyID, ok := handlers.QueryInt64(r, "propertyId")
	if !ok {
		handlers.RespondKind(w, domain.KindInvalidFormat, msgInvalidPropertyID, codeInvalidPropertyID)
		return
	}
	userID, ok := handlers.QueryInt64(r, "userId")
	if !ok {
		handlers.RespondKind(w, domain.KindInvalidFormat, msgInvalidUserID, codeInvalidUserID)
		return
	}
	bookingID, ok := handlers.QueryInt64(r, "bookingId")
	if !ok {
		handlers.RespondKind(w, domain.KindInvalidFormat, msgInvalidBookingID, codeInvalidBookingID)
		return
	}

	req := &models.ListRequest{
		PropertyID: propertyID,
		UserID:     userID,
		BookingID:  bookingID,
	}
	req.Limit, req.Offset = handlers.ParsePagination(r, h.defaultLimit, h.maxLimit)

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /reviews - Failed to list reviews: %v", err)
		handlers.RespondInternalError(w, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
