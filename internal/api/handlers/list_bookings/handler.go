package list_bookings

import (
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/service/bookings/models"
)

const (
	msgInvalidPropertyID  = "Valid propertyId is required"
	codeInvalidPropertyID = "INVALID_PROPERTY_ID"
)

type Handler struct {
	service      BookingService
	defaultLimit int
	maxLimit     int
	logger       Logger
}

func NewHandler(service BookingService, defaultLimit, maxLimit int, logger Logger) *Handler {
	return &Handler{
		service:      service,
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
		logger:       logger,
	}
}

// Handle GET /api/v1/bookings?propertyId=&guestEmail=&limit=&offset=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	propertyID, ok := handlers.QueryInt64(r, "propertyId")
	if !ok {
		h.logger.Warn("GET /bookings - Invalid propertyId: %q", r.URL.Query().Get("propertyId"))
		handlers.RespondKind(w, domain.KindInvalidFormat, msgInvalidPropertyID, codeInvalidPropertyID)
		return
	}

	limit, offset := handlers.ParsePagination(r, h.defaultLimit, h.maxLimit)

	result, err := h.service.List(r.Context(), &models.ListRequest{
		PropertyID: propertyID,
		GuestEmail: handlers.QueryString(r, "guestEmail"),
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		h.logger.Error("GET /bookings - Failed to list bookings: %v", err)
		handlers.RespondInternalError(w, err)
		return
	}

	h.logger.Info("GET /bookings - Bookings retrieved successfully: count=%d", len(result))
	handlers.RespondJSON(w, http.StatusOK, result)
}
