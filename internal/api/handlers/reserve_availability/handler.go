package reserve_availability

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/service/availability"
	"github.com/m04kA/SMC-RentalService/internal/service/availability/models"
)

const (
	msgMissingRequiredFields = "Missing required fields"
	msgInvalidPropertyID     = "Valid propertyId is required"
	msgPropertyNotFound      = "Property not found"
	msgInvalidDate           = "Invalid date format"
	msgInvalidDateRange      = "Check-out date must be after check-in date"
	msgStayTooLong           = "Too many nights requested"
	msgDatesUnavailable      = "Some of the requested nights are not available"
	msgConcurrentUpdate      = "The requested nights were modified concurrently, please retry"
)

const (
	codeMissingRequiredFields = "MISSING_REQUIRED_FIELDS"
	codeInvalidPropertyID     = "INVALID_PROPERTY_ID"
	codePropertyNotFound      = "PROPERTY_NOT_FOUND"
	codeInvalidDate           = "INVALID_DATE"
	codeInvalidDateRange      = "INVALID_DATE_RANGE"
	codeStayTooLong           = "STAY_TOO_LONG"
	codeDatesUnavailable      = "DATES_UNAVAILABLE"
	codeConcurrentUpdate      = "CONCURRENT_UPDATE"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/property-availability/reserve
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.ReserveRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /property-availability/reserve - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidRequestBody, handlers.CodeInvalidRequestBody)
		return
	}

	result, err := h.service.Reserve(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrMissingRequiredFields):
			handlers.RespondKind(w, domain.KindMissingField, msgMissingRequiredFields, codeMissingRequiredFields)

		case errors.Is(err, availability.ErrInvalidPropertyID):
			handlers.RespondKind(w, domain.KindInvalidFormat, msgInvalidPropertyID, codeInvalidPropertyID)

		case errors.Is(err, availability.ErrPropertyNotFound):
			handlers.RespondKind(w, domain.KindNotFound, msgPropertyNotFound, codePropertyNotFound)

		case errors.Is(err, availability.ErrInvalidDate):
			handlers.RespondKind(w, domain.KindInvalidFormat, msgInvalidDate, codeInvalidDate)

		case errors.Is(err, availability.ErrInvalidDateRange):
			handlers.RespondKind(w, domain.KindInvalidRange, msgInvalidDateRange, codeInvalidDateRange)

		case errors.Is(err, availability.ErrStayTooLong):
			handlers.RespondKind(w, domain.KindInvalidRange, fmt.Sprintf("%s (max %d)", msgStayTooLong, domain.MaxReservedNights), codeStayTooLong)

		case errors.Is(err, availability.ErrDatesUnavailable):
			handlers.RespondKind(w, domain.KindConflict, msgDatesUnavailable, codeDatesUnavailable)

		case errors.Is(err, availability.ErrConcurrentUpdate):
			handlers.RespondKind(w, domain.KindConflict, msgConcurrentUpdate, codeConcurrentUpdate)

		default:
			h.logger.Error("POST /property-availability/reserve - Failed to reserve nights: %v", err)
			handlers.RespondInternalError(w, err)
		}
		return
	}

	h.logger.Info("POST /property-availability/reserve - Reserved %d nights for property_id=%d",
		len(result.Nights), result.PropertyID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
