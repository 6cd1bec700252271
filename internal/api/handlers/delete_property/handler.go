package delete_property

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/service/properties"
)

const (
	msgNotFound     = "Property not found"
	msgHasBookings  = "Property has bookings and cannot be deleted"
	codeNotFound    = "PROPERTY_NOT_FOUND"
	codeHasBookings = "PROPERTY_HAS_BOOKINGS"
)

type Handler struct {
	service PropertyService
	logger  Logger
}

func NewHandler(service PropertyService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/properties/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	propertyID, err := handlers.ParseIDVar(r, "id")
	if err != nil {
		h.logger.Warn("DELETE /properties/{id} - Invalid property ID: %v", err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidID, handlers.CodeInvalidID)
		return
	}

	resp, err := h.service.Delete(r.Context(), propertyID)
	if err != nil {
		switch {
		case errors.Is(err, properties.ErrPropertyNotFound):
			handlers.RespondKind(w, domain.KindNotFound, msgNotFound, codeNotFound)

		case errors.Is(err, properties.ErrPropertyHasBookings):
			handlers.RespondKind(w, domain.KindConflict, msgHasBookings, codeHasBookings)

		default:
			h.logger.Error("DELETE /properties/{id} - Failed to delete property: property_id=%d, error=%v", propertyID, err)
			handlers.RespondInternalError(w, err)
		}
		return
	}

	h.logger.Info("DELETE /properties/{id} - Property deleted: property_id=%d", propertyID)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
