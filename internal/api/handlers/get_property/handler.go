package get_property

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/service/properties"
)

const (
	msgNotFound  = "Property not found"
	codeNotFound = "PROPERTY_NOT_FOUND"
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

// Handle GET /api/v1/properties/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	propertyID, err := handlers.ParseIDVar(r, "id")
	if err != nil {
		h.logger.Warn("GET /properties/{id} - Invalid property ID: %v", err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidID, handlers.CodeInvalidID)
		return
	}

	property, err := h.service.GetByID(r.Context(), propertyID)
	if err != nil {
		switch {
		case errors.Is(err, properties.ErrPropertyNotFound):
			h.logger.Warn("GET /properties/{id} - Property not found: property_id=%d", propertyID)
			handlers.RespondKind(w, domain.KindNotFound, msgNotFound, codeNotFound)

		default:
			h.logger.Error("GET /properties/{id} - Failed to get property: property_id=%d, error=%v", propertyID, err)
			handlers.RespondInternalError(w, err)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, property)
}
