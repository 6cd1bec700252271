package update_property

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/service/properties"
	"github.com/m04kA/SMC-RentalService/internal/service/properties/models"
)

const (
	msgNoUpdates         = "At least one field must be provided"
	msgInvalidPrice      = "Price must be a positive number"
	msgInvalidRating     = "Rating must be between 0 and 5"
	msgNotFound          = "Property not found"
	codeNoUpdates        = "NO_UPDATES"
	codeInvalidPrice     = "INVALID_PRICE"
	codeInvalidRating    = "INVALID_RATING"
	codeValidationFailed = "VALIDATION_FAILED"
	codeNotFound         = "PROPERTY_NOT_FOUND"
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

// Handle PUT /api/v1/properties/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	propertyID, err := handlers.ParseIDVar(r, "id")
	if err != nil {
		h.logger.Warn("PUT /properties/{id} - Invalid property ID: %v", err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidID, handlers.CodeInvalidID)
		return
	}

	var req models.UpdateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /properties/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidRequestBody, handlers.CodeInvalidRequestBody)
		return
	}

	property, err := h.service.Update(r.Context(), propertyID, &req)
	if err != nil {
		var verr *properties.ValidationError

		switch {
		case errors.Is(err, properties.ErrNoFieldsToUpdate):
			handlers.RespondKind(w, domain.KindMissingField, msgNoUpdates, codeNoUpdates)

		case errors.Is(err, properties.ErrInvalidPrice):
			handlers.RespondKind(w, domain.KindInvalidRange, msgInvalidPrice, codeInvalidPrice)

		case errors.Is(err, properties.ErrInvalidRating):
			handlers.RespondKind(w, domain.KindInvalidRange, msgInvalidRating, codeInvalidRating)

		case errors.As(err, &verr):
			handlers.RespondKind(w, domain.KindInvalidFormat, verr.Error(), codeValidationFailed)

		case errors.Is(err, properties.ErrPropertyNotFound):
			handlers.RespondKind(w, domain.KindNotFound, msgNotFound, codeNotFound)

		default:
			h.logger.Error("PUT /properties/{id} - Failed to update property: property_id=%d, error=%v", propertyID, err)
			handlers.RespondInternalError(w, err)
		}
		return
	}

	h.logger.Info("PUT /properties/{id} - Property updated: property_id=%d", property.ID)
	handlers.RespondJSON(w, http.StatusOK, property)
}
