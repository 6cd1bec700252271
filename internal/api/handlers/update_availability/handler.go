package update_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/service/availability"
	"github.com/m04kA/SMC-RentalService/internal/service/availability/models"
)

const (
	msgNoFields           = "At least one field (isAvailable or price) must be provided"
	msgInvalidIsAvailable = "isAvailable must be a boolean"
	msgInvalidPrice       = "price must be a valid integer"
	msgNotFound           = "Availability record not found"
)

const (
	codeNoFields           = "NO_FIELDS_TO_UPDATE"
	codeInvalidIsAvailable = "INVALID_IS_AVAILABLE"
	codeInvalidPrice       = "INVALID_PRICE"
	codeNotFound           = "RECORD_NOT_FOUND"
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

// Handle PUT /api/v1/property-availability/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	recordID, err := handlers.ParseIDVar(r, "id")
	if err != nil {
		h.logger.Warn("PUT /property-availability/{id} - Invalid record ID: %v", err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidID, handlers.CodeInvalidID)
		return
	}

	var req models.UpdateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /property-availability/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidRequestBody, handlers.CodeInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), recordID, &req)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrNoFieldsToUpdate):
			handlers.RespondKind(w, domain.KindMissingField, msgNoFields, codeNoFields)

		case errors.Is(err, availability.ErrInvalidIsAvailable):
			handlers.RespondKind(w, domain.KindInvalidFormat, msgInvalidIsAvailable, codeInvalidIsAvailable)

		case errors.Is(err, availability.ErrInvalidPrice):
			handlers.RespondKind(w, domain.KindInvalidFormat, msgInvalidPrice, codeInvalidPrice)

		case errors.Is(err, availability.ErrRecordNotFound):
			h.logger.Warn("PUT /property-availability/{id} - Record not found: id=%d", recordID)
			handlers.RespondKind(w, domain.KindNotFound, msgNotFound, codeNotFound)

		default:
			h.logger.Error("PUT /property-availability/{id} - Failed to update record: id=%d, error=%v", recordID, err)
			handlers.RespondInternalError(w, err)
		}
		return
	}

	h.logger.Info("PUT /property-availability/{id} - Record updated: id=%d", recordID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
