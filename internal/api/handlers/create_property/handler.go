package create_property

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/service/properties"
	"github.com/m04kA/SMC-RentalService/internal/service/properties/models"
)

const (
	msgMissingRequiredFields  = "Missing required fields"
	codeMissingRequiredFields = "MISSING_REQUIRED_FIELDS"
	codeValidationFailed      = "VALIDATION_FAILED"
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

// Handle POST /api/v1/properties
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /properties - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidRequestBody, handlers.CodeInvalidRequestBody)
		return
	}

	property, err := h.service.Create(r.Context(), &req)
	if err != nil {
		var verr *properties.ValidationError

		switch {
		case errors.Is(err, properties.ErrMissingRequiredFields):
			handlers.RespondKind(w, domain.KindMissingField, msgMissingRequiredFields, codeMissingRequiredFields)

		case errors.As(err, &verr):
			handlers.RespondKind(w, domain.KindInvalidFormat, verr.Error(), codeValidationFailed)

		default:
			h.logger.Error("POST /properties - Failed to create property: %v", err)
			handlers.RespondInternalError(w, err)
		}
		return
	}

	h.logger.Info("POST /properties - Property created: property_id=%d", property.ID)
	handlers.RespondJSON(w, http.StatusCreated, property)
}
