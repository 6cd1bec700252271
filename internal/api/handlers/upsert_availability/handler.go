package upsert_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/domain"
	upsertAvailability "github.com/m04kA/SMC-RentalService/internal/usecase/upsert_availability"
)

const (
	msgMissingPropertyID  = "propertyId is required"
	msgMissingDate        = "date is required"
	msgMissingIsAvailable = "isAvailable is required"
	msgInvalidPropertyID  = "Valid propertyId is required"
	msgInvalidDateFormat  = "Invalid date format. Use YYYY-MM-DD"
	msgInvalidIsAvailable = "isAvailable must be a boolean"
	msgInvalidPrice       = "price must be a valid integer"
	msgPropertyNotFound   = "Property not found"
)

const (
	codeMissingPropertyID  = "MISSING_PROPERTY_ID"
	codeMissingDate        = "MISSING_DATE"
	codeMissingIsAvailable = "MISSING_IS_AVAILABLE"
	codeInvalidPropertyID  = "INVALID_PROPERTY_ID"
	codeInvalidDateFormat  = "INVALID_DATE_FORMAT"
	codeInvalidIsAvailable = "INVALID_IS_AVAILABLE"
	codeInvalidPrice       = "INVALID_PRICE"
	codePropertyNotFound   = "PROPERTY_NOT_FOUND"
)

type Handler struct {
	useCase UpsertAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase UpsertAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/property-availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req UpsertRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /property-availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidRequestBody, handlers.CodeInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, upsertAvailability.ErrMissingPropertyID):
			handlers.RespondKind(w, domain.KindMissingField, msgMissingPropertyID, codeMissingPropertyID)

		case errors.Is(err, upsertAvailability.ErrMissingDate):
			handlers.RespondKind(w, domain.KindMissingField, msgMissingDate, codeMissingDate)

		case errors.Is(err, upsertAvailability.ErrMissingIsAvailable):
			handlers.RespondKind(w, domain.KindMissingField, msgMissingIsAvailable, codeMissingIsAvailable)

		case errors.Is(err, upsertAvailability.ErrInvalidPropertyID):
			handlers.RespondKind(w, domain.KindInvalidFormat, msgInvalidPropertyID, codeInvalidPropertyID)

		case errors.Is(err, upsertAvailability.ErrInvalidDateFormat):
			handlers.RespondKind(w, domain.KindInvalidFormat, msgInvalidDateFormat, codeInvalidDateFormat)

		case errors.Is(err, upsertAvailability.ErrInvalidIsAvailable):
			handlers.RespondKind(w, domain.KindInvalidFormat, msgInvalidIsAvailable, codeInvalidIsAvailable)

		case errors.Is(err, upsertAvailability.ErrInvalidPrice):
			handlers.RespondKind(w, domain.KindInvalidFormat, msgInvalidPrice, codeInvalidPrice)

		case errors.Is(err, upsertAvailability.ErrPropertyNotFound):
			handlers.RespondKind(w, domain.KindNotFound, msgPropertyNotFound, codePropertyNotFound)

		default:
			h.logger.Error("POST /property-availability - Failed to upsert availability: %v", err)
			handlers.RespondInternalError(w, err)
		}
		return
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}

	h.logger.Info("POST /property-availability - Record saved: id=%d, created=%t", result.ID, result.Created)
	handlers.RespondJSON(w, status, FromUseCaseResponse(result))
}
