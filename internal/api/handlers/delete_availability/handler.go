package delete_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/service/availability"
)

const (
	msgNotFound  = "Availability record not found"
	codeNotFound = "RECORD_NOT_FOUND"
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

// Handle DELETE /api/v1/property-availability/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	recordID, err := handlers.ParseIDVar(r, "id")
	if err != nil {
		h.logger.Warn("DELETE /property-availability/{id} - Invalid record ID: %v", err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidID, handlers.CodeInvalidID)
		return
	}

	result, err := h.service.Delete(r.Context(), recordID)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrRecordNotFound):
			h.logger.Warn("DELETE /property-availability/{id} - Record not found: id=%d", recordID)
			handlers.RespondKind(w, domain.KindNotFound, msgNotFound, codeNotFound)

		default:
			h.logger.Error("DELETE /property-availability/{id} - Failed to delete record: id=%d, error=%v", recordID, err)
			handlers.RespondInternalError(w, err)
		}
		return
	}

	h.logger.Info("DELETE /property-availability/{id} - Record deleted: id=%d", recordID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
