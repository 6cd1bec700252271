package get_host_profile

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/service/hostprofiles"
)

const (
	msgNotFound  = "Host profile not found"
	codeNotFound = "PROFILE_NOT_FOUND"
)

type Handler struct {
	service HostProfileService
	logger  Logger
}

func NewHandler(service HostProfileService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/host-profiles/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	profileID, err := handlers.ParseIDVar(r, "id")
	if err != nil {
		h.logger.Warn("GET /host-profiles/{id} - Invalid profile ID: %v", err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidID, handlers.CodeInvalidID)
		return
	}

	result, err := h.service.GetByID(r.Context(), profileID)
	if err != nil {
		switch {
		case errors.Is(err, hostprofiles.ErrProfileNotFound):
			handlers.RespondKind(w, domain.KindNotFound, msgNotFound, codeNotFound)

		default:
			h.logger.Error("GET /host-profiles/{id} - Failed to get host profile: id=%d, error=%v", profileID, err)
			handlers.RespondInternalError(w, err)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
