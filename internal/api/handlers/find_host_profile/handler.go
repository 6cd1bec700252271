package find_host_profile

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/service/hostprofiles"
)

const (
	msgInvalidUserID  = "Valid userId is required"
	msgNotFound       = "Host profile not found"
	codeInvalidUserID = "INVALID_USER_ID"
	codeNotFound      = "PROFILE_NOT_FOUND"
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

// Handle GET /api/v1/host-profiles?userId=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := handlers.QueryInt64(r, "userId")
	if !ok || userID == nil {
		handlers.RespondKind(w, domain.KindInvalidFormat, msgInvalidUserID, codeInvalidUserID)
		return
	}

	result, err := h.service.GetByUserID(r.Context(), *userID)
	if err != nil {
		switch {
		case errors.Is(err, hostprofiles.ErrProfileNotFound):
			handlers.RespondKind(w, domain.KindNotFound, msgNotFound, codeNotFound)

		default:
			h.logger.Error("GET /host-profiles - Failed to find host profile: user_id=%d, error=%v", *userID, err)
			handlers.RespondInternalError(w, err)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
