package delete_user

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/service/users"
)

const (
	msgNotFound  = "User not found"
	codeNotFound = "USER_NOT_FOUND"
)

type Handler struct {
	service UserService
	logger  Logger
}

func NewHandler(service UserService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/users/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, err := handlers.ParseIDVar(r, "id")
	if err != nil {
		h.logger.Warn("DELETE /users/{id} - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidID, handlers.CodeInvalidID)
		return
	}

	resp, err := h.service.Delete(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, users.ErrUserNotFound):
			handlers.RespondKind(w, domain.KindNotFound, msgNotFound, codeNotFound)

		default:
			h.logger.Error("DELETE /users/{id} - Failed to delete user: id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w, err)
		}
		return
	}

	h.logger.Info("DELETE /users/{id} - User deleted: id=%d", userID)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
