package update_user

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/service/users"
	"github.com/m04kA/SMC-RentalService/internal/service/users/models"
)

const (
	msgForbidden        = "Cannot update email or joinedAt fields"
	msgNoUpdates        = "At least one field must be provided"
	msgInvalidName      = "Name cannot be empty"
	msgInvalidUserType  = "Invalid userType. Must be one of: guest, host, both"
	msgNotFound         = "User not found"
	codeForbidden       = "FORBIDDEN_FIELD_UPDATE"
	codeNoUpdates       = "NO_UPDATES"
	codeInvalidName     = "INVALID_NAME"
	codeInvalidUserType = "INVALID_USER_TYPE"
	codeValidation      = "VALIDATION_FAILED"
	codeNotFound        = "USER_NOT_FOUND"
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

// Handle PUT /api/v1/users/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, err := handlers.ParseIDVar(r, "id")
	if err != nil {
		h.logger.Warn("PUT /users/{id} - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidID, handlers.CodeInvalidID)
		return
	}

	var req models.UpdateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /users/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidRequestBody, handlers.CodeInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), userID, &req)
	if err != nil {
		var verr *users.ValidationError

		switch {
		case errors.Is(err, users.ErrForbiddenField):
			handlers.RespondKind(w, domain.KindInvalidFormat, msgForbidden, codeForbidden)

		case errors.Is(err, users.ErrNoFieldsToUpdate):
			handlers.RespondKind(w, domain.KindMissingField, msgNoUpdates, codeNoUpdates)

		case errors.Is(err, users.ErrInvalidName):
			handlers.RespondKind(w, domain.KindInvalidFormat, msgInvalidName, codeInvalidName)

		case errors.Is(err, users.ErrInvalidUserType):
			handlers.RespondKind(w, domain.KindInvalidFormat, msgInvalidUserType, codeInvalidUserType)

		case errors.As(err, &verr):
			handlers.RespondKind(w, domain.KindInvalidFormat, verr.Error(), codeValidation)

		case errors.Is(err, users.ErrUserNotFound):
			handlers.RespondKind(w, domain.KindNotFound, msgNotFound, codeNotFound)

		default:
			h.logger.Error("PUT /users/{id} - Failed to update user: id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w, err)
		}
		return
	}

	h.logger.Info("PUT /users/{id} - User updated: id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
