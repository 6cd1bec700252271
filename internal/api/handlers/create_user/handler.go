package create_user

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/service/users"
	"github.com/m04kA/SMC-RentalService/internal/service/users/models"
)

const (
	msgMissingEmail    = "Email is required"
	msgMissingName     = "Name is required"
	msgMissingUserType = "UserType is required"
	msgInvalidEmail    = "Invalid email format"
	msgInvalidUserType = "Invalid userType. Must be one of: guest, host, both"
	msgDuplicateEmail  = "Email already exists"
)

const (
	codeMissingEmail     = "MISSING_EMAIL"
	codeMissingName      = "MISSING_NAME"
	codeMissingUserType  = "MISSING_USER_TYPE"
	codeInvalidEmail     = "INVALID_EMAIL_FORMAT"
	codeInvalidUserType  = "INVALID_USER_TYPE"
	codeDuplicateEmail   = "DUPLICATE_EMAIL"
	codeValidationFailed = "VALIDATION_FAILED"
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

// Handle POST /api/v1/users
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /users - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidRequestBody, handlers.CodeInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		var verr *users.ValidationError

		switch {
		case errors.Is(err, users.ErrMissingEmail):
			handlers.RespondKind(w, domain.KindMissingField, msgMissingEmail, codeMissingEmail)

		case errors.Is(err, users.ErrMissingName):
			handlers.RespondKind(w, domain.KindMissingField, msgMissingName, codeMissingName)

		case errors.Is(err, users.ErrMissingUserType):
			handlers.RespondKind(w, domain.KindMissingField, msgMissingUserType, codeMissingUserType)

		case errors.Is(err, users.ErrInvalidEmail):
			handlers.RespondKind(w, domain.KindInvalidFormat, msgInvalidEmail, codeInvalidEmail)

		case errors.Is(err, users.ErrInvalidUserType):
			handlers.RespondKind(w, domain.KindInvalidFormat, msgInvalidUserType, codeInvalidUserType)

		case errors.As(err, &verr):
			handlers.RespondKind(w, domain.KindInvalidFormat, verr.Error(), codeValidationFailed)

		case errors.Is(err, users.ErrDuplicateEmail):
			handlers.RespondKind(w, domain.KindConflict, msgDuplicateEmail, codeDuplicateEmail)

		default:
			h.logger.Error("POST /users - Failed to create user: %v", err)
			handlers.RespondInternalError(w, err)
		}
		return
	}

	h.logger.Info("POST /users - User created: id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
