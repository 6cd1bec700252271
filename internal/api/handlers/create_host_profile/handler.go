package create_host_profile

import (
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/service/hostprofiles"
	"github.com/m04kA/SMC-RentalService/internal/service/hostprofiles/models"
)

const (
	msgMissingUserID       = "userId is required"
	msgMissingLanguages    = "languages is required"
	msgMissingResponseTime = "responseTime is required"
	msgMissingResponseRate = "responseRate is required"
	msgInvalidUserID       = "userId must be a valid integer"
	msgUserNotFound        = "User does not exist"
	msgDuplicate           = "Host profile already exists for this user"
	msgInvalidLanguages    = "languages must be an array"
	msgInvalidRate         = "responseRate must be between 0 and 100"
	msgInvalidRating       = "averageRating must be between 0 and 5"
)

const (
	codeMissingUserID       = "MISSING_USER_ID"
	codeMissingLanguages    = "MISSING_LANGUAGES"
	codeMissingResponseTime = "MISSING_RESPONSE_TIME"
	codeMissingResponseRate = "MISSING_RESPONSE_RATE"
	codeInvalidUserID       = "INVALID_USER_ID"
	codeUserNotFound        = "USER_NOT_FOUND"
	codeDuplicate           = "DUPLICATE_PROFILE"
	codeInvalidLanguages    = "INVALID_LANGUAGES_FORMAT"
	codeInvalidResponseTime = "INVALID_RESPONSE_TIME"
	codeInvalidRate         = "INVALID_RESPONSE_RATE"
	codeInvalidRating       = "INVALID_AVERAGE_RATING"
	codeValidationFailed    = "VALIDATION_FAILED"
)

var msgInvalidResponseTime = "responseTime must be one of: " + strings.Join(domain.ResponseTimes, ", ")

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

// Handle POST /api/v1/host-profiles
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /host-profiles - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidRequestBody, handlers.CodeInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		var verr *hostprofiles.ValidationError

		switch {
		case errors.Is(err, hostprofiles.ErrMissingUserID):
			handlers.RespondKind(w, domain.KindMissingField, msgMissingUserID, codeMissingUserID)

		case errors.Is(err, hostprofiles.ErrMissingLanguages):
			handlers.RespondKind(w, domain.KindMissingField, msgMissingLanguages, codeMissingLanguages)

		case errors.Is(err, hostprofiles.ErrMissingResponseTime):
			handlers.RespondKind(w, domain.KindMissingField, msgMissingResponseTime, codeMissingResponseTime)

		case errors.Is(err, hostprofiles.ErrMissingResponseRate):
			handlers.RespondKind(w, domain.KindMissingField, msgMissingResponseRate, codeMissingResponseRate)

		case errors.Is(err, hostprofiles.ErrInvalidUserID):
			handlers.RespondKind(w, domain.KindInvalidFormat, msgInvalidUserID, codeInvalidUserID)

		case errors.Is(err, hostprofiles.ErrUserNotFound):
			handlers.RespondKind(w, domain.KindInvalidFormat, msgUserNotFound, codeUserNotFound)

		case errors.Is(err, hostprofiles.ErrDuplicateProfile):
			handlers.RespondKind(w, domain.KindConflict, msgDuplicate, codeDuplicate)

		case errors.Is(err, hostprofiles.ErrInvalidLanguages):
			handlers.RespondKind(w, domain.KindInvalidFormat, msgInvalidLanguages, codeInvalidLanguages)

		case errors.Is(err, hostprofiles.ErrInvalidResponseTime):
			handlers.RespondKind(w, domain.KindInvalidFormat, msgInvalidResponseTime, codeInvalidResponseTime)

		case errors.Is(err, hostprofiles.ErrInvalidResponseRate):
			handlers.RespondKind(w, domain.KindInvalidRange, msgInvalidRate, codeInvalidRate)

		case errors.Is(err, hostprofiles.ErrInvalidAverageRating):
			handlers.RespondKind(w, domain.KindInvalidRange, msgInvalidRating, codeInvalidRating)

		case errors.As(err, &verr):
			handlers.RespondKind(w, domain.KindInvalidRange, verr.Error(), codeValidationFailed)

		default:
			h.logger.Error("POST /host-profiles - Failed to create host profile: %v", err)
			handlers.RespondInternalError(w, err)
		}
		return
	}

	h.logger.Info("POST /host-profiles - Host profile created: id=%d, user_id=%d", result.ID, result.UserID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
