package update_host_profile

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
	msgNoUpdates            = "No fields to update"
	msgInvalidLanguages     = "languages must be an array"
	msgInvalidRate          = "responseRate must be between 0 and 100"
	msgInvalidRating        = "averageRating must be between 0 and 5"
	msgNotFound             = "Host profile not found"
	codeNoUpdates           = "NO_UPDATE_FIELDS"
	codeInvalidLanguages    = "INVALID_LANGUAGES_FORMAT"
	codeInvalidResponseTime = "INVALID_RESPONSE_TIME"
	codeInvalidRate         = "INVALID_RESPONSE_RATE"
	codeInvalidRating       = "INVALID_AVERAGE_RATING"
	codeValidationFailed    = "VALIDATION_FAILED"
	codeNotFound            = "PROFILE_NOT_FOUND"
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

// Handle PUT /api/v1/host-profiles/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	profileID, err := handlers.ParseIDVar(r, "id")
	if err != nil {
		h.logger.Warn("PUT /host-profiles/{id} - Invalid profile ID: %v", err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidID, handlers.CodeInvalidID)
		return
	}

	var req models.UpdateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /host-profiles/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidRequestBody, handlers.CodeInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), profileID, &req)
	if err != nil {
		var verr *hostprofiles.ValidationError

		switch {
		case errors.Is(err, hostprofiles.ErrNoFieldsToUpdate):
			handlers.RespondKind(w, domain.KindMissingField, msgNoUpdates, codeNoUpdates)

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

		case errors.Is(err, hostprofiles.ErrProfileNotFound):
			handlers.RespondKind(w, domain.KindNotFound, msgNotFound, codeNotFound)

		default:
			h.logger.Error("PUT /host-profiles/{id} - Failed to update host profile: id=%d, error=%v", profileID, err)
			handlers.RespondInternalError(w, err)
		}
		return
	}

	h.logger.Info("PUT /host-profiles/{id} - Host profile updated: id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
