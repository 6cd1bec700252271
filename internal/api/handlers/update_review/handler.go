package update_review

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/service/reviews"
	"github.com/m04kA/SMC-RentalService/internal/service/reviews/models"
)

const (
	msgNoUpdates         = "At least one field must be provided"
	msgNotFound          = "Review not found"
	codeNoUpdates        = "NO_UPDATES"
	codeInvalidRating    = "INVALID_RATING"
	codeValidationFailed = "VALIDATION_FAILED"
	codeNotFound         = "REVIEW_NOT_FOUND"
)

type Handler struct {
	service ReviewService
	logger  Logger
}

func NewHandler(service ReviewService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/reviews/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reviewID, err := handlers.ParseIDVar(r, "id")
	if err != nil {
		h.logger.Warn("PUT /reviews/{id} - Invalid review ID: %v", err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidID, handlers.CodeInvalidID)
		return
	}

	var req models.UpdateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /reviews/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidRequestBody, handlers.CodeInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), reviewID, &req)
	if err != nil {
		var verr *reviews.ValidationError

		switch {
		case errors.Is(err, reviews.ErrNoFieldsToUpdate):
			handlers.RespondKind(w, domain.KindMissingField, msgNoUpdates, codeNoUpdates)

		case errors.As(err, &verr) && errors.Is(err, reviews.ErrInvalidScore):
			handlers.RespondKind(w, domain.KindInvalidRange, verr.Error(), codeInvalidRating)

		case errors.As(err, &verr):
			handlers.RespondKind(w, domain.KindInvalidFormat, verr.Error(), codeValidationFailed)

		case errors.Is(err, reviews.ErrReviewNotFound):
			handlers.RespondKind(w, domain.KindNotFound, msgNotFound, codeNotFound)

		default:
			h.logger.Error("PUT /reviews/{id} - Failed to update review: id=%d, error=%v", reviewID, err)
			handlers.RespondInternalError(w, err)
		}
		return
	}

	h.logger.Info("PUT /reviews/{id} - Review updated: id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
