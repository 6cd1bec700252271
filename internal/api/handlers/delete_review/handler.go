package delete_review

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/service/reviews"
)

const (
	msgNotFound  = "Review not found"
	codeNotFound = "REVIEW_NOT_FOUND"
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

// Handle DELETE /api/v1/reviews/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reviewID, err := handlers.ParseIDVar(r, "id")
	if err != nil {
		h.logger.Warn("DELETE /reviews/{id} - Invalid review ID: %v", err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidID, handlers.CodeInvalidID)
		return
	}

	resp, err := h.service.Delete(r.Context(), reviewID)
	if err != nil {
		switch {
		case errors.Is(err, reviews.ErrReviewNotFound):
			handlers.RespondKind(w, domain.KindNotFound, msgNotFound, codeNotFound)

		default:
			h.logger.Error("DELETE /reviews/{id} - Failed to delete review: id=%d, error=%v", reviewID, err)
			handlers.RespondInternalError(w, err)
		}
		return
	}

	h.logger.Info("DELETE /reviews/{id} - Review deleted: id=%d", reviewID)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
