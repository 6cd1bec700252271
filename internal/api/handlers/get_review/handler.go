package get_review

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

// Handle GET /api/v1/reviews/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reviewID, err := handlers.ParseIDVar(r, "id")
	if err != nil {
		h.logger.Warn("GET /reviews/{id} - Invalid review ID: %v", err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidID, handlers.CodeInvalidID)
		return
	}

	result, err := h.service.GetByID(r.Context(), reviewID)
	if err != nil {
		switch {
		case errors.Is(err, reviews.ErrReviewNotFound):
			handlers.RespondKind(w, domain.KindNotFound, msgNotFound, codeNotFound)

		default:
			h.logger.Error("GET /reviews/{id} - Failed to get review: id=%d, error=%v", reviewID, err)
			handlers.RespondInternalError(w, err)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
