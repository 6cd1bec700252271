package list_transactions

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/service/transactions"
	"github.com/m04kA/SMC-RentalService/internal/service/transactions/models"
)

const (
	msgInvalidBookingID  = "Valid bookingId is required"
	msgInvalidUserID     = "Valid userId is required"
	msgInvalidStatus     = "status must be one of: pending, completed, refunded, failed"
	codeInvalidBookingID = "INVALID_BOOKING_ID"
	codeInvalidUserID    = "INVALID_USER_ID"
	codeInvalidStatus    = "INVALID_STATUS"
)

type Handler struct {
	service      TransactionService
	defaultLimit int
	maxLimit     int
	logger       Logger
}

func NewHandler(service TransactionService, defaultLimit, maxLimit int, logger Logger) *Handler {
	return &Handler{
		service:      service,
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
		logger:       logger,
	}
}

// Handle GET /api/v1/transactions?bookingId=&userId=&status=&limit=&offset=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, ok := handlers.QueryInt64(r, "bookingId")
	if !ok {
		handlers.RespondKind(w, domain.KindInvalidFormat, msgInvalidBookingID, codeInvalidBookingID)
		return
	}
	userID, ok := handlers.QueryInt64(r, "userId")
	if !ok {
		handlers.RespondKind(w, domain.KindInvalidFormat, msgInvalidUserID, codeInvalidUserID)
		return
	}

	req := &models.ListRequest{
		BookingID: bookingID,
		UserID:    userID,
		Status:    handlers.QueryString(r, "status"),
	}
	req.Limit, req.Offset = handlers.ParsePagination(r, h.defaultLimit, h.maxLimit)

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, transactions.ErrInvalidStatus):
			handlers.RespondKind(w, domain.KindInvalidFormat, msgInvalidStatus, codeInvalidStatus)

		default:
			h.logger.Error("GET /transactions - Failed to list transactions: %v", err)
			handlers.RespondInternalError(w, err)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
