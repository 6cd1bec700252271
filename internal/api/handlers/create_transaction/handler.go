package create_transaction

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/api/middleware"
	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/service/transactions"
	"github.com/m04kA/SMC-RentalService/internal/service/transactions/models"
)

const (
	msgMissingUserID   = "User identity is required"
	msgBookingID       = "bookingId is required"
	msgAmount          = "amount is required"
	msgStatus          = "status is required"
	msgInvalidBooking  = "Valid bookingId is required"
	msgInvalidAmount   = "amount must be a positive integer"
	msgBookingNotFound = "Booking not found"
	msgUserNotFound    = "User not found"
	msgDuplicate       = "transactionId already exists"
)

const (
	codeMissingBookingID     = "MISSING_BOOKING_ID"
	codeMissingAmount        = "MISSING_AMOUNT"
	codeMissingStatus        = "MISSING_STATUS"
	codeInvalidBookingID     = "INVALID_BOOKING_ID"
	codeInvalidAmount        = "INVALID_AMOUNT"
	codeInvalidStatus        = "INVALID_STATUS"
	codeValidationFailed     = "VALIDATION_FAILED"
	codeBookingNotFound      = "BOOKING_NOT_FOUND"
	codeUserNotFound         = "USER_NOT_FOUND"
	codeDuplicateTransaction = "DUPLICATE_TRANSACTION_ID"
)

type Handler struct {
	service TransactionService
	logger  Logger
}

func NewHandler(service TransactionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/transactions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /transactions - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.CreateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /transactions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidRequestBody, handlers.CodeInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		var verr *transactions.ValidationError

		switch {
		case errors.Is(err, transactions.ErrMissingBookingID):
			handlers.RespondKind(w, domain.KindMissingField, msgBookingID, codeMissingBookingID)

		case errors.Is(err, transactions.ErrMissingAmount):
			handlers.RespondKind(w, domain.KindMissingField, msgAmount, codeMissingAmount)

		case errors.Is(err, transactions.ErrMissingStatus):
			handlers.RespondKind(w, domain.KindMissingField, msgStatus, codeMissingStatus)

		case errors.Is(err, transactions.ErrInvalidBookingID):
			handlers.RespondKind(w, domain.KindInvalidFormat, msgInvalidBooking, codeInvalidBookingID)

		case errors.Is(err, transactions.ErrInvalidAmount):
			handlers.RespondKind(w, domain.KindInvalidFormat, msgInvalidAmount, codeInvalidAmount)

		case errors.As(err, &verr) && errors.Is(err, transactions.ErrInvalidStatus):
			handlers.RespondKind(w, domain.KindInvalidFormat, verr.Error(), codeInvalidStatus)

		case errors.As(err, &verr):
			handlers.RespondKind(w, domain.KindInvalidFormat, verr.Error(), codeValidationFailed)

		case errors.Is(err, transactions.ErrBookingNotFound):
			// ссылка на несуществующее бронирование - ошибка запроса, а не 404 ресурса
			handlers.RespondBadRequest(w, msgBookingNotFound, codeBookingNotFound)

		case errors.Is(err, transactions.ErrUserNotFound):
			handlers.RespondBadRequest(w, msgUserNotFound, codeUserNotFound)

		case errors.Is(err, transactions.ErrDuplicateTransactionID):
			handlers.RespondKind(w, domain.KindConflict, msgDuplicate, codeDuplicateTransaction)

		default:
			h.logger.Error("POST /transactions - Failed to create transaction: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w, err)
		}
		return
	}

	h.logger.Info("POST /transactions - Transaction created: id=%d, user_id=%d", result.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
