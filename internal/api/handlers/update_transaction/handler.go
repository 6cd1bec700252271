package update_transaction

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/service/transactions"
	"github.com/m04kA/SMC-RentalService/internal/service/transactions/models"
)

const (
	msgNoUpdates         = "At least one field (status or paymentMethod) must be provided"
	msgNotFound          = "Transaction not found"
	codeNoUpdates        = "NO_UPDATES"
	codeNotFound         = "TRANSACTION_NOT_FOUND"
	codeInvalidStatus    = "INVALID_STATUS"
	codeValidationFailed = "VALIDATION_FAILED"
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

// Handle PUT /api/v1/transactions/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	transactionID, err := handlers.ParseIDVar(r, "id")
	if err != nil {
		h.logger.Warn("PUT /transactions/{id} - Invalid transaction ID: %v", err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidID, handlers.CodeInvalidID)
		return
	}

	var req models.UpdateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /transactions/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidRequestBody, handlers.CodeInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), transactionID, &req)
	if err != nil {
		var verr *transactions.ValidationError

		switch {
		case errors.Is(err, transactions.ErrNoFieldsToUpdate):
			handlers.RespondKind(w, domain.KindMissingField, msgNoUpdates, codeNoUpdates)

		case errors.As(err, &verr) && errors.Is(err, transactions.ErrInvalidStatus):
			handlers.RespondKind(w, domain.KindInvalidFormat, verr.Error(), codeInvalidStatus)

		case errors.As(err, &verr):
			handlers.RespondKind(w, domain.KindInvalidFormat, verr.Error(), codeValidationFailed)

		case errors.Is(err, transactions.ErrTransactionNotFound):
			handlers.RespondKind(w, domain.KindNotFound, msgNotFound, codeNotFound)

		default:
			h.logger.Error("PUT /transactions/{id} - Failed to update transaction: id=%d, error=%v", transactionID, err)
			handlers.RespondInternalError(w, err)
		}
		return
	}

	h.logger.Info("PUT /transactions/{id} - Transaction updated: id=%d, status=%s", result.ID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}
