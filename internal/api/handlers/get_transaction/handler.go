package get_transaction

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/service/transactions"
)

const (
	msgNotFound  = "Transaction not found"
	codeNotFound = "TRANSACTION_NOT_FOUND"
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

// Handle GET /api/v1/transactions/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	transactionID, err := handlers.ParseIDVar(r, "id")
	if err != nil {
		h.logger.Warn("GET /transactions/{id} - Invalid transaction ID: %v", err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidID, handlers.CodeInvalidID)
		return
	}

	result, err := h.service.GetByID(r.Context(), transactionID)
	if err != nil {
		switch {
		case errors.Is(err, transactions.ErrTransactionNotFound):
			handlers.RespondKind(w, domain.KindNotFound, msgNotFound, codeNotFound)

		default:
			h.logger.Error("GET /transactions/{id} - Failed to get transaction: id=%d, error=%v", transactionID, err)
			handlers.RespondInternalError(w, err)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
