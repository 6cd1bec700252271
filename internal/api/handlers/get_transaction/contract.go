package get_transaction

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/service/transactions/models"
)

type TransactionService interface {
	GetByID(ctx context.Context, id int64) (*models.TransactionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
