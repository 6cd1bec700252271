package update_transaction

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/service/transactions/models"
)

type TransactionService interface {
	Update(ctx context.Context, id int64, req *models.UpdateRequest) (*models.TransactionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
