package list_transactions

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/service/transactions/models"
)

type TransactionService interface {
	List(ctx context.Context, req *models.ListRequest) ([]*models.TransactionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
