package transactions

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// TransactionRepository интерфейс репозитория транзакций
type TransactionRepository interface {
	Create(ctx context.Context, t *domain.Transaction) (*domain.Transaction, error)
	GetByID(ctx context.Context, id int64) (*domain.Transaction, error)
	List(ctx context.Context, filter domain.TransactionsFilter) ([]*domain.Transaction, error)
	Update(ctx context.Context, id int64, patch domain.TransactionPatch) (*domain.Transaction, error)
}

// BookingRepository проверка существования бронирования
type BookingRepository interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// UserRepository проверка существования пользователя
type UserRepository interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
