package availability

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// AvailabilityRepository интерфейс репозитория календаря
type AvailabilityRepository interface {
	Update(ctx context.Context, id int64, patch domain.AvailabilityPatch) (*domain.AvailabilityRecord, error)
	Delete(ctx context.Context, id int64) (*domain.AvailabilityRecord, error)
	GetByDates(ctx context.Context, propertyID int64, dates []string) ([]*domain.AvailabilityRecord, error)
	MarkUnavailable(ctx context.Context, propertyID int64, dates []string) ([]*domain.AvailabilityRecord, error)
}

// PropertyRepository справочник объектов (только чтение)
type PropertyRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Property, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
