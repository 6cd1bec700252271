package get_availability

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// AvailabilityRepository интерфейс репозитория календаря
type AvailabilityRepository interface {
	// List записи объекта в диапазоне дат, по возрастанию даты
	List(ctx context.Context, filter domain.AvailabilityFilter) ([]*domain.AvailabilityRecord, error)
}

// PropertyRepository справочник объектов (только чтение)
type PropertyRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Property, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
