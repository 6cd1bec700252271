package upsert_availability

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// AvailabilityRepository интерфейс репозитория календаря
type AvailabilityRepository interface {
	// Upsert создает или обновляет запись по (property_id, date) одним запросом.
	// created=true, если запись была создана
	Upsert(ctx context.Context, rec *domain.AvailabilityRecord) (*domain.AvailabilityRecord, bool, error)
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
