package properties

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// PropertyRepository интерфейс репозитория объектов
type PropertyRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Property, error)
	List(ctx context.Context, filter domain.PropertyFilter) ([]*domain.Property, error)
	Create(ctx context.Context, p *domain.Property) (*domain.Property, error)
	Update(ctx context.Context, id int64, patch domain.PropertyPatch) (*domain.Property, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
