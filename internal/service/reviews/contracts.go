package reviews

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// ReviewRepository интерфейс репозитория отзывов
type ReviewRepository interface {
	Create(ctx context.Context, rv *domain.Review) (*domain.Review, error)
	GetByID(ctx context.Context, id int64) (*domain.Review, error)
	List(ctx context.Context, filter domain.ReviewsFilter) ([]*domain.Review, error)
	Update(ctx context.Context, id int64, patch domain.ReviewPatch) (*domain.Review, error)
	Delete(ctx context.Context, id int64) (*domain.Review, error)
}

// PropertyRepository проверка существования объекта
type PropertyRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Property, error)
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
