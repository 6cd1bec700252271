package hostprofiles

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// ProfileRepository интерфейс репозитория профилей хозяев
type ProfileRepository interface {
	Create(ctx context.Context, p *domain.HostProfile) (*domain.HostProfile, error)
	GetByID(ctx context.Context, id int64) (*domain.HostProfile, error)
	GetByUserID(ctx context.Context, userID int64) (*domain.HostProfile, error)
	Update(ctx context.Context, id int64, patch domain.HostProfilePatch) (*domain.HostProfile, error)
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
