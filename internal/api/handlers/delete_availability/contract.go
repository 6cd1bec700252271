package delete_availability

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/service/availability/models"
)

type AvailabilityService interface {
	Delete(ctx context.Context, id int64) (*models.DeleteResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
