package reserve_availability

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/service/availability/models"
)

type AvailabilityService interface {
	Reserve(ctx context.Context, req *models.ReserveRequest) (*models.ReserveResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
