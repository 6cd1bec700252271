package update_availability

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/service/availability/models"
)

type AvailabilityService interface {
	Update(ctx context.Context, id int64, req *models.UpdateRequest) (*models.RecordResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
