package create_property

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/service/properties/models"
)

type PropertyService interface {
	Create(ctx context.Context, req *models.CreateRequest) (*models.PropertyResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
