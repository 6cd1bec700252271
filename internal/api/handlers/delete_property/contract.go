package delete_property

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/service/properties/models"
)

type PropertyService interface {
	Delete(ctx context.Context, id int64) (*models.DeleteResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
