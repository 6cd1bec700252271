package create_host_profile

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/service/hostprofiles/models"
)

type HostProfileService interface {
	Create(ctx context.Context, req *models.CreateRequest) (*models.HostProfileResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
