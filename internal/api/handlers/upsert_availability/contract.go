package upsert_availability

import (
	"context"

	upsertAvailability "github.com/m04kA/SMC-RentalService/internal/usecase/upsert_availability"
)

type UpsertAvailabilityUseCase interface {
	Execute(ctx context.Context, req *upsertAvailability.Request) (*upsertAvailability.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
