package upsert_availability

import (
	"context"
	"errors"
	"fmt"

	propertyRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/property"
)

// UseCase use case для создания или обновления записи календаря по (объект, дата)
type UseCase struct {
	availabilityRepo AvailabilityRepository
	propertyRepo     PropertyRepository
	strictDates      bool
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	availabilityRepo AvailabilityRepository,
	propertyRepo PropertyRepository,
	strictDates bool,
	logger Logger,
) *UseCase {
	return &UseCase{
		availabilityRepo: availabilityRepo,
		propertyRepo:     propertyRepo,
		strictDates:      strictDates,
		logger:           logger,
	}
}

// Execute выполняет upsert. Решение "создать или обновить" принимает один запрос к БД,
// поэтому параллельные вызовы для одной пары (объект, дата) не создают дублей
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация формата
	rec, err := validateRequest(req, uc.strictDates)
	if err != nil {
		uc.logger.Warn("UpsertAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Существование объекта
	if _, err := uc.propertyRepo.GetByID(ctx, rec.PropertyID); err != nil {
		if errors.Is(err, propertyRepo.ErrPropertyNotFound) {
			uc.logger.Warn("UpsertAvailability: property id=%d not found", rec.PropertyID)
			return nil, ErrPropertyNotFound
		}
		uc.logger.Error("UpsertAvailability: failed to get property id=%d: %v", rec.PropertyID, err)
		return nil, fmt.Errorf("%w: failed to get property: %w", ErrInternal, err)
	}

	uc.logger.Info("UpsertAvailability: property=%d, date=%s, is_available=%t",
		rec.PropertyID, rec.Date, rec.IsAvailable)

	// 3. Атомарный upsert
	saved, created, err := uc.availabilityRepo.Upsert(ctx, rec)
	if err != nil {
		uc.logger.Error("UpsertAvailability: failed to upsert property=%d date=%s: %v", rec.PropertyID, rec.Date, err)
		return nil, fmt.Errorf("%w: failed to upsert record: %w", ErrInternal, err)
	}

	uc.logger.Info("UpsertAvailability: record id=%d, created=%t", saved.ID, created)

	return &Response{
		ID:          saved.ID,
		PropertyID:  saved.PropertyID,
		Date:        saved.Date,
		IsAvailable: saved.IsAvailable,
		Price:       saved.Price,
		Created:     created,
	}, nil
}
