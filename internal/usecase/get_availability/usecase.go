package get_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	propertyRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/property"
)

// UseCase use case для получения календаря доступности объекта
type UseCase struct {
	availabilityRepo AvailabilityRepository
	propertyRepo     PropertyRepository
	strictDates      bool
	defaultLimit     int
	maxLimit         int
	logger           Logger
}

// NewUseCase создает новый экземпляр use case.
// strictDates=false проверяет у границ только форму YYYY-MM-DD
func NewUseCase(
	availabilityRepo AvailabilityRepository,
	propertyRepo PropertyRepository,
	strictDates bool,
	defaultLimit int,
	maxLimit int,
	logger Logger,
) *UseCase {
	if defaultLimit <= 0 {
		defaultLimit = domain.DefaultAvailabilityLimit
	}
	if maxLimit <= 0 {
		maxLimit = domain.MaxPageLimit
	}
	return &UseCase{
		availabilityRepo: availabilityRepo,
		propertyRepo:     propertyRepo,
		strictDates:      strictDates,
		defaultLimit:     defaultLimit,
		maxLimit:         maxLimit,
		logger:           logger,
	}
}

// Execute выполняет use case получения календаря
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. propertyId
	propertyID, err := parsePropertyID(req.PropertyID)
	if err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Существование объекта
	if _, err := uc.propertyRepo.GetByID(ctx, propertyID); err != nil {
		if errors.Is(err, propertyRepo.ErrPropertyNotFound) {
			uc.logger.Warn("GetAvailability: property id=%d not found", propertyID)
			return nil, ErrPropertyNotFound
		}
		uc.logger.Error("GetAvailability: failed to get property id=%d: %v", propertyID, err)
		return nil, fmt.Errorf("%w: failed to get property: %w", ErrInternal, err)
	}

	// 3. Границы диапазона
	if err := validateBounds(req, uc.strictDates); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	limit, offset := normalizePage(req.Limit, req.Offset, uc.defaultLimit, uc.maxLimit)

	uc.logger.Info("GetAvailability: property=%d, limit=%d, offset=%d", propertyID, limit, offset)

	// 4. Выборка
	records, err := uc.availabilityRepo.List(ctx, domain.AvailabilityFilter{
		PropertyID: propertyID,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		uc.logger.Error("GetAvailability: failed to list records for property id=%d: %v", propertyID, err)
		return nil, fmt.Errorf("%w: failed to list records: %w", ErrInternal, err)
	}

	resp := &Response{Records: make([]Record, 0, len(records))}
	for _, rec := range records {
		resp.Records = append(resp.Records, Record{
			ID:          rec.ID,
			PropertyID:  rec.PropertyID,
			Date:        rec.Date,
			IsAvailable: rec.IsAvailable,
			Price:       rec.Price,
		})
	}

	uc.logger.Info("GetAvailability: returned %d records for property=%d", len(resp.Records), propertyID)
	return resp, nil
}
