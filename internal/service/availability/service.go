package availability

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	availabilityRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/availability"
	propertyRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/property"
	"github.com/m04kA/SMC-RentalService/internal/service/availability/models"
	"github.com/m04kA/SMC-RentalService/pkg/txmanager"
)

// Service сервис записей календаря по id и резервирования диапазонов
type Service struct {
	availabilityRepo AvailabilityRepository
	propertyRepo     PropertyRepository
	txManager        TransactionManager
	logger           Logger
}

// NewService создает новый экземпляр сервиса календаря
func NewService(
	availabilityRepo AvailabilityRepository,
	propertyRepo PropertyRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		availabilityRepo: availabilityRepo,
		propertyRepo:     propertyRepo,
		txManager:        txManager,
		logger:           logger,
	}
}

// Update частично обновляет запись по id
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateRequest) (*models.RecordResponse, error) {
	if !req.IsAvailable.IsPresent() && !req.Price.IsPresent() {
		return nil, ErrNoFieldsToUpdate
	}

	var patch domain.AvailabilityPatch
	if req.IsAvailable.IsPresent() {
		if !req.IsAvailable.Valid() {
			return nil, ErrInvalidIsAvailable
		}
		v := req.IsAvailable.Bool()
		patch.IsAvailable = &v
	}
	if req.Price.IsPresent() {
		if req.Price.IsSet() && !req.Price.Valid() {
			return nil, ErrInvalidPrice
		}
		patch.PriceSet = true
		patch.Price = req.Price.Ptr()
	}

	s.logger.Info("Update: updating availability record id=%d", id)

	rec, err := s.availabilityRepo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, availabilityRepo.ErrRecordNotFound) {
			s.logger.Warn("Update: availability record id=%d not found", id)
			return nil, ErrRecordNotFound
		}
		s.logger.Error("Update: repository error for record id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated availability record id=%d", id)
	return models.FromDomainRecord(rec), nil
}

// Delete удаляет запись и возвращает её прежнее состояние
func (s *Service) Delete(ctx context.Context, id int64) (*models.DeleteResponse, error) {
	s.logger.Info("Delete: deleting availability record id=%d", id)

	rec, err := s.availabilityRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, availabilityRepo.ErrRecordNotFound) {
			s.logger.Warn("Delete: availability record id=%d not found", id)
			return nil, ErrRecordNotFound
		}
		s.logger.Error("Delete: repository error for record id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Delete - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted availability record id=%d", id)
	return &models.DeleteResponse{
		Message: "Availability record deleted successfully",
		Record:  models.FromDomainRecord(rec),
	}, nil
}

// Reserve проверяет запрос и резервирует ночи [checkIn, checkOut) объекта
func (s *Service) Reserve(ctx context.Context, req *models.ReserveRequest) (*models.ReserveResponse, error) {
	if !req.PropertyID.IsSet() || req.CheckIn == nil || *req.CheckIn == "" || req.CheckOut == nil || *req.CheckOut == "" {
		return nil, ErrMissingRequiredFields
	}
	if !req.PropertyID.Valid() {
		return nil, ErrInvalidPropertyID
	}
	propertyID := req.PropertyID.Int64()

	if _, err := s.propertyRepo.GetByID(ctx, propertyID); err != nil {
		if errors.Is(err, propertyRepo.ErrPropertyNotFound) {
			s.logger.Warn("Reserve: property id=%d not found", propertyID)
			return nil, ErrPropertyNotFound
		}
		s.logger.Error("Reserve: failed to get property id=%d: %v", propertyID, err)
		return nil, fmt.Errorf("%w: Reserve - property lookup: %w", ErrInternal, err)
	}

	checkIn, err := domain.ParseBookingDate(strings.TrimSpace(*req.CheckIn))
	if err != nil {
		return nil, ErrInvalidDate
	}
	checkOut, err := domain.ParseBookingDate(strings.TrimSpace(*req.CheckOut))
	if err != nil {
		return nil, ErrInvalidDate
	}
	if !checkOut.After(checkIn) {
		return nil, ErrInvalidDateRange
	}

	reserved, err := s.ReserveNights(ctx, propertyID, checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	return &models.ReserveResponse{
		PropertyID: propertyID,
		Nights:     models.FromDomainRecords(reserved),
	}, nil
}

// ReserveNights в сериализуемой транзакции блокирует записи ночей, проверяет,
// что ни одна не закрыта, и помечает все ночи недоступными.
// Если в контексте уже есть транзакция, выполняется в ней
func (s *Service) ReserveNights(ctx context.Context, propertyID int64, checkIn, checkOut time.Time) ([]*domain.AvailabilityRecord, error) {
	nights := domain.Nights(checkIn, checkOut)
	if nights == 0 {
		return nil, ErrInvalidDateRange
	}
	if nights > domain.MaxReservedNights {
		s.logger.Warn("ReserveNights: property=%d, %d nights exceed limit %d", propertyID, nights, domain.MaxReservedNights)
		return nil, ErrStayTooLong
	}
	dates := domain.NightDates(checkIn, checkOut)

	s.logger.Info("ReserveNights: property=%d, nights=%d, from=%s", propertyID, len(dates), dates[0])

	var reserved []*domain.AvailabilityRecord
	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		existing, err := s.availabilityRepo.GetByDates(txCtx, propertyID, dates)
		if err != nil {
			return fmt.Errorf("%w: ReserveNights - lock nights: %w", ErrInternal, err)
		}

		for _, rec := range existing {
			if !rec.IsAvailable {
				return fmt.Errorf("%w: %s", ErrDatesUnavailable, rec.Date)
			}
		}

		reserved, err = s.availabilityRepo.MarkUnavailable(txCtx, propertyID, dates)
		if err != nil {
			return fmt.Errorf("%w: ReserveNights - mark unavailable: %w", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrDatesUnavailable):
			s.logger.Warn("ReserveNights: property=%d: %v", propertyID, err)
			return nil, err
		case errors.Is(err, txmanager.ErrSerializationFailure):
			s.logger.Warn("ReserveNights: serialization failure for property=%d", propertyID)
			return nil, ErrConcurrentUpdate
		case errors.Is(err, ErrInternal):
			s.logger.Error("ReserveNights: property=%d: %v", propertyID, err)
			return nil, err
		default:
			s.logger.Error("ReserveNights: transaction failed for property=%d: %v", propertyID, err)
			return nil, fmt.Errorf("%w: ReserveNights - transaction: %w", ErrInternal, err)
		}
	}

	s.logger.Info("ReserveNights: reserved %d nights for property=%d", len(reserved), propertyID)
	return reserved, nil
}
