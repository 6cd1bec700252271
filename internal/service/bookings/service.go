package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-RentalService/internal/service/bookings/models"
)

// Service сервис чтения и удаления бронирований
type Service struct {
	bookingRepo  BookingRepository
	defaultLimit int
	maxLimit     int
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	defaultLimit int,
	maxLimit int,
	logger Logger,
) *Service {
	if defaultLimit <= 0 {
		defaultLimit = domain.DefaultListLimit
	}
	if maxLimit <= 0 {
		maxLimit = domain.MaxPageLimit
	}
	return &Service{
		bookingRepo:  bookingRepo,
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
		logger:       logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// List получает бронирования по фильтрам. Email гостя сравнивается в нормализованном виде
func (s *Service) List(ctx context.Context, req *models.ListRequest) ([]*models.BookingResponse, error) {
	filter := domain.BookingsFilter{
		PropertyID: req.PropertyID,
		Limit:      req.Limit,
		Offset:     req.Offset,
	}
	if req.GuestEmail != nil {
		email := domain.NormalizeEmail(*req.GuestEmail)
		filter.GuestEmail = &email
	}
	if filter.Limit <= 0 {
		filter.Limit = s.defaultLimit
	}
	if filter.Limit > s.maxLimit {
		filter.Limit = s.maxLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	s.logger.Info("List: fetching bookings, limit=%d, offset=%d", filter.Limit, filter.Offset)

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// Delete удаляет бронирование. Записи календаря не затрагиваются
func (s *Service) Delete(ctx context.Context, id int64) (*models.DeleteResponse, error) {
	s.logger.Info("Delete: deleting booking id=%d", id)

	deletedID, err := s.bookingRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Delete - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted booking id=%d", deletedID)
	return &models.DeleteResponse{
		Message: "Booking deleted successfully",
		ID:      deletedID,
	}, nil
}
