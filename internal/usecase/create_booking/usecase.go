package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	propertyRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/property"
	availabilityService "github.com/m04kA/SMC-RentalService/internal/service/availability"
	"github.com/m04kA/SMC-RentalService/pkg/txmanager"
)

// UseCase use case для создания бронирования
type UseCase struct {
	propertyRepo  PropertyRepository
	bookingRepo   BookingRepository
	reserver      NightReserver
	txManager     TransactionManager
	reserveNights bool
	logger        Logger
}

// NewUseCase создает новый экземпляр use case.
// При reserveNights=true ночи бронирования помечаются недоступными в той же транзакции
func NewUseCase(
	propertyRepo PropertyRepository,
	bookingRepo BookingRepository,
	reserver NightReserver,
	txManager TransactionManager,
	reserveNights bool,
	logger Logger,
) *UseCase {
	return &UseCase{
		propertyRepo:  propertyRepo,
		bookingRepo:   bookingRepo,
		reserver:      reserver,
		txManager:     txManager,
		reserveNights: reserveNights,
		logger:        logger,
	}
}

// Execute выполняет use case создания бронирования.
// Все проверки выполняются до записи, частичных изменений не бывает
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация формата полей
	valid, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("CreateBooking: property=%d, guests=%d, email=%s",
		valid.propertyID, valid.guests, valid.guestEmail)

	// 2. Получаем объект
	property, err := uc.propertyRepo.GetByID(ctx, valid.propertyID)
	if err != nil {
		if errors.Is(err, propertyRepo.ErrPropertyNotFound) {
			uc.logger.Warn("CreateBooking: property id=%d not found", valid.propertyID)
			return nil, ErrPropertyNotFound
		}
		uc.logger.Error("CreateBooking: failed to get property id=%d: %v", valid.propertyID, err)
		return nil, fmt.Errorf("%w: failed to get property: %w", ErrInternal, err)
	}

	// 3. Проверяем вместимость
	if !property.CanAccommodate(valid.guests) {
		uc.logger.Warn("CreateBooking: %d guests exceed capacity %d of property id=%d",
			valid.guests, property.Guests, property.ID)
		return nil, &CapacityError{MaxGuests: property.Guests}
	}

	// 4. Разбираем даты
	checkIn, checkOut, err := validateDates(*req.CheckIn, *req.CheckOut)
	if err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 5. Стоимость: переданная клиентом используется как есть, иначе ночи * цена
	totalPrice := valid.totalPrice
	if totalPrice == 0 {
		totalPrice = domain.TotalPrice(checkIn, checkOut, property.Price)
	}

	booking := &domain.Booking{
		PropertyID: property.ID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Guests:     valid.guests,
		TotalPrice: totalPrice,
		GuestName:  valid.guestName,
		GuestEmail: valid.guestEmail,
	}

	// 6. Сохраняем
	var created *domain.Booking
	if uc.reserveNights {
		created, err = uc.createAndReserve(ctx, booking)
	} else {
		created, err = uc.create(ctx, booking)
	}
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, total_price=%d", created.ID, created.TotalPrice)

	return &Response{
		ID:         created.ID,
		PropertyID: created.PropertyID,
		CheckIn:    created.CheckIn,
		CheckOut:   created.CheckOut,
		Guests:     created.Guests,
		TotalPrice: created.TotalPrice,
		GuestName:  created.GuestName,
		GuestEmail: created.GuestEmail,
		CreatedAt:  created.CreatedAt,
	}, nil
}

// create одиночный INSERT без изменения календаря
func (uc *UseCase) create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	created, err := uc.bookingRepo.Create(ctx, booking)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to create booking: %v", err)
		return nil, fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
	}
	return created, nil
}

// createAndReserve в сериализуемой транзакции блокирует ночи бронирования,
// проверяет их доступность, сохраняет бронирование и закрывает ночи в календаре
func (uc *UseCase) createAndReserve(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	var result *domain.Booking

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		reserved, err := uc.reserver.ReserveNights(txCtx, booking.PropertyID, booking.CheckIn, booking.CheckOut)
		if err != nil {
			if errors.Is(err, availabilityService.ErrDatesUnavailable) {
				uc.logger.Warn("CreateBooking: dates unavailable for property id=%d: %v", booking.PropertyID, err)
				return ErrDatesUnavailable
			}
			if errors.Is(err, availabilityService.ErrStayTooLong) {
				uc.logger.Warn("CreateBooking: stay too long for property id=%d", booking.PropertyID)
				return ErrStayTooLong
			}
			uc.logger.Error("CreateBooking: failed to reserve nights: %v", err)
			return fmt.Errorf("%w: failed to reserve nights: %w", ErrInternal, err)
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}

		uc.logger.Info("CreateBooking: reserved %d nights for property id=%d", len(reserved), booking.PropertyID)
		result = created
		return nil
	})
	if err != nil {
		if errors.Is(err, txmanager.ErrSerializationFailure) {
			uc.logger.Warn("CreateBooking: serialization failure for property id=%d", booking.PropertyID)
			return nil, ErrConcurrentUpdate
		}
		if errors.Is(err, ErrDatesUnavailable) || errors.Is(err, ErrStayTooLong) || errors.Is(err, ErrInternal) {
			return nil, err
		}
		uc.logger.Error("CreateBooking: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: transaction failed: %w", ErrInternal, err)
	}

	return result, nil
}
