package reviews

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	propertyRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/property"
	reviewRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/review"
	"github.com/m04kA/SMC-RentalService/internal/service/reviews/models"
	"github.com/m04kA/SMC-RentalService/pkg/validate"
)

// Service сервис отзывов
type Service struct {
	reviewRepo   ReviewRepository
	propertyRepo PropertyRepository
	bookingRepo  BookingRepository
	userRepo     UserRepository
	validate     *validator.Validate
	defaultLimit int
	maxLimit     int
	logger       Logger
}

// NewService создает новый экземпляр сервиса отзывов
func NewService(
	reviewRepo ReviewRepository,
	propertyRepo PropertyRepository,
	bookingRepo BookingRepository,
	userRepo UserRepository,
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
		reviewRepo:   reviewRepo,
		propertyRepo: propertyRepo,
		bookingRepo:  bookingRepo,
		userRepo:     userRepo,
		validate:     validate.New(),
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
		logger:       logger,
	}
}

// Create проверяет оценки, существование объекта, пользователя и бронирования и сохраняет отзыв от имени userID
func (s *Service) Create(ctx context.Context, userID int64, req *models.CreateRequest) (*models.ReviewResponse, error) {
	// Наличие ссылок
	switch {
	case !req.PropertyID.IsSet():
		return nil, ErrMissingPropertyID
	case !req.BookingID.IsSet():
		return nil, ErrMissingBookingID
	}
	if !req.PropertyID.Valid() || req.PropertyID.Int64() <= 0 {
		return nil, ErrInvalidPropertyID
	}
	if !req.BookingID.Valid() || req.BookingID.Int64() <= 0 {
		return nil, ErrInvalidBookingID
	}

	// Оценки: сначала отсутствующие, затем диапазон
	if err := s.validateStruct(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	propertyID := req.PropertyID.Int64()
	if _, err := s.propertyRepo.GetByID(ctx, propertyID); err != nil {
		if errors.Is(err, propertyRepo.ErrPropertyNotFound) {
			s.logger.Warn("Create: property id=%d not found", propertyID)
			return nil, ErrPropertyNotFound
		}
		s.logger.Error("Create: failed to check property id=%d: %v", propertyID, err)
		return nil, fmt.Errorf("%w: Create - property lookup: %w", ErrInternal, err)
	}

	userExists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		s.logger.Error("Create: failed to check user id=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: Create - user lookup: %w", ErrInternal, err)
	}
	if !userExists {
		s.logger.Warn("Create: user id=%d not found", userID)
		return nil, ErrUserNotFound
	}

	bookingID := req.BookingID.Int64()
	exists, err := s.bookingRepo.Exists(ctx, bookingID)
	if err != nil {
		s.logger.Error("Create: failed to check booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Create - booking lookup: %w", ErrInternal, err)
	}
	if !exists {
		s.logger.Warn("Create: booking id=%d not found", bookingID)
		return nil, ErrBookingNotFound
	}

	s.logger.Info("Create: creating review for property=%d, booking=%d, user=%d", propertyID, bookingID, userID)

	created, err := s.reviewRepo.Create(ctx, req.ToDomain(userID))
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created review id=%d", created.ID)
	return models.FromDomainReview(created), nil
}

// GetByID получает отзыв по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ReviewResponse, error) {
	rv, err := s.reviewRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reviewRepo.ErrReviewNotFound) {
			s.logger.Warn("GetByID: review id=%d not found", id)
			return nil, ErrReviewNotFound
		}
		s.logger.Error("GetByID: repository error for review id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %w", ErrInternal, err)
	}

	return models.FromDomainReview(rv), nil
}

// List получает отзывы по объекту, пользователю и бронированию, сначала новые
func (s *Service) List(ctx context.Context, req *models.ListRequest) ([]*models.ReviewResponse, error) {
	filter := domain.ReviewsFilter{
		PropertyID: req.PropertyID,
		UserID:     req.UserID,
		BookingID:  req.BookingID,
		Limit:      req.Limit,
		Offset:     req.Offset,
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

	reviews, err := s.reviewRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d reviews", len(reviews))
	return models.FromDomainReviewList(reviews), nil
}

// Update меняет переданные оценки и комментарий
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateRequest) (*models.ReviewResponse, error) {
	if req.IsEmpty() {
		return nil, ErrNoFieldsToUpdate
	}
	if err := s.validateStruct(req); err != nil {
		s.logger.Warn("Update: validation failed for review id=%d: %v", id, err)
		return nil, err
	}

	rv, err := s.reviewRepo.Update(ctx, id, req.ToDomainPatch())
	if err != nil {
		if errors.Is(err, reviewRepo.ErrReviewNotFound) {
			s.logger.Warn("Update: review id=%d not found", id)
			return nil, ErrReviewNotFound
		}
		s.logger.Error("Update: repository error for review id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated review id=%d", rv.ID)
	return models.FromDomainReview(rv), nil
}

// Delete удаляет отзыв и возвращает удаленную запись
func (s *Service) Delete(ctx context.Context, id int64) (*models.DeleteResponse, error) {
	rv, err := s.reviewRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, reviewRepo.ErrReviewNotFound) {
			s.logger.Warn("Delete: review id=%d not found", id)
			return nil, ErrReviewNotFound
		}
		s.logger.Error("Delete: repository error for review id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Delete - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted review id=%d", rv.ID)
	return &models.DeleteResponse{
		Message: "Review deleted successfully",
		Review:  models.FromDomainReview(rv),
	}, nil
}

// validateStruct возвращает первое отсутствующее поле, иначе первую ошибку по порядку полей
func (s *Service) validateStruct(req interface{}) error {
	err := s.validate.Struct(req)
	if err == nil {
		return nil
	}
	fields := validate.Fields(err)
	if len(fields) == 0 {
		return fmt.Errorf("%w: validator: %w", ErrInternal, err)
	}
	for _, f := range fields {
		if f.Tag == "required" {
			return &ValidationError{FieldError: f}
		}
	}
	return &ValidationError{FieldError: fields[0]}
}
