package transactions

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	transactionRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/transaction"
	"github.com/m04kA/SMC-RentalService/internal/service/transactions/models"
	"github.com/m04kA/SMC-RentalService/pkg/validate"
)

// Service сервис платежных транзакций
type Service struct {
	transactionRepo TransactionRepository
	bookingRepo     BookingRepository
	userRepo        UserRepository
	validate        *validator.Validate
	defaultLimit    int
	maxLimit        int
	logger          Logger
}

// NewService создает новый экземпляр сервиса транзакций
func NewService(
	transactionRepo TransactionRepository,
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
		transactionRepo: transactionRepo,
		bookingRepo:     bookingRepo,
		userRepo:        userRepo,
		validate:        validate.New(),
		defaultLimit:    defaultLimit,
		maxLimit:        maxLimit,
		logger:          logger,
	}
}

// Create проверяет запрос, существование бронирования и пользователя и сохраняет транзакцию от имени userID
func (s *Service) Create(ctx context.Context, userID int64, req *models.CreateRequest) (*models.TransactionResponse, error) {
	// Наличие полей
	switch {
	case !req.BookingID.IsSet():
		return nil, ErrMissingBookingID
	case !req.Amount.IsSet():
		return nil, ErrMissingAmount
	case req.Status == nil || *req.Status == "":
		return nil, ErrMissingStatus
	}

	// Формат
	if !req.BookingID.Valid() || req.BookingID.Int64() <= 0 {
		return nil, ErrInvalidBookingID
	}
	if !req.Amount.Valid() || req.Amount.Int64() <= 0 {
		return nil, ErrInvalidAmount
	}
	if err := s.validateStruct(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
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

	userExists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		s.logger.Error("Create: failed to check user id=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: Create - user lookup: %w", ErrInternal, err)
	}
	if !userExists {
		s.logger.Warn("Create: user id=%d not found", userID)
		return nil, ErrUserNotFound
	}

	s.logger.Info("Create: creating transaction for booking=%d, user=%d, amount=%d",
		bookingID, userID, req.Amount.Int64())

	created, err := s.transactionRepo.Create(ctx, req.ToDomain(userID))
	if err != nil {
		if errors.Is(err, transactionRepo.ErrDuplicateTransactionID) {
			s.logger.Warn("Create: duplicate transactionId for booking=%d", bookingID)
			return nil, ErrDuplicateTransactionID
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created transaction id=%d", created.ID)
	return models.FromDomainTransaction(created), nil
}

// GetByID получает транзакцию по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.TransactionResponse, error) {
	t, err := s.transactionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, transactionRepo.ErrTransactionNotFound) {
			s.logger.Warn("GetByID: transaction id=%d not found", id)
			return nil, ErrTransactionNotFound
		}
		s.logger.Error("GetByID: repository error for transaction id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %w", ErrInternal, err)
	}

	return models.FromDomainTransaction(t), nil
}

// List получает транзакции по фильтрам, сначала новые
func (s *Service) List(ctx context.Context, req *models.ListRequest) ([]*models.TransactionResponse, error) {
	filter := domain.TransactionsFilter{
		BookingID: req.BookingID,
		UserID:    req.UserID,
		Limit:     req.Limit,
		Offset:    req.Offset,
	}
	if req.Status != nil && *req.Status != "" {
		status := domain.TransactionStatus(*req.Status)
		if !status.IsValid() {
			return nil, ErrInvalidStatus
		}
		filter.Status = &status
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

	transactions, err := s.transactionRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d transactions", len(transactions))
	return models.FromDomainTransactionList(transactions), nil
}

// Update меняет статус и/или способ оплаты
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateRequest) (*models.TransactionResponse, error) {
	if req.Status == nil && req.PaymentMethod == nil {
		return nil, ErrNoFieldsToUpdate
	}
	if err := s.validateStruct(req); err != nil {
		s.logger.Warn("Update: validation failed for transaction id=%d: %v", id, err)
		return nil, err
	}

	t, err := s.transactionRepo.Update(ctx, id, req.ToDomainPatch())
	if err != nil {
		if errors.Is(err, transactionRepo.ErrTransactionNotFound) {
			s.logger.Warn("Update: transaction id=%d not found", id)
			return nil, ErrTransactionNotFound
		}
		s.logger.Error("Update: repository error for transaction id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated transaction id=%d, status=%s", t.ID, t.Status)
	return models.FromDomainTransaction(t), nil
}

func (s *Service) validateStruct(req interface{}) error {
	err := s.validate.Struct(req)
	if err == nil {
		return nil
	}
	fields := validate.Fields(err)
	if len(fields) == 0 {
		return fmt.Errorf("%w: validator: %w", ErrInternal, err)
	}
	return &ValidationError{FieldError: fields[0]}
}
