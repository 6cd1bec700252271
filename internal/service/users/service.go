package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	userRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/user"
	"github.com/m04kA/SMC-RentalService/internal/service/users/models"
	"github.com/m04kA/SMC-RentalService/pkg/validate"
)

// Service сервис пользователей
type Service struct {
	userRepo     UserRepository
	validate     *validator.Validate
	defaultLimit int
	maxLimit     int
	logger       Logger
}

// NewService создает новый экземпляр сервиса пользователей
func NewService(userRepo UserRepository, defaultLimit, maxLimit int, logger Logger) *Service {
	if defaultLimit <= 0 {
		defaultLimit = domain.DefaultListLimit
	}
	if maxLimit <= 0 {
		maxLimit = domain.MaxPageLimit
	}
	return &Service{
		userRepo:     userRepo,
		validate:     validate.New(),
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
		logger:       logger,
	}
}

// Create регистрирует пользователя с нормализованным email
func (s *Service) Create(ctx context.Context, req *models.CreateRequest) (*models.UserResponse, error) {
	switch {
	case isBlank(req.Email):
		return nil, ErrMissingEmail
	case isBlank(req.Name):
		return nil, ErrMissingName
	case req.UserType == nil || *req.UserType == "":
		return nil, ErrMissingUserType
	}
	if !domain.IsValidEmail(domain.NormalizeEmail(*req.Email)) {
		return nil, ErrInvalidEmail
	}
	if !domain.UserType(*req.UserType).IsValid() {
		return nil, ErrInvalidUserType
	}
	if err := s.validateStruct(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	u := req.ToDomain()
	s.logger.Info("Create: creating user email=%s, type=%s", u.Email, u.UserType)

	created, err := s.userRepo.Create(ctx, u)
	if err != nil {
		if errors.Is(err, userRepo.ErrDuplicateEmail) {
			s.logger.Warn("Create: email %s already exists", u.Email)
			return nil, ErrDuplicateEmail
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created user id=%d", created.ID)
	return models.FromDomainUser(created), nil
}

// GetByID получает пользователя по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.UserResponse, error) {
	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("GetByID: user id=%d not found", id)
			return nil, ErrUserNotFound
		}
		s.logger.Error("GetByID: repository error for user id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %w", ErrInternal, err)
	}

	return models.FromDomainUser(u), nil
}

// List ищет пользователей по имени или email, сначала новые
func (s *Service) List(ctx context.Context, req *models.ListRequest) ([]*models.UserResponse, error) {
	filter := domain.UsersFilter{
		Verified: req.Verified,
		Limit:    req.Limit,
		Offset:   req.Offset,
	}
	if req.Search != nil && *req.Search != "" {
		filter.Search = req.Search
	}
	if req.UserType != nil && *req.UserType != "" {
		t := domain.UserType(*req.UserType)
		if !t.IsValid() {
			return nil, ErrInvalidUserType
		}
		filter.UserType = &t
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

	users, err := s.userRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d users", len(users))
	return models.FromDomainUserList(users), nil
}

// Update меняет профиль пользователя. Email и дата регистрации неизменяемы
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateRequest) (*models.UserResponse, error) {
	if req.HasForbiddenFields() {
		return nil, ErrForbiddenField
	}

	patch := req.ToDomainPatch()
	if patch.IsEmpty() {
		return nil, ErrNoFieldsToUpdate
	}
	if patch.UserType != nil && !patch.UserType.IsValid() {
		return nil, ErrInvalidUserType
	}
	if patch.Name != nil && *patch.Name == "" {
		return nil, ErrInvalidName
	}
	if err := s.validateStruct(req); err != nil {
		s.logger.Warn("Update: validation failed for user id=%d: %v", id, err)
		return nil, err
	}

	u, err := s.userRepo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Update: user id=%d not found", id)
			return nil, ErrUserNotFound
		}
		s.logger.Error("Update: repository error for user id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated user id=%d", u.ID)
	return models.FromDomainUser(u), nil
}

// Delete удаляет пользователя и возвращает удаленную запись
func (s *Service) Delete(ctx context.Context, id int64) (*models.DeleteResponse, error) {
	u, err := s.userRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Delete: user id=%d not found", id)
			return nil, ErrUserNotFound
		}
		s.logger.Error("Delete: repository error for user id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Delete - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted user id=%d", u.ID)
	return &models.DeleteResponse{
		Message: "User deleted successfully",
		User:    models.FromDomainUser(u),
	}, nil
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

func isBlank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}
