package hostprofiles

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	hostProfileRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/hostprofile"
	"github.com/m04kA/SMC-RentalService/internal/service/hostprofiles/models"
	"github.com/m04kA/SMC-RentalService/pkg/types"
	"github.com/m04kA/SMC-RentalService/pkg/validate"
)

const maxResponseRate = 100

// Service сервис профилей хозяев
type Service struct {
	profileRepo ProfileRepository
	userRepo    UserRepository
	validate    *validator.Validate
	logger      Logger
}

// NewService создает новый экземпляр сервиса профилей
func NewService(profileRepo ProfileRepository, userRepo UserRepository, logger Logger) *Service {
	return &Service{
		profileRepo: profileRepo,
		userRepo:    userRepo,
		validate:    validate.New(),
		logger:      logger,
	}
}

// Create создает профиль хозяина. У пользователя не больше одного профиля
func (s *Service) Create(ctx context.Context, req *models.CreateRequest) (*models.HostProfileResponse, error) {
	switch {
	case !req.UserID.IsSet():
		return nil, ErrMissingUserID
	case models.IsNullOrAbsent(req.Languages):
		return nil, ErrMissingLanguages
	case req.ResponseTime == nil || *req.ResponseTime == "":
		return nil, ErrMissingResponseTime
	case !req.ResponseRate.IsSet():
		return nil, ErrMissingResponseRate
	}
	if !req.UserID.Valid() || req.UserID.Int64() <= 0 {
		return nil, ErrInvalidUserID
	}

	userID := req.UserID.Int64()
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		s.logger.Error("Create: failed to check user id=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: Create - user lookup: %w", ErrInternal, err)
	}
	if !exists {
		s.logger.Warn("Create: user id=%d not found", userID)
		return nil, ErrUserNotFound
	}

	languages, err := models.ParseLanguages(req.Languages)
	if err != nil {
		return nil, ErrInvalidLanguages
	}
	responseTime, err := parseResponseTime(*req.ResponseTime)
	if err != nil {
		return nil, err
	}
	rate, err := parseResponseRate(req.ResponseRate)
	if err != nil {
		return nil, err
	}
	if err := s.validateStruct(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	profile := &domain.HostProfile{
		UserID:       userID,
		Languages:    languages,
		ResponseTime: responseTime,
		ResponseRate: rate,
	}
	if req.SuperhostStatus != nil {
		profile.SuperhostStatus = *req.SuperhostStatus
	}
	if req.PropertyCount != nil {
		profile.PropertyCount = *req.PropertyCount
	}
	if req.TotalReviews != nil {
		profile.TotalReviews = *req.TotalReviews
	}
	if req.AverageRating != nil {
		profile.AverageRating = *req.AverageRating
	}

	s.logger.Info("Create: creating host profile for user=%d", userID)

	created, err := s.profileRepo.Create(ctx, profile)
	if err != nil {
		switch {
		case errors.Is(err, hostProfileRepo.ErrDuplicateProfile):
			s.logger.Warn("Create: user id=%d already has a profile", userID)
			return nil, ErrDuplicateProfile
		case errors.Is(err, hostProfileRepo.ErrUserNotFound):
			s.logger.Warn("Create: user id=%d removed before insert", userID)
			return nil, ErrUserNotFound
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created host profile id=%d", created.ID)
	return models.FromDomainHostProfile(created), nil
}

// GetByID получает профиль по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.HostProfileResponse, error) {
	p, err := s.profileRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.lookupError("GetByID", id, err)
	}
	return models.FromDomainHostProfile(p), nil
}

// GetByUserID получает профиль пользователя
func (s *Service) GetByUserID(ctx context.Context, userID int64) (*models.HostProfileResponse, error) {
	p, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, s.lookupError("GetByUserID", userID, err)
	}
	return models.FromDomainHostProfile(p), nil
}

// Update меняет переданные поля профиля
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateRequest) (*models.HostProfileResponse, error) {
	if req.IsEmpty() {
		return nil, ErrNoFieldsToUpdate
	}

	patch := domain.HostProfilePatch{
		SuperhostStatus: req.SuperhostStatus,
		PropertyCount:   req.PropertyCount,
		TotalReviews:    req.TotalReviews,
		AverageRating:   req.AverageRating,
	}
	if req.Languages != nil {
		languages, err := models.ParseLanguages(req.Languages)
		if err != nil {
			return nil, ErrInvalidLanguages
		}
		patch.Languages = languages
	}
	if req.ResponseTime != nil {
		responseTime, err := parseResponseTime(*req.ResponseTime)
		if err != nil {
			return nil, err
		}
		patch.ResponseTime = &responseTime
	}
	if req.ResponseRate.IsPresent() {
		rate, err := parseResponseRate(req.ResponseRate)
		if err != nil {
			return nil, err
		}
		patch.ResponseRate = &rate
	}
	if err := s.validateStruct(req); err != nil {
		s.logger.Warn("Update: validation failed for profile id=%d: %v", id, err)
		return nil, err
	}

	p, err := s.profileRepo.Update(ctx, id, patch)
	if err != nil {
		return nil, s.lookupError("Update", id, err)
	}

	s.logger.Info("Update: successfully updated host profile id=%d", p.ID)
	return models.FromDomainHostProfile(p), nil
}

func (s *Service) lookupError(method string, id int64, err error) error {
	if errors.Is(err, hostProfileRepo.ErrProfileNotFound) {
		s.logger.Warn("%s: host profile %d not found", method, id)
		return ErrProfileNotFound
	}
	s.logger.Error("%s: repository error for host profile %d: %v", method, id, err)
	return fmt.Errorf("%w: %s - repository error: %w", ErrInternal, method, err)
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

func parseResponseTime(raw string) (string, error) {
	responseTime := strings.TrimSpace(raw)
	if !slices.Contains(domain.ResponseTimes, responseTime) {
		return "", ErrInvalidResponseTime
	}
	return responseTime, nil
}

// parseResponseRate null и дробные значения отклоняются
func parseResponseRate(rate types.FlexInt) (int, error) {
	if !rate.Valid() || rate.Int64() < 0 || rate.Int64() > maxResponseRate {
		return 0, ErrInvalidResponseRate
	}
	return int(rate.Int64()), nil
}
