package properties

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	propertyRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/property"
	"github.com/m04kA/SMC-RentalService/internal/service/properties/models"
	"github.com/m04kA/SMC-RentalService/pkg/validate"
)

// textFields обязательные текстовые поля, их отсутствие - MISSING_REQUIRED_FIELDS
var textFields = map[string]struct{}{
	"title":       {},
	"description": {},
	"location":    {},
	"hostName":    {},
	"hostAvatar":  {},
}

// Service сервис справочника объектов
type Service struct {
	propertyRepo PropertyRepository
	validate     *validator.Validate
	defaultLimit int
	maxLimit     int
	logger       Logger
}

// NewService создает новый экземпляр сервиса объектов
func NewService(
	propertyRepo PropertyRepository,
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
		propertyRepo: propertyRepo,
		validate:     validate.New(),
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
		logger:       logger,
	}
}

// GetByID получает объект по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.PropertyResponse, error) {
	s.logger.Info("GetByID: fetching property id=%d", id)

	p, err := s.propertyRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, propertyRepo.ErrPropertyNotFound) {
			s.logger.Warn("GetByID: property id=%d not found", id)
			return nil, ErrPropertyNotFound
		}
		s.logger.Error("GetByID: repository error for property id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %w", ErrInternal, err)
	}

	return models.FromDomainProperty(p), nil
}

// List получает объекты по локации (подстрока) и минимальной вместимости
func (s *Service) List(ctx context.Context, req *models.ListRequest) ([]*models.PropertyResponse, error) {
	filter := domain.PropertyFilter{
		MinGuests: req.MinGuests,
		Limit:     req.Limit,
		Offset:    req.Offset,
	}
	if req.Location != nil && strings.TrimSpace(*req.Location) != "" {
		location := strings.TrimSpace(*req.Location)
		filter.Location = &location
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

	properties, err := s.propertyRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d properties", len(properties))
	return models.FromDomainPropertyList(properties), nil
}

// Create проверяет и сохраняет объект
func (s *Service) Create(ctx context.Context, req *models.CreateRequest) (*models.PropertyResponse, error) {
	req.Normalize()

	if err := s.validateCreate(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.propertyRepo.Create(ctx, req.ToDomain())
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created property id=%d", created.ID)
	return models.FromDomainProperty(created), nil
}

// Update проверяет переданные поля и частично обновляет объект
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateRequest) (*models.PropertyResponse, error) {
	req.Normalize()

	patch := req.ToDomainPatch()
	if patch.IsEmpty() {
		return nil, ErrNoFieldsToUpdate
	}
	if err := s.validateUpdate(req); err != nil {
		s.logger.Warn("Update: validation failed for property id=%d: %v", id, err)
		return nil, err
	}

	p, err := s.propertyRepo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, propertyRepo.ErrPropertyNotFound) {
			s.logger.Warn("Update: property id=%d not found", id)
			return nil, ErrPropertyNotFound
		}
		s.logger.Error("Update: repository error for property id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated property id=%d", p.ID)
	return models.FromDomainProperty(p), nil
}

// Delete удаляет объект. Объект с бронированиями не удаляется
func (s *Service) Delete(ctx context.Context, id int64) (*models.DeleteResponse, error) {
	s.logger.Info("Delete: deleting property id=%d", id)

	deletedID, err := s.propertyRepo.Delete(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, propertyRepo.ErrPropertyNotFound):
			s.logger.Warn("Delete: property id=%d not found", id)
			return nil, ErrPropertyNotFound
		case errors.Is(err, propertyRepo.ErrPropertyHasBookings):
			s.logger.Warn("Delete: property id=%d has bookings", id)
			return nil, ErrPropertyHasBookings
		}
		s.logger.Error("Delete: repository error for property id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Delete - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted property id=%d", deletedID)
	return &models.DeleteResponse{
		Message: "Property deleted successfully",
		ID:      deletedID,
	}, nil
}

func (s *Service) validateUpdate(req *models.UpdateRequest) error {
	if field, ok := req.BlankField(); ok {
		return &ValidationError{FieldError: validate.FieldError{Field: field, Tag: "required"}}
	}

	err := s.validate.Struct(req)
	if err == nil {
		return nil
	}

	fields := validate.Fields(err)
	if len(fields) == 0 {
		return fmt.Errorf("%w: Update - validator: %w", ErrInternal, err)
	}
	for _, f := range fields {
		switch f.Field {
		case "price":
			return ErrInvalidPrice
		case "rating":
			return ErrInvalidRating
		}
	}
	return &ValidationError{FieldError: fields[0]}
}

func (s *Service) validateCreate(req *models.CreateRequest) error {
	err := s.validate.Struct(req)
	if err == nil {
		return nil
	}

	fields := validate.Fields(err)
	if len(fields) == 0 {
		return fmt.Errorf("%w: Create - validator: %w", ErrInternal, err)
	}
	for _, f := range fields {
		if _, ok := textFields[f.Field]; ok && f.Tag == "required" {
			return ErrMissingRequiredFields
		}
	}
	return &ValidationError{FieldError: fields[0]}
}
