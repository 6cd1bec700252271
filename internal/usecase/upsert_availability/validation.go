package upsert_availability

import (
	"strings"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// validateRequest проверяет поля в фиксированном порядке:
// наличие propertyId, date, isAvailable, затем их формат и цену
func validateRequest(req *Request, strictDates bool) (*domain.AvailabilityRecord, error) {
	if !req.PropertyID.IsSet() {
		return nil, ErrMissingPropertyID
	}
	if req.Date == nil || strings.TrimSpace(*req.Date) == "" {
		return nil, ErrMissingDate
	}
	if !req.IsAvailable.IsSet() {
		return nil, ErrMissingIsAvailable
	}

	if !req.PropertyID.Valid() {
		return nil, ErrInvalidPropertyID
	}
	if err := domain.ValidateDate(*req.Date, strictDates); err != nil {
		return nil, ErrInvalidDateFormat
	}
	if !req.IsAvailable.Valid() {
		return nil, ErrInvalidIsAvailable
	}
	if req.Price.IsSet() && !req.Price.Valid() {
		return nil, ErrInvalidPrice
	}

	return &domain.AvailabilityRecord{
		PropertyID:  req.PropertyID.Int64(),
		Date:        *req.Date,
		IsAvailable: req.IsAvailable.Bool(),
		Price:       req.Price.Ptr(),
	}, nil
}
