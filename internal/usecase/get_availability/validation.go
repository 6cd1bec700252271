package get_availability

import (
	"strconv"
	"strings"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// parsePropertyID проверяет наличие и формат propertyId
func parsePropertyID(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, ErrMissingPropertyID
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, ErrInvalidPropertyID
	}
	return id, nil
}

// validateBounds проверяет переданные границы диапазона
func validateBounds(req *Request, strict bool) error {
	for _, bound := range []*string{req.StartDate, req.EndDate} {
		if bound == nil {
			continue
		}
		if err := domain.ValidateDate(*bound, strict); err != nil {
			return ErrInvalidDateFormat
		}
	}
	return nil
}

// normalizePage приводит пагинацию к допустимым значениям
func normalizePage(limit, offset, defaultLimit, maxLimit int) (int, int) {
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
