package upsert_availability

import (
	upsertAvailability "github.com/m04kA/SMC-RentalService/internal/usecase/upsert_availability"
	"github.com/m04kA/SMC-RentalService/pkg/types"
)

// UpsertRequest HTTP request model
type UpsertRequest struct {
	PropertyID  types.FlexInt    `json:"propertyId"`
	Date        *string          `json:"date"`
	IsAvailable types.StrictBool `json:"isAvailable"`
	Price       types.FlexInt    `json:"price"`
}

// RecordResponse HTTP response model
type RecordResponse struct {
	ID          int64  `json:"id"`
	PropertyID  int64  `json:"propertyId"`
	Date        string `json:"date"`
	IsAvailable bool   `json:"isAvailable"`
	Price       *int64 `json:"price"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpsertRequest) ToUseCaseRequest() *upsertAvailability.Request {
	return &upsertAvailability.Request{
		PropertyID:  r.PropertyID,
		Date:        r.Date,
		IsAvailable: r.IsAvailable,
		Price:       r.Price,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *upsertAvailability.Response) *RecordResponse {
	return &RecordResponse{
		ID:          resp.ID,
		PropertyID:  resp.PropertyID,
		Date:        resp.Date,
		IsAvailable: resp.IsAvailable,
		Price:       resp.Price,
	}
}
