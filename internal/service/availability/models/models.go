package models

import (
	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/pkg/types"
)

// Request модели

// UpdateRequest частичное обновление записи. price: null сбрасывает переопределение цены
type UpdateRequest struct {
	IsAvailable types.StrictBool `json:"isAvailable"`
	Price       types.FlexInt    `json:"price"`
}

// ReserveRequest резервирование ночей [checkIn, checkOut)
type ReserveRequest struct {
	PropertyID types.FlexInt `json:"propertyId"`
	CheckIn    *string       `json:"checkIn"`
	CheckOut   *string       `json:"checkOut"`
}

// Response модели

// RecordResponse запись календаря
type RecordResponse struct {
	ID          int64  `json:"id"`
	PropertyID  int64  `json:"propertyId"`
	Date        string `json:"date"`
	IsAvailable bool   `json:"isAvailable"`
	Price       *int64 `json:"price"`
}

// DeleteResponse ответ на удаление с прежним состоянием записи
type DeleteResponse struct {
	Message string          `json:"message"`
	Record  *RecordResponse `json:"record"`
}

// ReserveResponse зарезервированные ночи
type ReserveResponse struct {
	PropertyID int64             `json:"propertyId"`
	Nights     []*RecordResponse `json:"nights"`
}

// FromDomainRecord конвертирует доменную запись в ответ
func FromDomainRecord(rec *domain.AvailabilityRecord) *RecordResponse {
	return &RecordResponse{
		ID:          rec.ID,
		PropertyID:  rec.PropertyID,
		Date:        rec.Date,
		IsAvailable: rec.IsAvailable,
		Price:       rec.Price,
	}
}

// FromDomainRecords конвертирует список записей
func FromDomainRecords(records []*domain.AvailabilityRecord) []*RecordResponse {
	result := make([]*RecordResponse, 0, len(records))
	for _, rec := range records {
		result = append(result, FromDomainRecord(rec))
	}
	return result
}
