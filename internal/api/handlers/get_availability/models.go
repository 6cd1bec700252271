package get_availability

import getAvailability "github.com/m04kA/SMC-RentalService/internal/usecase/get_availability"

// RecordResponse HTTP response model
type RecordResponse struct {
	ID          int64  `json:"id"`
	PropertyID  int64  `json:"propertyId"`
	Date        string `json:"date"`
	IsAvailable bool   `json:"isAvailable"`
	Price       *int64 `json:"price"`
}

// FromUseCaseResponse конвертирует ответ use case в массив записей
func FromUseCaseResponse(resp *getAvailability.Response) []RecordResponse {
	result := make([]RecordResponse, 0, len(resp.Records))
	for _, rec := range resp.Records {
		result = append(result, RecordResponse{
			ID:          rec.ID,
			PropertyID:  rec.PropertyID,
			Date:        rec.Date,
			IsAvailable: rec.IsAvailable,
			Price:       rec.Price,
		})
	}
	return result
}
