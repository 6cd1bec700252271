package create_booking

import (
	"time"

	createBooking "github.com/m04kA/SMC-RentalService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-RentalService/pkg/types"
)

// CreateBookingRequest HTTP request model.
// Числовые поля принимают число или строку с числом
type CreateBookingRequest struct {
	PropertyID types.FlexInt `json:"propertyId"`
	CheckIn    *string       `json:"checkIn"`
	CheckOut   *string       `json:"checkOut"`
	Guests     types.FlexInt `json:"guests"`
	GuestName  *string       `json:"guestName"`
	GuestEmail *string       `json:"guestEmail"`
	TotalPrice types.FlexInt `json:"totalPrice"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID         int64  `json:"id"`
	PropertyID int64  `json:"propertyId"`
	CheckIn    string `json:"checkIn"`
	CheckOut   string `json:"checkOut"`
	Guests     int    `json:"guests"`
	TotalPrice int64  `json:"totalPrice"`
	GuestName  string `json:"guestName"`
	GuestEmail string `json:"guestEmail"`
	CreatedAt  string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		PropertyID: r.PropertyID,
		CheckIn:    r.CheckIn,
		CheckOut:   r.CheckOut,
		Guests:     r.Guests,
		GuestName:  r.GuestName,
		GuestEmail: r.GuestEmail,
		TotalPrice: r.TotalPrice,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:         resp.ID,
		PropertyID: resp.PropertyID,
		CheckIn:    resp.CheckIn.UTC().Format(time.RFC3339),
		CheckOut:   resp.CheckOut.UTC().Format(time.RFC3339),
		Guests:     resp.Guests,
		TotalPrice: resp.TotalPrice,
		GuestName:  resp.GuestName,
		GuestEmail: resp.GuestEmail,
		CreatedAt:  resp.CreatedAt.UTC().Format(time.RFC3339),
	}
}
