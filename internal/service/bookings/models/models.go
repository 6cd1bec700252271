package models

import (
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// Request модели

// ListRequest фильтры списка бронирований, условия объединяются через AND
type ListRequest struct {
	PropertyID *int64
	GuestEmail *string
	Limit      int
	Offset     int
}

// Response модели

// BookingResponse бронирование
type BookingResponse struct {
	ID         int64     `json:"id"`
	PropertyID int64     `json:"propertyId"`
	CheckIn    time.Time `json:"checkIn"`
	CheckOut   time.Time `json:"checkOut"`
	Guests     int       `json:"guests"`
	TotalPrice int64     `json:"totalPrice"`
	GuestName  string    `json:"guestName"`
	GuestEmail string    `json:"guestEmail"`
	CreatedAt  time.Time `json:"createdAt"`
}

// DeleteResponse ответ на удаление бронирования
type DeleteResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

// FromDomainBooking конвертирует доменное бронирование в ответ
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:         b.ID,
		PropertyID: b.PropertyID,
		CheckIn:    b.CheckIn,
		CheckOut:   b.CheckOut,
		Guests:     b.Guests,
		TotalPrice: b.TotalPrice,
		GuestName:  b.GuestName,
		GuestEmail: b.GuestEmail,
		CreatedAt:  b.CreatedAt,
	}
}

// FromDomainBookingList конвертирует список бронирований
func FromDomainBookingList(bookings []*domain.Booking) []*BookingResponse {
	result := make([]*BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, FromDomainBooking(b))
	}
	return result
}
