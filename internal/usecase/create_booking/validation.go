package create_booking

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// validatedRequest запрос после проверки формата полей (без обращения к БД)
type validatedRequest struct {
	propertyID int64
	guests     int
	guestName  string
	guestEmail string
	totalPrice int64 // 0 - рассчитать
}

// validateRequest проверяет поля в фиксированном порядке:
// наличие, propertyId, имя, email, гости, стоимость
func validateRequest(req *Request) (*validatedRequest, error) {
	if !req.PropertyID.IsSet() ||
		isBlank(req.CheckIn) ||
		isBlank(req.CheckOut) ||
		!req.Guests.IsSet() ||
		isBlank(req.GuestName) ||
		isBlank(req.GuestEmail) {
		return nil, ErrMissingRequiredFields
	}

	if !req.PropertyID.Valid() {
		return nil, ErrInvalidPropertyID
	}

	name := strings.TrimSpace(*req.GuestName)
	if name == "" {
		return nil, ErrEmptyGuestName
	}

	// шаблон проверяется после обрезки пробелов: " jane@x.com" допустим
	email := domain.NormalizeEmail(*req.GuestEmail)
	if !domain.IsValidEmail(email) {
		return nil, ErrInvalidEmail
	}

	if !req.Guests.Valid() || req.Guests.Int64() <= 0 {
		return nil, ErrInvalidGuests
	}

	var totalPrice int64
	if req.TotalPrice.IsSet() {
		if !req.TotalPrice.Valid() || req.TotalPrice.Int64() < 0 {
			return nil, ErrInvalidTotalPrice
		}
		totalPrice = req.TotalPrice.Int64()
	}

	return &validatedRequest{
		propertyID: req.PropertyID.Int64(),
		guests:     int(req.Guests.Int64()),
		guestName:  name,
		guestEmail: email,
		totalPrice: totalPrice,
	}, nil
}

// validateDates разбирает даты и проверяет, что выезд строго позже заезда
func validateDates(rawCheckIn, rawCheckOut string) (time.Time, time.Time, error) {
	checkIn, err := domain.ParseBookingDate(rawCheckIn)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidDate
	}
	checkOut, err := domain.ParseBookingDate(rawCheckOut)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidDate
	}

	if !checkOut.After(checkIn) {
		return time.Time{}, time.Time{}, ErrInvalidDateRange
	}

	return checkIn, checkOut, nil
}

// isBlank отсутствующая или пустая строка. Строка из пробелов считается переданной
func isBlank(s *string) bool {
	return s == nil || *s == ""
}
