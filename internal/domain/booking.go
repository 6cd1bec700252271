package domain

import (
	"strings"
	"time"
)

// Booking бронирование объекта на диапазон дат.
// После создания не изменяется
type Booking struct {
	ID         int64
	PropertyID int64
	CheckIn    time.Time
	CheckOut   time.Time
	Guests     int
	TotalPrice int64
	GuestName  string
	GuestEmail string
	CreatedAt  time.Time
}

const secondsPerDay = 24 * 60 * 60

// Nights количество ночей между датами, неполные сутки округляются вверх.
// Считается в секундах, а не через time.Duration, которая насыщается на ~292 годах
func Nights(checkIn, checkOut time.Time) int64 {
	secs := checkOut.Unix() - checkIn.Unix()
	nsec := checkOut.Nanosecond() - checkIn.Nanosecond()
	if nsec < 0 {
		secs--
		nsec += int(time.Second)
	}
	if secs < 0 || (secs == 0 && nsec == 0) {
		return 0
	}

	nights := secs / secondsPerDay
	if secs%secondsPerDay != 0 || nsec > 0 {
		nights++
	}
	return nights
}

// TotalPrice стоимость проживания по базовой цене объекта
func TotalPrice(checkIn, checkOut time.Time, nightlyPrice int64) int64 {
	return Nights(checkIn, checkOut) * nightlyPrice
}

// NormalizeEmail приводит email к виду, в котором он хранится
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// BookingsFilter фильтр списка бронирований
type BookingsFilter struct {
	PropertyID *int64
	GuestEmail *string // нормализованный email
	Limit      int
	Offset     int
}
