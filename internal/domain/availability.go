package domain

import (
	"errors"
	"regexp"
	"time"
)

// ErrInvalidCalendarDate дата не в формате YYYY-MM-DD или не существует
var ErrInvalidCalendarDate = errors.New("date must be in YYYY-MM-DD format")

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// AvailabilityRecord запись календаря: доступность объекта на дату и переопределение цены
type AvailabilityRecord struct {
	ID          int64
	PropertyID  int64
	Date        string // YYYY-MM-DD
	IsAvailable bool
	Price       *int64 // nil - действует базовая цена объекта
}

// EffectivePrice цена ночи с учетом переопределения
func (r *AvailabilityRecord) EffectivePrice(base int64) int64 {
	if r.Price != nil {
		return *r.Price
	}
	return base
}

// AvailabilityFilter выборка календаря объекта, границы включительные
type AvailabilityFilter struct {
	PropertyID int64
	StartDate  *string
	EndDate    *string
	Limit      int
	Offset     int
}

// AvailabilityPatch частичное обновление записи по id
type AvailabilityPatch struct {
	IsAvailable *bool
	PriceSet    bool   // поле price присутствовало в запросе
	Price       *int64 // nil при PriceSet - сбросить переопределение
}

// IsEmpty в патче нет ни одного поля
func (p AvailabilityPatch) IsEmpty() bool {
	return p.IsAvailable == nil && !p.PriceSet
}

// ValidateDate проверяет строку даты.
// В строгом режиме дата должна существовать в календаре, иначе проверяется только форма YYYY-MM-DD
func ValidateDate(raw string, strict bool) error {
	if !datePattern.MatchString(raw) {
		return ErrInvalidCalendarDate
	}
	if strict {
		if _, err := time.Parse(DateFormat, raw); err != nil {
			return ErrInvalidCalendarDate
		}
	}
	return nil
}

// NightDates даты ночей диапазона [checkIn, checkOut) в формате YYYY-MM-DD
func NightDates(checkIn, checkOut time.Time) []string {
	nights := Nights(checkIn, checkOut)
	start := time.Date(checkIn.Year(), checkIn.Month(), checkIn.Day(), 0, 0, 0, 0, time.UTC)

	dates := make([]string, 0, nights)
	for i := int64(0); i < nights; i++ {
		dates = append(dates, start.AddDate(0, 0, int(i)).Format(DateFormat))
	}
	return dates
}
