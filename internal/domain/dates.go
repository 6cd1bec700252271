package domain

import (
	"errors"
	"strings"
	"time"
)

// ErrUnparseableDate строку не удалось разобрать как дату
var ErrUnparseableDate = errors.New("invalid date format")

// bookingDateLayouts допустимые форматы дат заезда и выезда
var bookingDateLayouts = []string{
	DateFormat,
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// ParseBookingDate разбирает дату заезда/выезда. Значения без зоны считаются UTC
func ParseBookingDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range bookingDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, ErrUnparseableDate
}
