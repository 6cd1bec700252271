package domain

// Форматы дат
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Пагинация по умолчанию
const (
	DefaultAvailabilityLimit = 90
	DefaultListLimit         = 50
	MaxPageLimit             = 100
)

// Бизнес-ограничения
const (
	DefaultCurrency = "USD"

	// MaxReservedNights предел ночей, закрываемых в календаре одним запросом
	MaxReservedNights = 730
)
