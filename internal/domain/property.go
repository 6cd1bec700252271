package domain

import "time"

// Property объект размещения. Для бронирований и календаря только справочные данные
type Property struct {
	ID          int64
	Title       string
	Description string
	Location    string
	Price       int64 // цена за ночь в целых долларах
	Images      []string
	Bedrooms    int
	Bathrooms   int
	Guests      int // максимальная вместимость
	Amenities   []string
	Rating      float64
	Reviews     int
	HostName    string
	HostAvatar  string
	CreatedAt   time.Time
}

// CanAccommodate проверяет вместимость объекта
func (p *Property) CanAccommodate(guests int) bool {
	return guests <= p.Guests
}

// PropertyFilter фильтр списка объектов
type PropertyFilter struct {
	Location  *string // подстрока, без учета регистра
	MinGuests *int
	Limit     int
	Offset    int
}

// PropertyPatch частичное обновление объекта
type PropertyPatch struct {
	Title       *string
	Description *string
	Location    *string
	Price       *int64
	Images      []string
	Bedrooms    *int
	Bathrooms   *int
	Guests      *int
	Amenities   []string
	Rating      *float64
	Reviews     *int
	HostName    *string
	HostAvatar  *string
}

// IsEmpty в патче нет ни одного поля
func (p PropertyPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Location == nil &&
		p.Price == nil && p.Images == nil && p.Bedrooms == nil &&
		p.Bathrooms == nil && p.Guests == nil && p.Amenities == nil &&
		p.Rating == nil && p.Reviews == nil && p.HostName == nil && p.HostAvatar == nil
}
