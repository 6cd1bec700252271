package models

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// Request модели

// CreateRequest запрос на создание объекта
type CreateRequest struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Location    string   `json:"location" validate:"required"`
	HostName    string   `json:"hostName" validate:"required"`
	HostAvatar  string   `json:"hostAvatar" validate:"required"`
	Price       *int64   `json:"price" validate:"required,gt=0"`
	Images      []string `json:"images" validate:"required,min=1,dive,required"`
	Bedrooms    *int     `json:"bedrooms" validate:"required,gte=0"`
	Bathrooms   *int     `json:"bathrooms" validate:"required,gte=0"`
	Guests      *int     `json:"guests" validate:"required,gt=0"`
	Amenities   []string `json:"amenities" validate:"required"`
	Rating      *float64 `json:"rating" validate:"required,gte=0,lte=5"`
	Reviews     *int     `json:"reviews" validate:"required,gte=0"`
}

// Normalize обрезает пробелы в текстовых полях
func (r *CreateRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
	r.Location = strings.TrimSpace(r.Location)
	r.HostName = strings.TrimSpace(r.HostName)
	r.HostAvatar = strings.TrimSpace(r.HostAvatar)
}

// ToDomain конвертирует проверенный запрос в доменный объект
func (r *CreateRequest) ToDomain() *domain.Property {
	return &domain.Property{
		Title:       r.Title,
		Description: r.Description,
		Location:    r.Location,
		Price:       *r.Price,
		Images:      r.Images,
		Bedrooms:    *r.Bedrooms,
		Bathrooms:   *r.Bathrooms,
		Guests:      *r.Guests,
		Amenities:   r.Amenities,
		Rating:      *r.Rating,
		Reviews:     *r.Reviews,
		HostName:    r.HostName,
		HostAvatar:  r.HostAvatar,
	}
}

// UpdateRequest частичное обновление объекта. Переданные текстовые поля не могут быть пустыми
type UpdateRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Location    *string  `json:"location"`
	HostName    *string  `json:"hostName"`
	HostAvatar  *string  `json:"hostAvatar"`
	Price       *int64   `json:"price" validate:"omitempty,gt=0"`
	Images      []string `json:"images" validate:"omitempty,min=1,dive,required"`
	Bedrooms    *int     `json:"bedrooms" validate:"omitempty,gte=0"`
	Bathrooms   *int     `json:"bathrooms" validate:"omitempty,gte=0"`
	Guests      *int     `json:"guests" validate:"omitempty,gt=0"`
	Amenities   []string `json:"amenities"`
	Rating      *float64 `json:"rating" validate:"omitempty,gte=0,lte=5"`
	Reviews     *int     `json:"reviews" validate:"omitempty,gte=0"`
}

// Normalize обрезает пробелы в переданных текстовых полях
func (r *UpdateRequest) Normalize() {
	for _, s := range r.textFields() {
		if s.value != nil {
			*s.value = strings.TrimSpace(*s.value)
		}
	}
}

// BlankField возвращает имя первого переданного пустого текстового поля
func (r *UpdateRequest) BlankField() (string, bool) {
	for _, s := range r.textFields() {
		if s.value != nil && *s.value == "" {
			return s.name, true
		}
	}
	return "", false
}

type textField struct {
	name  string
	value *string
}

func (r *UpdateRequest) textFields() []textField {
	return []textField{
		{"title", r.Title},
		{"description", r.Description},
		{"location", r.Location},
		{"hostName", r.HostName},
		{"hostAvatar", r.HostAvatar},
	}
}

// ToDomainPatch конвертирует запрос в патч
func (r *UpdateRequest) ToDomainPatch() domain.PropertyPatch {
	return domain.PropertyPatch{
		Title:       r.Title,
		Description: r.Description,
		Location:    r.Location,
		Price:       r.Price,
		Images:      r.Images,
		Bedrooms:    r.Bedrooms,
		Bathrooms:   r.Bathrooms,
		Guests:      r.Guests,
		Amenities:   r.Amenities,
		Rating:      r.Rating,
		Reviews:     r.Reviews,
		HostName:    r.HostName,
		HostAvatar:  r.HostAvatar,
	}
}

// ListRequest фильтры списка объектов
type ListRequest struct {
	Location  *string
	MinGuests *int
	Limit     int
	Offset    int
}

// Response модели

// PropertyResponse объект размещения
type PropertyResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Price       int64     `json:"price"`
	Images      []string  `json:"images"`
	Bedrooms    int       `json:"bedrooms"`
	Bathrooms   int       `json:"bathrooms"`
	Guests      int       `json:"guests"`
	Amenities   []string  `json:"amenities"`
	Rating      float64   `json:"rating"`
	Reviews     int       `json:"reviews"`
	HostName    string    `json:"hostName"`
	HostAvatar  string    `json:"hostAvatar"`
	CreatedAt   time.Time `json:"createdAt"`
}

// DeleteResponse ответ на удаление объекта
type DeleteResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

// FromDomainProperty конвертирует доменный объект в ответ
func FromDomainProperty(p *domain.Property) *PropertyResponse {
	images := p.Images
	if images == nil {
		images = []string{}
	}
	amenities := p.Amenities
	if amenities == nil {
		amenities = []string{}
	}
	return &PropertyResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Location:    p.Location,
		Price:       p.Price,
		Images:      images,
		Bedrooms:    p.Bedrooms,
		Bathrooms:   p.Bathrooms,
		Guests:      p.Guests,
		Amenities:   amenities,
		Rating:      p.Rating,
		Reviews:     p.Reviews,
		HostName:    p.HostName,
		HostAvatar:  p.HostAvatar,
		CreatedAt:   p.CreatedAt,
	}
}

// FromDomainPropertyList конвертирует список объектов
func FromDomainPropertyList(properties []*domain.Property) []*PropertyResponse {
	result := make([]*PropertyResponse, 0, len(properties))
	for _, p := range properties {
		result = append(result, FromDomainProperty(p))
	}
	return result
}
