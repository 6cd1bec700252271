package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/pkg/types"
)

// ErrLanguagesFormat languages не является массивом строк
var ErrLanguagesFormat = errors.New("languages must be an array of strings")

// Request модели

// CreateRequest запрос на создание профиля хозяина.
// Languages разбирается отдельно, чтобы отличить отсутствие поля от неверного формата
type CreateRequest struct {
	UserID          types.FlexInt   `json:"userId"`
	Languages       json.RawMessage `json:"languages"`
	ResponseTime    *string         `json:"responseTime"`
	ResponseRate    types.FlexInt   `json:"responseRate"`
	SuperhostStatus *bool           `json:"superhostStatus"`
	PropertyCount   *int            `json:"propertyCount" validate:"omitempty,gte=0"`
	TotalReviews    *int            `json:"totalReviews" validate:"omitempty,gte=0"`
	AverageRating   *float64        `json:"averageRating" validate:"omitempty,gte=0,lte=5"`
}

// UpdateRequest частичное обновление профиля
type UpdateRequest struct {
	Languages       json.RawMessage `json:"languages"`
	ResponseTime    *string         `json:"responseTime"`
	ResponseRate    types.FlexInt   `json:"responseRate"`
	SuperhostStatus *bool           `json:"superhostStatus"`
	PropertyCount   *int            `json:"propertyCount" validate:"omitempty,gte=0"`
	TotalReviews    *int            `json:"totalReviews" validate:"omitempty,gte=0"`
	AverageRating   *float64        `json:"averageRating" validate:"omitempty,gte=0,lte=5"`
}

// IsEmpty в запросе нет ни одного поля
func (r *UpdateRequest) IsEmpty() bool {
	return r.Languages == nil && r.ResponseTime == nil && !r.ResponseRate.IsPresent() &&
		r.SuperhostStatus == nil && r.PropertyCount == nil && r.TotalReviews == nil &&
		r.AverageRating == nil
}

// ParseLanguages разбирает массив языков. null и не-массив считаются ошибкой формата
func ParseLanguages(raw json.RawMessage) ([]string, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, ErrLanguagesFormat
	}
	var languages []string
	if err := json.Unmarshal(trimmed, &languages); err != nil {
		return nil, ErrLanguagesFormat
	}
	for i := range languages {
		languages[i] = strings.TrimSpace(languages[i])
	}
	return languages, nil
}

// IsNullOrAbsent поле отсутствует или передано как null
func IsNullOrAbsent(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// Response модели

// HostProfileResponse профиль хозяина
type HostProfileResponse struct {
	ID              int64     `json:"id"`
	UserID          int64     `json:"userId"`
	Languages       []string  `json:"languages"`
	ResponseTime    string    `json:"responseTime"`
	ResponseRate    int       `json:"responseRate"`
	SuperhostStatus bool      `json:"superhostStatus"`
	PropertyCount   int       `json:"propertyCount"`
	TotalReviews    int       `json:"totalReviews"`
	AverageRating   float64   `json:"averageRating"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// FromDomainHostProfile конвертирует доменный профиль в ответ
func FromDomainHostProfile(p *domain.HostProfile) *HostProfileResponse {
	languages := p.Languages
	if languages == nil {
		languages = []string{}
	}
	return &HostProfileResponse{
		ID:              p.ID,
		UserID:          p.UserID,
		Languages:       languages,
		ResponseTime:    p.ResponseTime,
		ResponseRate:    p.ResponseRate,
		SuperhostStatus: p.SuperhostStatus,
		PropertyCount:   p.PropertyCount,
		TotalReviews:    p.TotalReviews,
		AverageRating:   p.AverageRating,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}
