package models

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/pkg/types"
)

// Request модели

// CreateRequest запрос на создание отзыва. userId берется из идентичности запроса.
// Порядок полей задает порядок проверки оценок
type CreateRequest struct {
	PropertyID    types.FlexInt `json:"propertyId"`
	BookingID     types.FlexInt `json:"bookingId"`
	Rating        *float64      `json:"rating" validate:"required,gte=1,lte=5"`
	Cleanliness   *float64      `json:"cleanliness" validate:"required,gte=1,lte=5"`
	Accuracy      *float64      `json:"accuracy" validate:"required,gte=1,lte=5"`
	CheckIn       *float64      `json:"checkIn" validate:"required,gte=1,lte=5"`
	Communication *float64      `json:"communication" validate:"required,gte=1,lte=5"`
	Location      *float64      `json:"location" validate:"required,gte=1,lte=5"`
	Value         *float64      `json:"value" validate:"required,gte=1,lte=5"`
	Comment       *string       `json:"comment" validate:"omitempty,max=2000"`
}

// ToDomain конвертирует проверенный запрос в доменный отзыв.
// Дробная часть частных оценок отбрасывается
func (r *CreateRequest) ToDomain(userID int64) *domain.Review {
	return &domain.Review{
		PropertyID:    r.PropertyID.Int64(),
		UserID:        userID,
		BookingID:     r.BookingID.Int64(),
		Rating:        *r.Rating,
		Comment:       trimToNil(r.Comment),
		Cleanliness:   int(*r.Cleanliness),
		Accuracy:      int(*r.Accuracy),
		CheckIn:       int(*r.CheckIn),
		Communication: int(*r.Communication),
		Location:      int(*r.Location),
		Value:         int(*r.Value),
	}
}

// UpdateRequest частичное обновление отзыва. Пустой comment удаляет комментарий
type UpdateRequest struct {
	Rating        *float64 `json:"rating" validate:"omitempty,gte=1,lte=5"`
	Cleanliness   *float64 `json:"cleanliness" validate:"omitempty,gte=1,lte=5"`
	Accuracy      *float64 `json:"accuracy" validate:"omitempty,gte=1,lte=5"`
	CheckIn       *float64 `json:"checkIn" validate:"omitempty,gte=1,lte=5"`
	Communication *float64 `json:"communication" validate:"omitempty,gte=1,lte=5"`
	Location      *float64 `json:"location" validate:"omitempty,gte=1,lte=5"`
	Value         *float64 `json:"value" validate:"omitempty,gte=1,lte=5"`
	Comment       *string  `json:"comment" validate:"omitempty,max=2000"`
}

// IsEmpty в запросе нет ни одного поля
func (r *UpdateRequest) IsEmpty() bool {
	return r.ToDomainPatch().IsEmpty()
}

// ToDomainPatch конвертирует запрос в патч
func (r *UpdateRequest) ToDomainPatch() domain.ReviewPatch {
	patch := domain.ReviewPatch{
		Rating:        r.Rating,
		Cleanliness:   truncate(r.Cleanliness),
		Accuracy:      truncate(r.Accuracy),
		CheckIn:       truncate(r.CheckIn),
		Communication: truncate(r.Communication),
		Location:      truncate(r.Location),
		Value:         truncate(r.Value),
	}
	if r.Comment != nil {
		if patch.Comment = trimToNil(r.Comment); patch.Comment == nil {
			patch.ClearComment = true
		}
	}
	return patch
}

// ListRequest фильтры списка отзывов
type ListRequest struct {
	PropertyID *int64
	UserID     *int64
	BookingID  *int64
	Limit      int
	Offset     int
}

// Response модели

// ReviewResponse отзыв
type ReviewResponse struct {
	ID            int64     `json:"id"`
	PropertyID    int64     `json:"propertyId"`
	UserID        int64     `json:"userId"`
	BookingID     int64     `json:"bookingId"`
	Rating        float64   `json:"rating"`
	Comment       *string   `json:"comment"`
	Cleanliness   int       `json:"cleanliness"`
	Accuracy      int       `json:"accuracy"`
	CheckIn       int       `json:"checkIn"`
	Communication int       `json:"communication"`
	Location      int       `json:"location"`
	Value         int       `json:"value"`
	CreatedAt     time.Time `json:"createdAt"`
}

// DeleteResponse ответ на удаление отзыва
type DeleteResponse struct {
	Message string          `json:"message"`
	Review  *ReviewResponse `json:"review"`
}

// FromDomainReview конвертирует доменный отзыв в ответ
func FromDomainReview(rv *domain.Review) *ReviewResponse {
	return &ReviewResponse{
		ID:            rv.ID,
		PropertyID:    rv.PropertyID,
		UserID:        rv.UserID,
		BookingID:     rv.BookingID,
		Rating:        rv.Rating,
		Comment:       rv.Comment,
		Cleanliness:   rv.Cleanliness,
		Accuracy:      rv.Accuracy,
		CheckIn:       rv.CheckIn,
		Communication: rv.Communication,
		Location:      rv.Location,
		Value:         rv.Value,
		CreatedAt:     rv.CreatedAt,
	}
}

// FromDomainReviewList конвертирует список отзывов
func FromDomainReviewList(reviews []*domain.Review) []*ReviewResponse {
	result := make([]*ReviewResponse, 0, len(reviews))
	for _, rv := range reviews {
		result = append(result, FromDomainReview(rv))
	}
	return result
}

func truncate(v *float64) *int {
	if v == nil {
		return nil
	}
	i := int(*v)
	return &i
}

func trimToNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
