package domain

import "time"

// Review отзыв гостя об объекте по завершенному бронированию
type Review struct {
	ID            int64
	PropertyID    int64
	UserID        int64
	BookingID     int64
	Rating        float64 // общая оценка, допускает дробную часть
	Comment       *string
	Cleanliness   int
	Accuracy      int
	CheckIn       int
	Communication int
	Location      int
	Value         int
	CreatedAt     time.Time
}

// ReviewsFilter фильтр списка отзывов
type ReviewsFilter struct {
	PropertyID *int64
	UserID     *int64
	BookingID  *int64
	Limit      int
	Offset     int
}

// ReviewPatch частичное обновление отзыва.
// ClearComment сбрасывает комментарий в NULL
type ReviewPatch struct {
	Rating        *float64
	Comment       *string
	ClearComment  bool
	Cleanliness   *int
	Accuracy      *int
	CheckIn       *int
	Communication *int
	Location      *int
	Value         *int
}

// IsEmpty в патче нет ни одного поля
func (p ReviewPatch) IsEmpty() bool {
	return p.Rating == nil && p.Comment == nil && !p.ClearComment &&
		p.Cleanliness == nil && p.Accuracy == nil && p.CheckIn == nil &&
		p.Communication == nil && p.Location == nil && p.Value == nil
}
