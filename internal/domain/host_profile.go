package domain

import "time"

// ResponseTimes допустимые значения времени ответа хозяина
var ResponseTimes = []string{
	"within an hour",
	"within a few hours",
	"within a day",
	"a few days or more",
}

// HostProfile профиль хозяина, не более одного на пользователя
type HostProfile struct {
	ID              int64
	UserID          int64
	Languages       []string
	ResponseTime    string
	ResponseRate    int // процент, 0..100
	SuperhostStatus bool
	PropertyCount   int
	TotalReviews    int
	AverageRating   float64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// HostProfilePatch частичное обновление профиля хозяина
type HostProfilePatch struct {
	Languages       []string
	ResponseTime    *string
	ResponseRate    *int
	SuperhostStatus *bool
	PropertyCount   *int
	TotalReviews    *int
	AverageRating   *float64
}

// IsEmpty в патче нет ни одного поля
func (p HostProfilePatch) IsEmpty() bool {
	return p.Languages == nil && p.ResponseTime == nil && p.ResponseRate == nil &&
		p.SuperhostStatus == nil && p.PropertyCount == nil && p.TotalReviews == nil &&
		p.AverageRating == nil
}
