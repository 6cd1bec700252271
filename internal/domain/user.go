package domain

import (
	"regexp"
	"time"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsValidEmail проверяет нормализованный email
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// UserType роль пользователя на площадке
type UserType string

const (
	UserGuest UserType = "guest"
	UserHost  UserType = "host"
	UserBoth  UserType = "both"
)

// IsValid проверяет, что роль входит в список допустимых
func (t UserType) IsValid() bool {
	switch t {
	case UserGuest, UserHost, UserBoth:
		return true
	}
	return false
}

// User учетная запись гостя или хозяина
type User struct {
	ID         int64
	Email      string // нормализованный, уникален
	Name       string
	UserType   UserType
	Avatar     *string
	Phone      *string
	Bio        *string
	IsVerified bool
	JoinedAt   time.Time
}

// UsersFilter фильтр списка пользователей
type UsersFilter struct {
	Search   *string // подстрока имени или email, без учета регистра
	UserType *UserType
	Verified *bool
	Limit    int
	Offset   int
}

// UserPatch частичное обновление пользователя.
// Пустая строка в Avatar, Phone или Bio сбрасывает поле в NULL
type UserPatch struct {
	Name       *string
	UserType   *UserType
	Avatar     *string
	Phone      *string
	Bio        *string
	IsVerified *bool
}

// IsEmpty в патче нет ни одного поля
func (p UserPatch) IsEmpty() bool {
	return p.Name == nil && p.UserType == nil && p.Avatar == nil &&
		p.Phone == nil && p.Bio == nil && p.IsVerified == nil
}
