package models

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// Request модели

// CreateRequest запрос на создание пользователя
type CreateRequest struct {
	Email      *string `json:"email"`
	Name       *string `json:"name" validate:"omitempty,max=100"`
	UserType   *string `json:"userType"`
	Avatar     *string `json:"avatar" validate:"omitempty,max=500"`
	Phone      *string `json:"phone" validate:"omitempty,max=30"`
	Bio        *string `json:"bio" validate:"omitempty,max=2000"`
	IsVerified *bool   `json:"isVerified"`
}

// ToDomain конвертирует проверенный запрос в доменного пользователя
func (r *CreateRequest) ToDomain() *domain.User {
	u := &domain.User{
		Email:    domain.NormalizeEmail(*r.Email),
		Name:     strings.TrimSpace(*r.Name),
		UserType: domain.UserType(*r.UserType),
		Avatar:   trimToNil(r.Avatar),
		Phone:    trimToNil(r.Phone),
		Bio:      trimToNil(r.Bio),
	}
	if r.IsVerified != nil {
		u.IsVerified = *r.IsVerified
	}
	return u
}

// UpdateRequest частичное обновление пользователя.
// Email и JoinedAt принимаются только чтобы отклонить запрос, который их содержит
type UpdateRequest struct {
	Email      json.RawMessage `json:"email"`
	JoinedAt   json.RawMessage `json:"joinedAt"`
	Name       *string         `json:"name" validate:"omitempty,max=100"`
	UserType   *string         `json:"userType"`
	Avatar     *string         `json:"avatar" validate:"omitempty,max=500"`
	Phone      *string         `json:"phone" validate:"omitempty,max=30"`
	Bio        *string         `json:"bio" validate:"omitempty,max=2000"`
	IsVerified *bool           `json:"isVerified"`
}

// HasForbiddenFields в запросе есть email или joinedAt
func (r *UpdateRequest) HasForbiddenFields() bool {
	return r.Email != nil || r.JoinedAt != nil
}

// ToDomainPatch конвертирует запрос в патч. Пустые avatar, phone, bio сбрасываются
func (r *UpdateRequest) ToDomainPatch() domain.UserPatch {
	patch := domain.UserPatch{
		Avatar:     trimmed(r.Avatar),
		Phone:      trimmed(r.Phone),
		Bio:        trimmed(r.Bio),
		IsVerified: r.IsVerified,
	}
	if r.Name != nil {
		name := strings.TrimSpace(*r.Name)
		patch.Name = &name
	}
	if r.UserType != nil {
		t := domain.UserType(*r.UserType)
		patch.UserType = &t
	}
	return patch
}

// ListRequest фильтры списка пользователей
type ListRequest struct {
	Search   *string
	UserType *string
	Verified *bool
	Limit    int
	Offset   int
}

// Response модели

// UserResponse пользователь
type UserResponse struct {
	ID         int64     `json:"id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	UserType   string    `json:"userType"`
	Avatar     *string   `json:"avatar"`
	Phone      *string   `json:"phone"`
	Bio        *string   `json:"bio"`
	IsVerified bool      `json:"isVerified"`
	JoinedAt   time.Time `json:"joinedAt"`
}

// DeleteResponse ответ на удаление пользователя
type DeleteResponse struct {
	Message string        `json:"message"`
	User    *UserResponse `json:"user"`
}

// FromDomainUser конвертирует доменного пользователя в ответ
func FromDomainUser(u *domain.User) *UserResponse {
	return &UserResponse{
		ID:         u.ID,
		Email:      u.Email,
		Name:       u.Name,
		UserType:   string(u.UserType),
		Avatar:     u.Avatar,
		Phone:      u.Phone,
		Bio:        u.Bio,
		IsVerified: u.IsVerified,
		JoinedAt:   u.JoinedAt,
	}
}

// FromDomainUserList конвертирует список пользователей
func FromDomainUserList(users []*domain.User) []*UserResponse {
	result := make([]*UserResponse, 0, len(users))
	for _, u := range users {
		result = append(result, FromDomainUser(u))
	}
	return result
}

func trimToNil(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}

// trimmed сохраняет пустую строку: в патче она означает сброс поля
func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}
