package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrMissingIdentity запрос не содержит идентификатора пользователя
	ErrMissingIdentity = errors.New("identity: missing credentials")

	// ErrInvalidIdentity идентификатор или токен некорректен
	ErrInvalidIdentity = errors.New("identity: invalid credentials")
)

// IdentityProvider определяет id пользователя по запросу.
// Бизнес-логика бронирований и календаря от него не зависит
type IdentityProvider interface {
	Identify(r *http.Request) (int64, error)
}

// HeaderIdentity демо-режим без аутентификации: id пользователя берется из заголовка как есть
type HeaderIdentity struct {
	header string
}

// NewHeaderIdentity создает провайдер, читающий id из заголовка (по умолчанию X-User-ID)
func NewHeaderIdentity(header string) *HeaderIdentity {
	if header == "" {
		header = "X-User-ID"
	}
	return &HeaderIdentity{header: header}
}

func (h *HeaderIdentity) Identify(r *http.Request) (int64, error) {
	raw := strings.TrimSpace(r.Header.Get(h.header))
	if raw == "" {
		return 0, ErrMissingIdentity
	}
	return parseUserID(raw)
}

// JWTIdentity проверяет HS256 bearer токен, id пользователя в claim "sub"
type JWTIdentity struct {
	secret []byte
	now    func() time.Time
}

// NewJWTIdentity создает провайдер с HMAC секретом
func NewJWTIdentity(secret string) *JWTIdentity {
	return &JWTIdentity{secret: []byte(strings.TrimSpace(secret)), now: time.Now}
}

func (j *JWTIdentity) Identify(r *http.Request) (int64, error) {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	if header == "" {
		return 0, ErrMissingIdentity
	}

	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || strings.TrimSpace(token) == "" {
		return 0, fmt.Errorf("%w: expected bearer token", ErrInvalidIdentity)
	}

	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(strings.TrimSpace(token), claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return j.secret, nil
	}, jwt.WithTimeFunc(j.now), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid {
		return 0, fmt.Errorf("%w: %v", ErrInvalidIdentity, err)
	}

	return parseUserID(claims.Subject)
}

func parseUserID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: user id must be a positive integer", ErrInvalidIdentity)
	}
	return id, nil
}
