package models

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/pkg/types"
)

// Request модели

// CreateRequest запрос на создание транзакции. userId берется из идентичности запроса
type CreateRequest struct {
	BookingID     types.FlexInt `json:"bookingId"`
	Amount        types.FlexInt `json:"amount"`
	Currency      *string       `json:"currency" validate:"omitempty,iso4217"`
	Status        *string       `json:"status" validate:"required,oneof=pending completed refunded failed"`
	PaymentMethod *string       `json:"paymentMethod" validate:"omitempty,max=64"`
	TransactionID *string       `json:"transactionId" validate:"omitempty,max=128"`
}

// ToDomain конвертирует проверенный запрос в доменную транзакцию
func (r *CreateRequest) ToDomain(userID int64) *domain.Transaction {
	currency := domain.DefaultCurrency
	if r.Currency != nil && *r.Currency != "" {
		currency = strings.ToUpper(*r.Currency)
	}
	return &domain.Transaction{
		BookingID:     r.BookingID.Int64(),
		UserID:        userID,
		Amount:        r.Amount.Int64(),
		Currency:      currency,
		Status:        domain.TransactionStatus(*r.Status),
		PaymentMethod: emptyToNil(r.PaymentMethod),
		TransactionID: emptyToNil(r.TransactionID),
	}
}

// UpdateRequest частичное обновление транзакции
type UpdateRequest struct {
	Status        *string `json:"status" validate:"omitempty,oneof=pending completed refunded failed"`
	PaymentMethod *string `json:"paymentMethod" validate:"omitempty,max=64"`
}

// ToDomainPatch конвертирует запрос в патч
func (r *UpdateRequest) ToDomainPatch() domain.TransactionPatch {
	var patch domain.TransactionPatch
	if r.Status != nil {
		status := domain.TransactionStatus(*r.Status)
		patch.Status = &status
	}
	patch.PaymentMethod = r.PaymentMethod
	return patch
}

// ListRequest фильтры списка транзакций
type ListRequest struct {
	BookingID *int64
	UserID    *int64
	Status    *string
	Limit     int
	Offset    int
}

// Response модели

// TransactionResponse транзакция
type TransactionResponse struct {
	ID            int64     `json:"id"`
	BookingID     int64     `json:"bookingId"`
	UserID        int64     `json:"userId"`
	Amount        int64     `json:"amount"`
	Currency      string    `json:"currency"`
	Status        string    `json:"status"`
	PaymentMethod *string   `json:"paymentMethod"`
	TransactionID *string   `json:"transactionId"`
	CreatedAt     time.Time `json:"createdAt"`
}

// FromDomainTransaction конвертирует доменную транзакцию в ответ
func FromDomainTransaction(t *domain.Transaction) *TransactionResponse {
	return &TransactionResponse{
		ID:            t.ID,
		BookingID:     t.BookingID,
		UserID:        t.UserID,
		Amount:        t.Amount,
		Currency:      t.Currency,
		Status:        string(t.Status),
		PaymentMethod: t.PaymentMethod,
		TransactionID: t.TransactionID,
		CreatedAt:     t.CreatedAt,
	}
}

// FromDomainTransactionList конвертирует список транзакций
func FromDomainTransactionList(transactions []*domain.Transaction) []*TransactionResponse {
	result := make([]*TransactionResponse, 0, len(transactions))
	for _, t := range transactions {
		result = append(result, FromDomainTransaction(t))
	}
	return result
}

func emptyToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
