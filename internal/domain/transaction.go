package domain

import "time"

// TransactionStatus статус платежной транзакции
type TransactionStatus string

const (
	TransactionPending   TransactionStatus = "pending"
	TransactionCompleted TransactionStatus = "completed"
	TransactionRefunded  TransactionStatus = "refunded"
	TransactionFailed    TransactionStatus = "failed"
)

// TransactionStatuses допустимые статусы в порядке вывода в сообщениях об ошибке
var TransactionStatuses = []TransactionStatus{
	TransactionPending,
	TransactionCompleted,
	TransactionRefunded,
	TransactionFailed,
}

// IsValid проверяет, что статус входит в список допустимых
func (s TransactionStatus) IsValid() bool {
	for _, v := range TransactionStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Transaction запись о платеже по бронированию
type Transaction struct {
	ID            int64
	BookingID     int64
	UserID        int64
	Amount        int64
	Currency      string
	Status        TransactionStatus
	PaymentMethod *string
	TransactionID *string // внешний идентификатор платежа, уникален
	CreatedAt     time.Time
}

// TransactionsFilter фильтр списка транзакций
type TransactionsFilter struct {
	BookingID *int64
	UserID    *int64
	Status    *TransactionStatus
	Limit     int
	Offset    int
}

// TransactionPatch частичное обновление транзакции
type TransactionPatch struct {
	Status        *TransactionStatus
	PaymentMethod *string
}

// IsEmpty в патче нет ни одного поля
func (p TransactionPatch) IsEmpty() bool {
	return p.Status == nil && p.PaymentMethod == nil
}
