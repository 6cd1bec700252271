package transaction

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RentalService/pkg/psqlbuilder"
)

// pgUniqueViolation код ошибки PostgreSQL unique_violation
const pgUniqueViolation = "23505"

var columns = []string{
	"id",
	"booking_id",
	"user_id",
	"amount",
	"currency",
	"status",
	"payment_method",
	"transaction_id",
	"created_at",
}

// Repository репозиторий платежных транзакций
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория транзакций
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет транзакцию. Повторный transaction_id отклоняется уникальным индексом
func (r *Repository) Create(ctx context.Context, t *domain.Transaction) (*domain.Transaction, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("transactions").
		Columns(
			"booking_id",
			"user_id",
			"amount",
			"currency",
			"status",
			"payment_method",
			"transaction_id",
		).
		Values(
			t.BookingID,
			t.UserID,
			t.Amount,
			t.Currency,
			string(t.Status),
			t.PaymentMethod,
			t.TransactionID,
		).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&t.ID, &t.CreatedAt)
	if isUniqueViolation(err) {
		return nil, ErrDuplicateTransactionID
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return t, nil
}

// GetByID получает транзакцию по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Transaction, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("transactions").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	t, err := scanTransaction(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTransactionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan transaction: %w", ErrScanRow, err)
	}

	return t, nil
}

// List получает транзакции по фильтру, сначала новые
func (r *Repository) List(ctx context.Context, filter domain.TransactionsFilter) ([]*domain.Transaction, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(columns...).From("transactions")
	if filter.BookingID != nil {
		builder = builder.Where(squirrel.Eq{"booking_id": *filter.BookingID})
	}
	if filter.UserID != nil {
		builder = builder.Where(squirrel.Eq{"user_id": *filter.UserID})
	}
	if filter.Status != nil {
		builder = builder.Where(squirrel.Eq{"status": string(*filter.Status)})
	}

	query, args, err := builder.
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	transactions := make([]*domain.Transaction, 0)
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan transaction: %w", ErrScanRow, err)
		}
		transactions = append(transactions, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %w", ErrScanRow, err)
	}

	return transactions, nil
}

// Update частично обновляет транзакцию одним UPDATE ... RETURNING
func (r *Repository) Update(ctx context.Context, id int64, patch domain.TransactionPatch) (*domain.Transaction, error) {
	if patch.IsEmpty() {
		return nil, ErrEmptyPatch
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Update("transactions").Where(squirrel.Eq{"id": id})
	if patch.Status != nil {
		builder = builder.Set("status", string(*patch.Status))
	}
	if patch.PaymentMethod != nil {
		builder = builder.Set("payment_method", *patch.PaymentMethod)
	}

	query, args, err := builder.Suffix("RETURNING " + strings.Join(columns, ", ")).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	t, err := scanTransaction(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTransactionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %w", ErrExecQuery, err)
	}

	return t, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTransaction(row rowScanner) (*domain.Transaction, error) {
	var (
		t                            domain.Transaction
		status                       string
		paymentMethod, transactionID sql.NullString
	)
	err := row.Scan(
		&t.ID,
		&t.BookingID,
		&t.UserID,
		&t.Amount,
		&t.Currency,
		&status,
		&paymentMethod,
		&transactionID,
		&t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	t.Status = domain.TransactionStatus(status)
	if paymentMethod.Valid {
		t.PaymentMethod = &paymentMethod.String
	}
	if transactionID.Valid {
		t.TransactionID = &transactionID.String
	}
	return &t, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation
}
