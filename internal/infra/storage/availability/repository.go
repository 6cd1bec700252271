package availability

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RentalService/pkg/psqlbuilder"
)

const table = "property_availability"

var columns = []string{
	"id",
	"property_id",
	"date",
	"is_available",
	"price",
}

// upsertSuffix конфликт по уникальному индексу (property_id, date) превращает INSERT в UPDATE той же строки.
// xmax = 0 только у только что вставленной строки
const upsertSuffix = "ON CONFLICT (property_id, date) DO UPDATE SET " +
	"is_available = EXCLUDED.is_available, price = EXCLUDED.price " +
	"RETURNING id, property_id, date, is_available, price, (xmax = 0) AS inserted"

// reserveSuffix при резервировании сохраняет переопределение цены
const reserveSuffix = "ON CONFLICT (property_id, date) DO UPDATE SET " +
	"is_available = EXCLUDED.is_available " +
	"RETURNING id, property_id, date, is_available, price"

// Repository репозиторий календаря доступности
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория календаря
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// List возвращает записи объекта в диапазоне дат (границы включительно) по возрастанию даты
func (r *Repository) List(ctx context.Context, filter domain.AvailabilityFilter) ([]*domain.AvailabilityRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"property_id": filter.PropertyID})

	if filter.StartDate != nil {
		builder = builder.Where(squirrel.GtOrEq{"date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		builder = builder.Where(squirrel.LtOrEq{"date": *filter.EndDate})
	}

	query, args, err := builder.
		OrderBy("date ASC").
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

	return scanRecords(rows, "List")
}

// Upsert создает запись для пары (property_id, date) или обновляет существующую, сохраняя её id.
// Выполняется одним атомарным запросом, created=true если строка была вставлена
func (r *Repository) Upsert(ctx context.Context, rec *domain.AvailabilityRecord) (*domain.AvailabilityRecord, bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns("property_id", "date", "is_available", "price").
		Values(rec.PropertyID, rec.Date, rec.IsAvailable, rec.Price).
		Suffix(upsertSuffix).
		ToSql()
	if err != nil {
		return nil, false, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var (
		result   domain.AvailabilityRecord
		price    sql.NullInt64
		inserted bool
	)
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&result.ID,
		&result.PropertyID,
		&result.Date,
		&result.IsAvailable,
		&price,
		&inserted,
	)
	if err != nil {
		return nil, false, fmt.Errorf("%w: Upsert - execute upsert: %w", ErrExecQuery, err)
	}
	result.Price = nullablePrice(price)

	return &result, inserted, nil
}

// GetByID получает запись по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.AvailabilityRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	rec, err := scanRecord(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan record: %w", ErrScanRow, err)
	}

	return rec, nil
}

// Update частично обновляет запись одним UPDATE ... RETURNING
func (r *Repository) Update(ctx context.Context, id int64, patch domain.AvailabilityPatch) (*domain.AvailabilityRecord, error) {
	if patch.IsEmpty() {
		return nil, ErrEmptyPatch
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Update(table).Where(squirrel.Eq{"id": id})
	if patch.IsAvailable != nil {
		builder = builder.Set("is_available", *patch.IsAvailable)
	}
	if patch.PriceSet {
		builder = builder.Set("price", patch.Price)
	}

	query, args, err := builder.
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	rec, err := scanRecord(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %w", ErrExecQuery, err)
	}

	return rec, nil
}

// Delete удаляет запись и возвращает её прежнее состояние
func (r *Repository) Delete(ctx context.Context, id int64) (*domain.AvailabilityRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	rec, err := scanRecord(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Delete - execute delete: %w", ErrExecQuery, err)
	}

	return rec, nil
}

// GetByDates получает записи объекта на указанные даты.
// Внутри транзакции строки блокируются (FOR UPDATE) до её завершения
func (r *Repository) GetByDates(ctx context.Context, propertyID int64, dates []string) ([]*domain.AvailabilityRecord, error) {
	if len(dates) == 0 {
		return []*domain.AvailabilityRecord{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"property_id": propertyID}).
		Where(squirrel.Eq{"date": dates}).
		OrderBy("date ASC")

	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDates - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDates - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanRecords(rows, "GetByDates")
}

// MarkUnavailable помечает даты объекта недоступными одним INSERT ... ON CONFLICT.
// Существующие переопределения цены сохраняются
func (r *Repository) MarkUnavailable(ctx context.Context, propertyID int64, dates []string) ([]*domain.AvailabilityRecord, error) {
	if len(dates) == 0 {
		return []*domain.AvailabilityRecord{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Insert(table).Columns("property_id", "date", "is_available")
	for _, date := range dates {
		builder = builder.Values(propertyID, date, false)
	}

	query, args, err := builder.Suffix(reserveSuffix).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: MarkUnavailable - build insert query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: MarkUnavailable - execute upsert: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanRecords(rows, "MarkUnavailable")
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRecord(row rowScanner) (*domain.AvailabilityRecord, error) {
	var (
		rec   domain.AvailabilityRecord
		price sql.NullInt64
	)
	if err := row.Scan(&rec.ID, &rec.PropertyID, &rec.Date, &rec.IsAvailable, &price); err != nil {
		return nil, err
	}
	rec.Price = nullablePrice(price)
	return &rec, nil
}

func scanRecords(rows *sql.Rows, method string) ([]*domain.AvailabilityRecord, error) {
	records := make([]*domain.AvailabilityRecord, 0)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan record: %w", ErrScanRow, method, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %w", ErrScanRow, method, err)
	}
	return records, nil
}

func nullablePrice(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	price := v.Int64
	return &price
}
