package review

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

var columns = []string{
	"id",
	"property_id",
	"user_id",
	"booking_id",
	"rating",
	"comment",
	"cleanliness",
	"accuracy",
	"check_in",
	"communication",
	"location",
	"value",
	"created_at",
}

// Repository репозиторий отзывов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория отзывов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет отзыв, id и created_at назначает БД
func (r *Repository) Create(ctx context.Context, rv *domain.Review) (*domain.Review, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reviews").
		Columns(columns[1 : len(columns)-1]...).
		Values(
			rv.PropertyID,
			rv.UserID,
			rv.BookingID,
			rv.Rating,
			rv.Comment,
			rv.Cleanliness,
			rv.Accuracy,
			rv.CheckIn,
			rv.Communication,
			rv.Location,
			rv.Value,
		).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&rv.ID, &rv.CreatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return rv, nil
}

// GetByID получает отзыв по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Review, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("reviews").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	rv, err := scanReview(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReviewNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan review: %w", ErrScanRow, err)
	}

	return rv, nil
}

// List получает отзывы по фильтру, сначала новые
func (r *Repository) List(ctx context.Context, filter domain.ReviewsFilter) ([]*domain.Review, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(columns...).From("reviews")
	if filter.PropertyID != nil {
		builder = builder.Where(squirrel.Eq{"property_id": *filter.PropertyID})
	}
	if filter.UserID != nil {
		builder = builder.Where(squirrel.Eq{"user_id": *filter.UserID})
	}
	if filter.BookingID != nil {
		builder = builder.Where(squirrel.Eq{"booking_id": *filter.BookingID})
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

	reviews := make([]*domain.Review, 0)
	for rows.Next() {
		rv, err := scanReview(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan review: %w", ErrScanRow, err)
		}
		reviews = append(reviews, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %w", ErrScanRow, err)
	}

	return reviews, nil
}

// Update частично обновляет отзыв одним UPDATE ... RETURNING
func (r *Repository) Update(ctx context.Context, id int64, patch domain.ReviewPatch) (*domain.Review, error) {
	if patch.IsEmpty() {
		return nil, ErrEmptyPatch
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Update("reviews").Where(squirrel.Eq{"id": id})
	if patch.Rating != nil {
		builder = builder.Set("rating", *patch.Rating)
	}
	switch {
	case patch.ClearComment:
		builder = builder.Set("comment", nil)
	case patch.Comment != nil:
		builder = builder.Set("comment", *patch.Comment)
	}
	scores := []struct {
		column string
		value  *int
	}{
		{"cleanliness", patch.Cleanliness},
		{"accuracy", patch.Accuracy},
		{"check_in", patch.CheckIn},
		{"communication", patch.Communication},
		{"location", patch.Location},
		{"value", patch.Value},
	}
	for _, score := range scores {
		if score.value != nil {
			builder = builder.Set(score.column, *score.value)
		}
	}

	query, args, err := builder.Suffix("RETURNING " + strings.Join(columns, ", ")).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	rv, err := scanReview(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReviewNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %w", ErrExecQuery, err)
	}

	return rv, nil
}

// Delete удаляет отзыв и возвращает удаленную запись
func (r *Repository) Delete(ctx context.Context, id int64) (*domain.Review, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("reviews").
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	rv, err := scanReview(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReviewNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Delete - execute delete: %w", ErrExecQuery, err)
	}

	return rv, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReview(row rowScanner) (*domain.Review, error) {
	var (
		rv      domain.Review
		comment sql.NullString
	)
	err := row.Scan(
		&rv.ID,
		&rv.PropertyID,
		&rv.UserID,
		&rv.BookingID,
		&rv.Rating,
		&comment,
		&rv.Cleanliness,
		&rv.Accuracy,
		&rv.CheckIn,
		&rv.Communication,
		&rv.Location,
		&rv.Value,
		&rv.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if comment.Valid {
		rv.Comment = &comment.String
	}
	return &rv, nil
}
