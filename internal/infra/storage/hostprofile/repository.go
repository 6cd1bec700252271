package hostprofile

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RentalService/pkg/psqlbuilder"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

var columns = []string{
	"id",
	"user_id",
	"languages",
	"response_time",
	"response_rate",
	"superhost_status",
	"property_count",
	"total_reviews",
	"average_rating",
	"created_at",
	"updated_at",
}

// Repository репозиторий профилей хозяев
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория профилей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет профиль. Второй профиль пользователя отклоняется уникальным индексом
func (r *Repository) Create(ctx context.Context, p *domain.HostProfile) (*domain.HostProfile, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	languages, err := encodeLanguages(p.Languages)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - languages: %v", ErrEncodeJSON, err)
	}

	query, args, err := psqlbuilder.Insert("host_profiles").
		Columns(columns[1 : len(columns)-2]...).
		Values(
			p.UserID,
			languages,
			p.ResponseTime,
			p.ResponseRate,
			p.SuperhostStatus,
			p.PropertyCount,
			p.TotalReviews,
			p.AverageRating,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	switch pgCode(err) {
	case pgUniqueViolation:
		return nil, ErrDuplicateProfile
	case pgForeignKeyViolation:
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return p, nil
}

// GetByID получает профиль по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.HostProfile, error) {
	return r.getBy(ctx, "GetByID", squirrel.Eq{"id": id})
}

// GetByUserID получает профиль пользователя
func (r *Repository) GetByUserID(ctx context.Context, userID int64) (*domain.HostProfile, error) {
	return r.getBy(ctx, "GetByUserID", squirrel.Eq{"user_id": userID})
}

func (r *Repository) getBy(ctx context.Context, method string, where squirrel.Eq) (*domain.HostProfile, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("host_profiles").
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, method, err)
	}

	p, err := scanProfile(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan profile: %w", ErrScanRow, method, err)
	}

	return p, nil
}

// Update частично обновляет профиль и отметку updated_at
func (r *Repository) Update(ctx context.Context, id int64, patch domain.HostProfilePatch) (*domain.HostProfile, error) {
	if patch.IsEmpty() {
		return nil, ErrEmptyPatch
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Update("host_profiles").Where(squirrel.Eq{"id": id})
	if patch.Languages != nil {
		languages, err := encodeLanguages(patch.Languages)
		if err != nil {
			return nil, fmt.Errorf("%w: Update - languages: %v", ErrEncodeJSON, err)
		}
		builder = builder.Set("languages", languages)
	}
	if patch.ResponseTime != nil {
		builder = builder.Set("response_time", *patch.ResponseTime)
	}
	if patch.ResponseRate != nil {
		builder = builder.Set("response_rate", *patch.ResponseRate)
	}
	if patch.SuperhostStatus != nil {
		builder = builder.Set("superhost_status", *patch.SuperhostStatus)
	}
	if patch.PropertyCount != nil {
		builder = builder.Set("property_count", *patch.PropertyCount)
	}
	if patch.TotalReviews != nil {
		builder = builder.Set("total_reviews", *patch.TotalReviews)
	}
	if patch.AverageRating != nil {
		builder = builder.Set("average_rating", *patch.AverageRating)
	}
	builder = builder.Set("updated_at", squirrel.Expr("NOW()"))

	query, args, err := builder.Suffix("RETURNING " + strings.Join(columns, ", ")).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	p, err := scanProfile(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %w", ErrExecQuery, err)
	}

	return p, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProfile(row rowScanner) (*domain.HostProfile, error) {
	var (
		p         domain.HostProfile
		languages []byte
	)
	err := row.Scan(
		&p.ID,
		&p.UserID,
		&languages,
		&p.ResponseTime,
		&p.ResponseRate,
		&p.SuperhostStatus,
		&p.PropertyCount,
		&p.TotalReviews,
		&p.AverageRating,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.Languages = make([]string, 0)
	if len(languages) > 0 {
		if err := json.Unmarshal(languages, &p.Languages); err != nil {
			return nil, fmt.Errorf("languages: %w", err)
		}
	}
	return &p, nil
}

// encodeLanguages JSONB передается строкой: []byte lib/pq отправил бы как bytea
func encodeLanguages(languages []string) (string, error) {
	if languages == nil {
		languages = []string{}
	}
	data, err := json.Marshal(languages)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func pgCode(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}
