package property

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

// pgForeignKeyViolation код ошибки PostgreSQL foreign_key_violation
const pgForeignKeyViolation = "23503"

var columns = []string{
	"id",
	"title",
	"description",
	"location",
	"price",
	"images",
	"bedrooms",
	"bathrooms",
	"guests",
	"amenities",
	"rating",
	"reviews",
	"host_name",
	"host_avatar",
	"created_at",
}

// Repository репозиторий объектов размещения
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория объектов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает объект по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Property, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("properties").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	p, err := scanProperty(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPropertyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan property: %w", ErrScanRow, err)
	}

	return p, nil
}

// List возвращает объекты по фильтру, упорядоченные по id
func (r *Repository) List(ctx context.Context, filter domain.PropertyFilter) ([]*domain.Property, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(columns...).From("properties")

	if filter.Location != nil {
		builder = builder.Where(squirrel.ILike{"location": "%" + *filter.Location + "%"})
	}
	if filter.MinGuests != nil {
		builder = builder.Where(squirrel.GtOrEq{"guests": *filter.MinGuests})
	}

	query, args, err := builder.
		OrderBy("id ASC").
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

	properties := make([]*domain.Property, 0)
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan property: %w", ErrScanRow, err)
		}
		properties = append(properties, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %w", ErrScanRow, err)
	}

	return properties, nil
}

// Create сохраняет объект, id и created_at назначает БД
func (r *Repository) Create(ctx context.Context, p *domain.Property) (*domain.Property, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	images, err := encodeStrings(p.Images)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - images: %v", ErrEncodeJSON, err)
	}
	amenities, err := encodeStrings(p.Amenities)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - amenities: %v", ErrEncodeJSON, err)
	}

	query, args, err := psqlbuilder.Insert("properties").
		Columns(columns[1 : len(columns)-1]...).
		Values(
			p.Title,
			p.Description,
			p.Location,
			p.Price,
			images,
			p.Bedrooms,
			p.Bathrooms,
			p.Guests,
			amenities,
			p.Rating,
			p.Reviews,
			p.HostName,
			p.HostAvatar,
		).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&p.ID, &p.CreatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return p, nil
}

// Update частично обновляет объект одним UPDATE ... RETURNING
func (r *Repository) Update(ctx context.Context, id int64, patch domain.PropertyPatch) (*domain.Property, error) {
	if patch.IsEmpty() {
		return nil, ErrEmptyPatch
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Update("properties").Where(squirrel.Eq{"id": id})
	if patch.Title != nil {
		builder = builder.Set("title", *patch.Title)
	}
	if patch.Description != nil {
		builder = builder.Set("description", *patch.Description)
	}
	if patch.Location != nil {
		builder = builder.Set("location", *patch.Location)
	}
	if patch.Price != nil {
		builder = builder.Set("price", *patch.Price)
	}
	if patch.Images != nil {
		images, err := encodeStrings(patch.Images)
		if err != nil {
			return nil, fmt.Errorf("%w: Update - images: %v", ErrEncodeJSON, err)
		}
		builder = builder.Set("images", images)
	}
	if patch.Bedrooms != nil {
		builder = builder.Set("bedrooms", *patch.Bedrooms)
	}
	if patch.Bathrooms != nil {
		builder = builder.Set("bathrooms", *patch.Bathrooms)
	}
	if patch.Guests != nil {
		builder = builder.Set("guests", *patch.Guests)
	}
	if patch.Amenities != nil {
		amenities, err := encodeStrings(patch.Amenities)
		if err != nil {
			return nil, fmt.Errorf("%w: Update - amenities: %v", ErrEncodeJSON, err)
		}
		builder = builder.Set("amenities", amenities)
	}
	if patch.Rating != nil {
		builder = builder.Set("rating", *patch.Rating)
	}
	if patch.Reviews != nil {
		builder = builder.Set("reviews", *patch.Reviews)
	}
	if patch.HostName != nil {
		builder = builder.Set("host_name", *patch.HostName)
	}
	if patch.HostAvatar != nil {
		builder = builder.Set("host_avatar", *patch.HostAvatar)
	}

	query, args, err := builder.Suffix("RETURNING " + strings.Join(columns, ", ")).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	p, err := scanProperty(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPropertyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %w", ErrExecQuery, err)
	}

	return p, nil
}

// Delete удаляет объект вместе с календарем и отзывами и возвращает id удаленной записи.
// Объект с бронированиями не удаляется
func (r *Repository) Delete(ctx context.Context, id int64) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("properties").
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	var deletedID int64
	err = executor.QueryRowContext(ctx, query, args...).Scan(&deletedID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrPropertyNotFound
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == pgForeignKeyViolation {
		return 0, ErrPropertyHasBookings
	}
	if err != nil {
		return 0, fmt.Errorf("%w: Delete - execute delete: %w", ErrExecQuery, err)
	}

	return deletedID, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProperty(row rowScanner) (*domain.Property, error) {
	var (
		p                 domain.Property
		images, amenities []byte
	)

	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Description,
		&p.Location,
		&p.Price,
		&images,
		&p.Bedrooms,
		&p.Bathrooms,
		&p.Guests,
		&amenities,
		&p.Rating,
		&p.Reviews,
		&p.HostName,
		&p.HostAvatar,
		&p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if p.Images, err = decodeStrings(images); err != nil {
		return nil, fmt.Errorf("images: %w", err)
	}
	if p.Amenities, err = decodeStrings(amenities); err != nil {
		return nil, fmt.Errorf("amenities: %w", err)
	}

	return &p, nil
}

// encodeStrings JSONB передается строкой: []byte lib/pq отправил бы как bytea
func encodeStrings(values []string) (string, error) {
	if values == nil {
		values = []string{}
	}
	data, err := json.Marshal(values)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func decodeStrings(data []byte) ([]string, error) {
	values := make([]string, 0)
	if len(data) == 0 {
		return values, nil
	}
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, err
	}
	return values, nil
}
