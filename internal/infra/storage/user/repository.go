package user

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
	"email",
	"name",
	"user_type",
	"avatar",
	"phone",
	"bio",
	"is_verified",
	"joined_at",
}

// Repository репозиторий пользователей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория пользователей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет пользователя. Повторный email отклоняется уникальным индексом
func (r *Repository) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("users").
		Columns(columns[1 : len(columns)-1]...).
		Values(
			u.Email,
			u.Name,
			string(u.UserType),
			u.Avatar,
			u.Phone,
			u.Bio,
			u.IsVerified,
		).
		Suffix("RETURNING id, joined_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&u.ID, &u.JoinedAt)
	if isUniqueViolation(err) {
		return nil, ErrDuplicateEmail
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return u, nil
}

// GetByID получает пользователя по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("users").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	u, err := scanUser(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan user: %w", ErrScanRow, err)
	}

	return u, nil
}

// Exists проверяет наличие пользователя
func (r *Repository) Exists(ctx context.Context, id int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		Prefix("SELECT EXISTS (").
		From("users").
		Where(squirrel.Eq{"id": id}).
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: Exists - build select query: %v", ErrBuildQuery, err)
	}

	var exists bool
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("%w: Exists - scan result: %w", ErrScanRow, err)
	}

	return exists, nil
}

// List получает пользователей по фильтру, сначала недавно зарегистрированные
func (r *Repository) List(ctx context.Context, filter domain.UsersFilter) ([]*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(columns...).From("users")
	if filter.Search != nil {
		pattern := "%" + *filter.Search + "%"
		builder = builder.Where(squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"email": pattern},
		})
	}
	if filter.UserType != nil {
		builder = builder.Where(squirrel.Eq{"user_type": string(*filter.UserType)})
	}
	if filter.Verified != nil {
		builder = builder.Where(squirrel.Eq{"is_verified": *filter.Verified})
	}

	query, args, err := builder.
		OrderBy("joined_at DESC", "id DESC").
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

	users := make([]*domain.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan user: %w", ErrScanRow, err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %w", ErrScanRow, err)
	}

	return users, nil
}

// Update частично обновляет пользователя одним UPDATE ... RETURNING
func (r *Repository) Update(ctx context.Context, id int64, patch domain.UserPatch) (*domain.User, error) {
	if patch.IsEmpty() {
		return nil, ErrEmptyPatch
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Update("users").Where(squirrel.Eq{"id": id})
	if patch.Name != nil {
		builder = builder.Set("name", *patch.Name)
	}
	if patch.UserType != nil {
		builder = builder.Set("user_type", string(*patch.UserType))
	}
	if patch.Avatar != nil {
		builder = builder.Set("avatar", nullable(*patch.Avatar))
	}
	if patch.Phone != nil {
		builder = builder.Set("phone", nullable(*patch.Phone))
	}
	if patch.Bio != nil {
		builder = builder.Set("bio", nullable(*patch.Bio))
	}
	if patch.IsVerified != nil {
		builder = builder.Set("is_verified", *patch.IsVerified)
	}

	query, args, err := builder.Suffix("RETURNING " + strings.Join(columns, ", ")).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	u, err := scanUser(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %w", ErrExecQuery, err)
	}

	return u, nil
}

// Delete удаляет пользователя вместе с профилем хозяина и возвращает удаленную запись
func (r *Repository) Delete(ctx context.Context, id int64) (*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("users").
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	u, err := scanUser(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Delete - execute delete: %w", ErrExecQuery, err)
	}

	return u, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanUser(row rowScanner) (*domain.User, error) {
	var (
		u                  domain.User
		userType           string
		avatar, phone, bio sql.NullString
	)
	err := row.Scan(
		&u.ID,
		&u.Email,
		&u.Name,
		&userType,
		&avatar,
		&phone,
		&bio,
		&u.IsVerified,
		&u.JoinedAt,
	)
	if err != nil {
		return nil, err
	}

	u.UserType = domain.UserType(userType)
	if avatar.Valid {
		u.Avatar = &avatar.String
	}
	if phone.Valid {
		u.Phone = &phone.String
	}
	if bio.Valid {
		u.Bio = &bio.String
	}
	return &u, nil
}

// nullable пустая строка записывается как NULL
func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation
}
