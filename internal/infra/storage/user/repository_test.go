package user

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/pkg/ptr"
)

func newRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

var joined = time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)

func userRow(id int64) *sqlmock.Rows {
	return sqlmock.NewRows(columns).
		AddRow(id, "jane@example.com", "Jane", "host", nil, "+100", nil, true, joined)
}

func TestRepository_Create(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users (email,name,user_type,avatar,phone,bio,is_verified) VALUES ($1,$2,$3,$4,$5,$6,$7) RETURNING id, joined_at")).
		WithArgs("jane@example.com", "Jane", "guest", nil, nil, "Traveller", false).
		WillReturnRows(sqlmock.NewRows([]string{"id", "joined_at"}).AddRow(int64(4), joined))

	u, err := repo.Create(context.Background(), &domain.User{
		Email:    "jane@example.com",
		Name:     "Jane",
		UserType: domain.UserGuest,
		Bio:      ptr.Ptr("Traveller"),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(4), u.ID)
	assert.Equal(t, joined, u.JoinedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_DuplicateEmail(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(&pq.Error{Code: "23505", Message: "duplicate key value violates unique constraint"})

	_, err := repo.Create(context.Background(), &domain.User{UserType: domain.UserGuest})

	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = $1")).
		WithArgs(int64(4)).
		WillReturnRows(userRow(4))

	u, err := repo.GetByID(context.Background(), 4)

	require.NoError(t, err)
	assert.Equal(t, domain.UserHost, u.UserType)
	assert.Nil(t, u.Avatar)
	assert.Equal(t, "+100", *u.Phone)
	assert.True(t, u.IsVerified)
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectQuery("FROM users").WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 4)

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestRepository_Exists(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS ( SELECT 1 FROM users WHERE id = $1 )")).
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	exists, err := repo.Exists(context.Background(), 4)

	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRepository_List(t *testing.T) {
	repo, mock := newRepo(t)
	userType := domain.UserHost
	mock.ExpectQuery(regexp.QuoteMeta("WHERE (name ILIKE $1 OR email ILIKE $2) AND user_type = $3 AND is_verified = $4 ORDER BY joined_at DESC, id DESC LIMIT 50 OFFSET 0")).
		WithArgs("%jane%", "%jane%", "host", true).
		WillReturnRows(userRow(4))

	list, err := repo.List(context.Background(), domain.UsersFilter{
		Search:   ptr.Ptr("jane"),
		UserType: &userType,
		Verified: ptr.Ptr(true),
		Limit:    50,
	})

	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Update(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE users SET name = $1, avatar = $2, is_verified = $3 WHERE id = $4 RETURNING id")).
		WithArgs("Jane Doe", nil, true, int64(4)).
		WillReturnRows(userRow(4))

	_, err := repo.Update(context.Background(), 4, domain.UserPatch{
		Name:       ptr.Ptr("Jane Doe"),
		Avatar:     ptr.Ptr(""),
		IsVerified: ptr.Ptr(true),
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Update_NotFound(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectQuery("UPDATE users").WillReturnRows(sqlmock.NewRows(columns))

	_, err := repo.Update(context.Background(), 4, domain.UserPatch{Name: ptr.Ptr("Jane")})

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestRepository_Delete(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta("DELETE FROM users WHERE id = $1 RETURNING id")).
		WithArgs(int64(4)).
		WillReturnRows(userRow(4))

	u, err := repo.Delete(context.Background(), 4)

	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", u.Email)
}
