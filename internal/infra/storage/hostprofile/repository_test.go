package hostprofile

import (
	"context"
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

var stamp = time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC)

func profileRow(id int64) *sqlmock.Rows {
	return sqlmock.NewRows(columns).
		AddRow(id, int64(4), []byte(`["English","Spanish"]`), "within an hour", 98, true, 3, 120, 4.9, stamp, stamp)
}

func TestRepository_Create(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO host_profiles (user_id,languages,response_time,response_rate,superhost_status,property_count,total_reviews,average_rating) VALUES ($1,$2,$3,$4,$5,$6,$7,$8) RETURNING id, created_at, updated_at")).
		WithArgs(int64(4), `["English"]`, "within a day", 90, false, 0, 0, 0.0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(2), stamp, stamp))

	p, err := repo.Create(context.Background(), &domain.HostProfile{
		UserID:       4,
		Languages:    []string{"English"},
		ResponseTime: "within a day",
		ResponseRate: 90,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(2), p.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_Errors(t *testing.T) {
	tests := []struct {
		name string
		code pq.ErrorCode
		want error
	}{
		{"second profile", "23505", ErrDuplicateProfile},
		{"unknown user", "23503", ErrUserNotFound},
		{"check violation", "23514", ErrExecQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newRepo(t)
			mock.ExpectQuery("INSERT INTO host_profiles").WillReturnError(&pq.Error{Code: tt.code})

			_, err := repo.Create(context.Background(), &domain.HostProfile{UserID: 4})

			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestRepository_GetByUserID(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM host_profiles WHERE user_id = $1")).
		WithArgs(int64(4)).
		WillReturnRows(profileRow(2))

	p, err := repo.GetByUserID(context.Background(), 4)

	require.NoError(t, err)
	assert.Equal(t, []string{"English", "Spanish"}, p.Languages)
	assert.True(t, p.SuperhostStatus)
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM host_profiles WHERE id = $1")).
		WillReturnRows(sqlmock.NewRows(columns))

	_, err := repo.GetByID(context.Background(), 2)

	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestRepository_Update(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE host_profiles SET response_rate = $1, average_rating = $2, updated_at = NOW() WHERE id = $3 RETURNING id")).
		WithArgs(95, 4.8, int64(2)).
		WillReturnRows(profileRow(2))

	_, err := repo.Update(context.Background(), 2, domain.HostProfilePatch{
		ResponseRate:  ptr.Ptr(95),
		AverageRating: ptr.Ptr(4.8),
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Update_EmptyPatch(t *testing.T) {
	repo, _ := newRepo(t)

	_, err := repo.Update(context.Background(), 2, domain.HostProfilePatch{})

	assert.ErrorIs(t, err, ErrEmptyPatch)
}
