package booking

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
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

var (
	checkIn  = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	checkOut = time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC)
	created  = time.Date(2025, 5, 20, 10, 0, 0, 0, time.UTC)
)

func bookingRows() *sqlmock.Rows {
	return sqlmock.NewRows(columns).
		AddRow(int64(1), int64(1), checkIn, checkOut, 4, int64(2550), "Jane Doe", "jane@x.com", created)
}

func TestRepository_Create(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO bookings (property_id,check_in,check_out,guests,total_price,guest_name,guest_email) VALUES ($1,$2,$3,$4,$5,$6,$7) RETURNING id, created_at")).
		WithArgs(int64(1), checkIn, checkOut, 4, int64(2550), "Jane Doe", "jane@x.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(10), created))

	b, err := repo.Create(context.Background(), &domain.Booking{
		PropertyID: 1,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Guests:     4,
		TotalPrice: 2550,
		GuestName:  "Jane Doe",
		GuestEmail: "jane@x.com",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(10), b.ID)
	assert.Equal(t, created, b.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_ExecError(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectQuery("INSERT INTO bookings").WillReturnError(sql.ErrConnDone)

	_, err := repo.Create(context.Background(), &domain.Booking{})

	assert.ErrorIs(t, err, ErrExecQuery)
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM bookings WHERE id = $1")).
		WithArgs(int64(1)).
		WillReturnRows(bookingRows())

	b, err := repo.GetByID(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, int64(2550), b.TotalPrice)
	assert.Equal(t, checkOut, b.CheckOut)
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectQuery("FROM bookings").WillReturnRows(sqlmock.NewRows(columns))

	_, err := repo.GetByID(context.Background(), 2)

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestRepository_List(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM bookings WHERE property_id = $1 AND guest_email = $2 ORDER BY id ASC LIMIT 50 OFFSET 10")).
		WithArgs(int64(1), "jane@x.com").
		WillReturnRows(bookingRows())

	list, err := repo.List(context.Background(), domain.BookingsFilter{
		PropertyID: ptr.Ptr(int64(1)),
		GuestEmail: ptr.Ptr("jane@x.com"),
		Limit:      50,
		Offset:     10,
	})

	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Exists(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS ( SELECT 1 FROM bookings WHERE id = $1 )")).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	ok, err := repo.Exists(context.Background(), 3)

	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRepository_Delete(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta("DELETE FROM bookings WHERE id = $1 RETURNING id")).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(3)))

	id, err := repo.Delete(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, int64(3), id)
}

func TestRepository_Delete_NotFound(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectQuery("DELETE FROM bookings").WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.Delete(context.Background(), 3)

	assert.ErrorIs(t, err, ErrBookingNotFound)
}
