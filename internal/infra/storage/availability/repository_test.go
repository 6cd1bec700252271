package availability

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RentalService/pkg/ptr"
)

func newRepo(t *testing.T) (*Repository, *sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), db, mock
}

var upsertColumns = []string{"id", "property_id", "date", "is_available", "price", "inserted"}

func TestRepository_Upsert_SingleStatement(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		"INSERT INTO property_availability (property_id,date,is_available,price) VALUES ($1,$2,$3,$4) " +
			"ON CONFLICT (property_id, date) DO UPDATE SET is_available = EXCLUDED.is_available, price = EXCLUDED.price " +
			"RETURNING id, property_id, date, is_available, price, (xmax = 0) AS inserted")).
		WithArgs(int64(1), "2025-06-01", false, int64(900)).
		WillReturnRows(sqlmock.NewRows(upsertColumns).AddRow(int64(7), int64(1), "2025-06-01", false, int64(900), true))

	rec, created, err := repo.Upsert(context.Background(), &domain.AvailabilityRecord{
		PropertyID:  1,
		Date:        "2025-06-01",
		IsAvailable: false,
		Price:       ptr.Ptr(int64(900)),
	})

	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, int64(7), rec.ID)
	require.NotNil(t, rec.Price)
	assert.Equal(t, int64(900), *rec.Price)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Upsert_UpdateKeepsIDAndClearsPrice(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectQuery("INSERT INTO property_availability").
		WithArgs(int64(1), "2025-06-01", true, nil).
		WillReturnRows(sqlmock.NewRows(upsertColumns).AddRow(int64(7), int64(1), "2025-06-01", true, nil, false))

	rec, created, err := repo.Upsert(context.Background(), &domain.AvailabilityRecord{
		PropertyID:  1,
		Date:        "2025-06-01",
		IsAvailable: true,
	})

	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, int64(7), rec.ID)
	assert.Nil(t, rec.Price)
}

func TestRepository_List(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id, property_id, date, is_available, price FROM property_availability " +
			"WHERE property_id = $1 AND date >= $2 AND date <= $3 ORDER BY date ASC LIMIT 90 OFFSET 0")).
		WithArgs(int64(1), "2025-06-01", "2025-06-01").
		WillReturnRows(sqlmock.NewRows(columns).AddRow(int64(7), int64(1), "2025-06-01", true, nil))

	list, err := repo.List(context.Background(), domain.AvailabilityFilter{
		PropertyID: 1,
		StartDate:  ptr.Ptr("2025-06-01"),
		EndDate:    ptr.Ptr("2025-06-01"),
		Limit:      90,
	})

	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "2025-06-01", list[0].Date)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Update(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		"UPDATE property_availability SET is_available = $1, price = $2 WHERE id = $3 " +
			"RETURNING id, property_id, date, is_available, price")).
		WithArgs(false, nil, int64(7)).
		WillReturnRows(sqlmock.NewRows(columns).AddRow(int64(7), int64(1), "2025-06-01", false, nil))

	rec, err := repo.Update(context.Background(), 7, domain.AvailabilityPatch{
		IsAvailable: ptr.Ptr(false),
		PriceSet:    true,
	})

	require.NoError(t, err)
	assert.False(t, rec.IsAvailable)
	assert.Nil(t, rec.Price)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Update_OnlyPrice(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE property_availability SET price = $1 WHERE id = $2")).
		WithArgs(int64(1000), int64(7)).
		WillReturnRows(sqlmock.NewRows(columns).AddRow(int64(7), int64(1), "2025-06-01", true, int64(1000)))

	rec, err := repo.Update(context.Background(), 7, domain.AvailabilityPatch{
		PriceSet: true,
		Price:    ptr.Ptr(int64(1000)),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1000), *rec.Price)
}

func TestRepository_Update_NotFound(t *testing.T) {
	repo, _, mock := newRepo(t)
	mock.ExpectQuery("UPDATE property_availability").WillReturnRows(sqlmock.NewRows(columns))

	_, err := repo.Update(context.Background(), 404, domain.AvailabilityPatch{IsAvailable: ptr.Ptr(true)})

	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestRepository_Update_EmptyPatch(t *testing.T) {
	repo, _, _ := newRepo(t)

	_, err := repo.Update(context.Background(), 1, domain.AvailabilityPatch{})

	assert.ErrorIs(t, err, ErrEmptyPatch)
}

func TestRepository_Delete(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("DELETE FROM property_availability WHERE id = $1 RETURNING id, property_id, date, is_available, price")).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(columns).AddRow(int64(7), int64(1), "2025-06-01", false, int64(900)))

	rec, err := repo.Delete(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, int64(7), rec.ID)
	assert.Equal(t, int64(900), *rec.Price)
}

func TestRepository_Delete_NotFound(t *testing.T) {
	repo, _, mock := newRepo(t)
	mock.ExpectQuery("DELETE FROM property_availability").WillReturnError(sql.ErrNoRows)

	_, err := repo.Delete(context.Background(), 7)

	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestRepository_GetByDates_LocksInsideTransaction(t *testing.T) {
	repo, db, mock := newRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id, property_id, date, is_available, price FROM property_availability " +
			"WHERE property_id = $1 AND date IN ($2,$3) ORDER BY date ASC FOR UPDATE")).
		WithArgs(int64(1), "2025-06-01", "2025-06-02").
		WillReturnRows(sqlmock.NewRows(columns).AddRow(int64(7), int64(1), "2025-06-01", true, nil))
	mock.ExpectCommit()

	tx, err := dbmetrics.Wrap(db, nil).BeginTx(context.Background(), nil)
	require.NoError(t, err)
	ctx := dbmetrics.WithTx(context.Background(), tx)

	list, err := repo.GetByDates(ctx, 1, []string{"2025-06-01", "2025-06-02"})
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	assert.Len(t, list, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByDates_NoLockOutsideTransaction(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectQuery(`ORDER BY date ASC$`).
		WillReturnRows(sqlmock.NewRows(columns))

	list, err := repo.GetByDates(context.Background(), 1, []string{"2025-06-01"})

	require.NoError(t, err)
	assert.Empty(t, list)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_MarkUnavailable(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		"INSERT INTO property_availability (property_id,date,is_available) VALUES ($1,$2,$3),($4,$5,$6) " +
			"ON CONFLICT (property_id, date) DO UPDATE SET is_available = EXCLUDED.is_available " +
			"RETURNING id, property_id, date, is_available, price")).
		WithArgs(int64(1), "2025-06-01", false, int64(1), "2025-06-02", false).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(int64(7), int64(1), "2025-06-01", false, int64(900)).
			AddRow(int64(8), int64(1), "2025-06-02", false, nil))

	list, err := repo.MarkUnavailable(context.Background(), 1, []string{"2025-06-01", "2025-06-02"})

	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, int64(900), *list[0].Price)
	assert.False(t, list[1].IsAvailable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_EmptyDates(t *testing.T) {
	repo, _, mock := newRepo(t)

	got, err := repo.MarkUnavailable(context.Background(), 1, nil)
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = repo.GetByDates(context.Background(), 1, nil)
	require.NoError(t, err)
	assert.Empty(t, got)

	assert.NoError(t, mock.ExpectationsWereMet())
}
