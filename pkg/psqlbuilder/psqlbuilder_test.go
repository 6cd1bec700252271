package psqlbuilder

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect_UsesDollarPlaceholders(t *testing.T) {
	query, args, err := Select("id").
		From("property_availability").
		Where(squirrel.Eq{"property_id": 1}).
		Where(squirrel.GtOrEq{"date": "2025-06-01"}).
		ToSql()

	require.NoError(t, err)
	assert.Equal(t, "SELECT id FROM property_availability WHERE property_id = $1 AND date >= $2", query)
	assert.Equal(t, []interface{}{1, "2025-06-01"}, args)
}

func TestInsert_UsesDollarPlaceholders(t *testing.T) {
	query, _, err := Insert("bookings").Columns("guests", "total_price").Values(4, 2550).ToSql()

	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO bookings (guests,total_price) VALUES ($1,$2)", query)
}
