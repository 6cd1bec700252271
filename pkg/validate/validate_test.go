package validate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Title    string   `json:"title" validate:"required"`
	Guests   *int     `json:"guests" validate:"required,gt=0"`
	Status   string   `json:"status" validate:"omitempty,oneof=pending completed"`
	Currency string   `json:"currency,omitempty" validate:"omitempty,iso4217"`
	Images   []string `json:"images" validate:"required,min=1"`
}

func TestFields(t *testing.T) {
	v := New()
	zero := 0

	err := v.Struct(sample{Guests: &zero, Status: "unknown", Images: []string{}})
	fields := Fields(err)

	require.Len(t, fields, 4)
	assert.Equal(t, FieldError{Field: "title", Tag: "required"}, fields[0])
	assert.Equal(t, "guests", fields[1].Field)
	assert.Equal(t, "gt", fields[1].Tag)
	assert.Equal(t, "status must be one of: pending, completed", fields[2].Message())
	assert.Equal(t, "images", fields[3].Field)
}

func TestFields_Valid(t *testing.T) {
	guests := 2
	err := New().Struct(sample{Title: "Villa", Guests: &guests, Currency: "EUR", Images: []string{"a.jpg"}})

	assert.NoError(t, err)
	assert.Nil(t, Fields(err))
}

func TestFields_OtherError(t *testing.T) {
	assert.Nil(t, Fields(errors.New("boom")))
}
