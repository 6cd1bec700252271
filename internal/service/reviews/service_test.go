package reviews

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	propertyRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/property"
	reviewRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/review"
	"github.com/m04kA/SMC-RentalService/internal/service/reviews/models"
	"github.com/m04kA/SMC-RentalService/pkg/ptr"
	"github.com/m04kA/SMC-RentalService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeReviews struct {
	saved      []*domain.Review
	lastFilter domain.ReviewsFilter
	lastPatch  domain.ReviewPatch
}

func (f *fakeReviews) Create(_ context.Context, rv *domain.Review) (*domain.Review, error) {
	rv.ID = int64(len(f.saved) + 1)
	rv.CreatedAt = time.Now()
	f.saved = append(f.saved, rv)
	return rv, nil
}

func (f *fakeReviews) GetByID(_ context.Context, id int64) (*domain.Review, error) {
	for _, rv := range f.saved {
		if rv.ID == id {
			return rv, nil
		}
	}
	return nil, reviewRepo.ErrReviewNotFound
}

func (f *fakeReviews) List(_ context.Context, filter domain.ReviewsFilter) ([]*domain.Review, error) {
	f.lastFilter = filter
	return f.saved, nil
}

func (f *fakeReviews) Update(ctx context.Context, id int64, patch domain.ReviewPatch) (*domain.Review, error) {
	f.lastPatch = patch
	rv, err := f.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.Rating != nil {
		rv.Rating = *patch.Rating
	}
	if patch.Cleanliness != nil {
		rv.Cleanliness = *patch.Cleanliness
	}
	if patch.ClearComment {
		rv.Comment = nil
	} else if patch.Comment != nil {
		rv.Comment = patch.Comment
	}
	return rv, nil
}

func (f *fakeReviews) Delete(ctx context.Context, id int64) (*domain.Review, error) {
	rv, err := f.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	f.saved = nil
	return rv, nil
}

type fakeProperties struct {
	ids map[int64]bool
}

func (f *fakeProperties) GetByID(_ context.Context, id int64) (*domain.Property, error) {
	if !f.ids[id] {
		return nil, propertyRepo.ErrPropertyNotFound
	}
	return &domain.Property{ID: id}, nil
}

type fakeBookings struct {
	ids map[int64]bool
	err error
}

func (f *fakeBookings) Exists(_ context.Context, id int64) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.ids[id], nil
}

type fakeUsers struct {
	ids map[int64]bool
	err error
}

func (f *fakeUsers) Exists(_ context.Context, id int64) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.ids[id], nil
}

func newService() (*Service, *fakeReviews, *fakeBookings) {
	reviews := &fakeReviews{}
	bookings := &fakeBookings{ids: map[int64]bool{5: true}}
	properties := &fakeProperties{ids: map[int64]bool{1: true}}
	users := &fakeUsers{ids: map[int64]bool{42: true}}
	return NewService(reviews, properties, bookings, users, 50, 100, nopLogger{}), reviews, bookings
}

func validCreate() *models.CreateRequest {
	return &models.CreateRequest{
		PropertyID:    types.NewFlexInt(1),
		BookingID:     types.NewFlexInt(5),
		Rating:        ptr.Ptr(4.5),
		Cleanliness:   ptr.Ptr(5.0),
		Accuracy:      ptr.Ptr(4.0),
		CheckIn:       ptr.Ptr(5.0),
		Communication: ptr.Ptr(5.0),
		Location:      ptr.Ptr(4.0),
		Value:         ptr.Ptr(4.0),
		Comment:       ptr.Ptr("  Lovely place  "),
	}
}

func TestService_Create(t *testing.T) {
	svc, reviews, _ := newService()

	resp, err := svc.Create(context.Background(), 42, validCreate())

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.UserID)
	assert.Equal(t, 4.5, resp.Rating)
	assert.Equal(t, "Lovely place", *resp.Comment)
	require.Len(t, reviews.saved, 1)
}

func TestService_Create_TruncatesSubScores(t *testing.T) {
	svc, _, _ := newService()
	req := validCreate()
	req.Cleanliness = ptr.Ptr(4.9)
	req.Comment = ptr.Ptr("   ")

	resp, err := svc.Create(context.Background(), 42, req)

	require.NoError(t, err)
	assert.Equal(t, 4, resp.Cleanliness)
	assert.Nil(t, resp.Comment)
}

func TestService_Create_Validation(t *testing.T) {
	tests := []struct {
		name      string
		modify    func(r *models.CreateRequest)
		want      error
		wantField string
	}{
		{name: "missing property", modify: func(r *models.CreateRequest) { r.PropertyID = types.FlexInt{} }, want: ErrMissingPropertyID},
		{name: "null booking", modify: func(r *models.CreateRequest) { r.BookingID = types.NullFlexInt() }, want: ErrMissingBookingID},
		{name: "invalid property", modify: func(r *models.CreateRequest) { r.PropertyID = types.FlexIntFromString("abc") }, want: ErrInvalidPropertyID},
		{name: "negative booking", modify: func(r *models.CreateRequest) { r.BookingID = types.NewFlexInt(-5) }, want: ErrInvalidBookingID},
		{name: "missing rating", modify: func(r *models.CreateRequest) { r.Rating = nil }, want: ErrMissingScore, wantField: "rating"},
		{name: "missing check in", modify: func(r *models.CreateRequest) { r.CheckIn = nil }, want: ErrMissingScore, wantField: "checkIn"},
		{
			name: "missing field wins over earlier range error",
			modify: func(r *models.CreateRequest) {
				r.Rating = ptr.Ptr(9.0)
				r.Value = nil
			},
			want:      ErrMissingScore,
			wantField: "value",
		},
		{name: "rating below one", modify: func(r *models.CreateRequest) { r.Rating = ptr.Ptr(0.5) }, want: ErrInvalidScore, wantField: "rating"},
		{name: "zero accuracy", modify: func(r *models.CreateRequest) { r.Accuracy = ptr.Ptr(0.0) }, want: ErrInvalidScore, wantField: "accuracy"},
		{name: "location above five", modify: func(r *models.CreateRequest) { r.Location = ptr.Ptr(6.0) }, want: ErrInvalidScore, wantField: "location"},
		{name: "unknown property", modify: func(r *models.CreateRequest) { r.PropertyID = types.NewFlexInt(2) }, want: ErrPropertyNotFound},
		{name: "unknown booking", modify: func(r *models.CreateRequest) { r.BookingID = types.NewFlexInt(6) }, want: ErrBookingNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, reviews, _ := newService()
			req := validCreate()
			tt.modify(req)

			_, err := svc.Create(context.Background(), 42, req)

			require.ErrorIs(t, err, tt.want)
			if tt.wantField != "" {
				var verr *ValidationError
				require.True(t, errors.As(err, &verr))
				assert.Equal(t, tt.wantField, verr.Field)
			}
			assert.Empty(t, reviews.saved)
		})
	}
}

func TestService_Create_RangeMessage(t *testing.T) {
	svc, _, _ := newService()
	req := validCreate()
	req.Communication = ptr.Ptr(7.0)

	_, err := svc.Create(context.Background(), 42, req)

	require.Error(t, err)
	assert.Equal(t, "communication must be a number between 1 and 5", err.Error())
}

func TestService_Create_BookingLookupFailure(t *testing.T) {
	svc, _, bookings := newService()
	bookings.err = errors.New("connection reset")

	_, err := svc.Create(context.Background(), 42, validCreate())

	assert.ErrorIs(t, err, ErrInternal)
}

func TestService_Update(t *testing.T) {
	svc, reviews, _ := newService()
	_, err := svc.Create(context.Background(), 42, validCreate())
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), 1, &models.UpdateRequest{})
	assert.ErrorIs(t, err, ErrNoFieldsToUpdate)

	_, err = svc.Update(context.Background(), 1, &models.UpdateRequest{Value: ptr.Ptr(0.0)})
	assert.ErrorIs(t, err, ErrInvalidScore)

	_, err = svc.Update(context.Background(), 99, &models.UpdateRequest{Rating: ptr.Ptr(3.0)})
	assert.ErrorIs(t, err, ErrReviewNotFound)

	resp, err := svc.Update(context.Background(), 1, &models.UpdateRequest{
		Rating:      ptr.Ptr(3.5),
		Cleanliness: ptr.Ptr(2.7),
		Comment:     ptr.Ptr(""),
	})
	require.NoError(t, err)
	assert.Equal(t, 3.5, resp.Rating)
	assert.Equal(t, 2, resp.Cleanliness)
	assert.Nil(t, resp.Comment)
	assert.True(t, reviews.lastPatch.ClearComment)
}

func TestService_List(t *testing.T) {
	svc, reviews, _ := newService()

	_, err := svc.List(context.Background(), &models.ListRequest{PropertyID: ptr.Ptr(int64(1)), Limit: 500, Offset: -3})

	require.NoError(t, err)
	assert.Equal(t, int64(1), *reviews.lastFilter.PropertyID)
	assert.Equal(t, 100, reviews.lastFilter.Limit)
	assert.Equal(t, 0, reviews.lastFilter.Offset)
}

func TestService_GetAndDelete(t *testing.T) {
	svc, _, _ := newService()

	_, err := svc.GetByID(context.Background(), 1)
	assert.ErrorIs(t, err, ErrReviewNotFound)

	_, err = svc.Create(context.Background(), 42, validCreate())
	require.NoError(t, err)

	resp, err := svc.Delete(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Review deleted successfully", resp.Message)
	assert.Equal(t, int64(1), resp.Review.ID)

	_, err = svc.Delete(context.Background(), 1)
	assert.ErrorIs(t, err, ErrReviewNotFound)
}

func TestService_Create_UnknownUser(t *testing.T) {
	reviews := &fakeReviews{}
	svc := NewService(
		reviews,
		&fakeProperties{ids: map[int64]bool{1: true}},
		&fakeBookings{ids: map[int64]bool{5: true}},
		&fakeUsers{},
		50, 100, nopLogger{},
	)

	_, err := svc.Create(context.Background(), 42, validCreate())

	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.Empty(t, reviews.saved)
}
