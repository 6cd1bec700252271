package users

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	userRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/user"
	"github.com/m04kA/SMC-RentalService/internal/service/users/models"
	"github.com/m04kA/SMC-RentalService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUsers struct {
	saved      []*domain.User
	lastFilter domain.UsersFilter
	lastPatch  domain.UserPatch
	err        error
}

func (f *fakeUsers) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, s := range f.saved {
		if s.Email == u.Email {
			return nil, userRepo.ErrDuplicateEmail
		}
	}
	u.ID = int64(len(f.saved) + 1)
	u.JoinedAt = time.Now()
	f.saved = append(f.saved, u)
	return u, nil
}

func (f *fakeUsers) GetByID(_ context.Context, id int64) (*domain.User, error) {
	for _, u := range f.saved {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, userRepo.ErrUserNotFound
}

func (f *fakeUsers) List(_ context.Context, filter domain.UsersFilter) ([]*domain.User, error) {
	f.lastFilter = filter
	return f.saved, f.err
}

func (f *fakeUsers) Update(ctx context.Context, id int64, patch domain.UserPatch) (*domain.User, error) {
	f.lastPatch = patch
	u, err := f.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.Name != nil {
		u.Name = *patch.Name
	}
	return u, nil
}

func (f *fakeUsers) Delete(ctx context.Context, id int64) (*domain.User, error) {
	return f.GetByID(ctx, id)
}

func newService(repo *fakeUsers) *Service {
	return NewService(repo, 50, 100, nopLogger{})
}

func validCreate() *models.CreateRequest {
	return &models.CreateRequest{
		Email:    ptr.Ptr("  Jane@Example.COM "),
		Name:     ptr.Ptr(" Jane Doe "),
		UserType: ptr.Ptr("host"),
		Phone:    ptr.Ptr("  "),
		Bio:      ptr.Ptr(" Hosting since 2019 "),
	}
}

func TestService_Create(t *testing.T) {
	repo := &fakeUsers{}
	svc := newService(repo)

	resp, err := svc.Create(context.Background(), validCreate())

	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", resp.Email)
	assert.Equal(t, "Jane Doe", resp.Name)
	assert.Equal(t, "host", resp.UserType)
	assert.Nil(t, resp.Phone)
	assert.Nil(t, resp.Avatar)
	require.NotNil(t, resp.Bio)
	assert.Equal(t, "Hosting since 2019", *resp.Bio)
	assert.False(t, resp.IsVerified)
}

func TestService_Create_Validation(t *testing.T) {
	tests := []struct {
		name   string
		modify func(r *models.CreateRequest)
		want   error
	}{
		{"missing email", func(r *models.CreateRequest) { r.Email = nil }, ErrMissingEmail},
		{"blank email", func(r *models.CreateRequest) { r.Email = ptr.Ptr("   ") }, ErrMissingEmail},
		{"missing name", func(r *models.CreateRequest) { r.Name = ptr.Ptr("") }, ErrMissingName},
		{"missing type", func(r *models.CreateRequest) { r.UserType = nil }, ErrMissingUserType},
		{"bad email", func(r *models.CreateRequest) { r.Email = ptr.Ptr("jane@example") }, ErrInvalidEmail},
		{"bad type", func(r *models.CreateRequest) { r.UserType = ptr.Ptr("admin") }, ErrInvalidUserType},
		{"long phone", func(r *models.CreateRequest) { r.Phone = ptr.Ptr("+1 555 0100 0100 0100 0100 0100 0100") }, ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeUsers{}
			req := validCreate()
			tt.modify(req)

			_, err := newService(repo).Create(context.Background(), req)

			assert.ErrorIs(t, err, tt.want)
			assert.Empty(t, repo.saved)
		})
	}
}

func TestService_Create_DuplicateEmail(t *testing.T) {
	repo := &fakeUsers{}
	svc := newService(repo)
	_, err := svc.Create(context.Background(), validCreate())
	require.NoError(t, err)

	req := validCreate()
	req.Email = ptr.Ptr("JANE@example.com")
	_, err = svc.Create(context.Background(), req)

	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestService_Create_RepositoryError(t *testing.T) {
	_, err := newService(&fakeUsers{err: errors.New("connection reset")}).Create(context.Background(), validCreate())

	assert.ErrorIs(t, err, ErrInternal)
}

func TestService_List(t *testing.T) {
	t.Run("filters and clamps limit", func(t *testing.T) {
		repo := &fakeUsers{}
		_, err := newService(repo).List(context.Background(), &models.ListRequest{
			Search:   ptr.Ptr("jane"),
			UserType: ptr.Ptr("guest"),
			Verified: ptr.Ptr(true),
			Limit:    500,
			Offset:   -3,
		})

		require.NoError(t, err)
		require.NotNil(t, repo.lastFilter.UserType)
		assert.Equal(t, domain.UserGuest, *repo.lastFilter.UserType)
		assert.Equal(t, "jane", *repo.lastFilter.Search)
		assert.Equal(t, 100, repo.lastFilter.Limit)
		assert.Equal(t, 0, repo.lastFilter.Offset)
	})

	t.Run("empty search is ignored", func(t *testing.T) {
		repo := &fakeUsers{}
		_, err := newService(repo).List(context.Background(), &models.ListRequest{Search: ptr.Ptr("")})

		require.NoError(t, err)
		assert.Nil(t, repo.lastFilter.Search)
		assert.Equal(t, 50, repo.lastFilter.Limit)
	})

	t.Run("invalid user type", func(t *testing.T) {
		_, err := newService(&fakeUsers{}).List(context.Background(), &models.ListRequest{UserType: ptr.Ptr("owner")})

		assert.ErrorIs(t, err, ErrInvalidUserType)
	})
}

func TestService_Update(t *testing.T) {
	repo := &fakeUsers{saved: []*domain.User{{ID: 1, Email: "jane@example.com", Name: "Jane", UserType: domain.UserGuest}}}
	svc := newService(repo)

	resp, err := svc.Update(context.Background(), 1, &models.UpdateRequest{
		Name:  ptr.Ptr(" Jane Roe "),
		Phone: ptr.Ptr(""),
	})

	require.NoError(t, err)
	assert.Equal(t, "Jane Roe", resp.Name)
	require.NotNil(t, repo.lastPatch.Phone)
	assert.Equal(t, "", *repo.lastPatch.Phone)
	assert.Nil(t, repo.lastPatch.Bio)
}

func TestService_Update_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  *models.UpdateRequest
		want error
	}{
		{"email present", &models.UpdateRequest{Email: json.RawMessage(`"x@y.z"`), Name: ptr.Ptr("Jane")}, ErrForbiddenField},
		{"joinedAt null", &models.UpdateRequest{JoinedAt: json.RawMessage(`null`)}, ErrForbiddenField},
		{"empty", &models.UpdateRequest{}, ErrNoFieldsToUpdate},
		{"blank name", &models.UpdateRequest{Name: ptr.Ptr("  ")}, ErrInvalidName},
		{"bad type", &models.UpdateRequest{UserType: ptr.Ptr("admin")}, ErrInvalidUserType},
		{"unknown user", &models.UpdateRequest{Name: ptr.Ptr("Jane")}, ErrUserNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newService(&fakeUsers{}).Update(context.Background(), 9, tt.req)

			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestService_Update_ForbiddenFieldFromJSON(t *testing.T) {
	var req models.UpdateRequest
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Jane","joinedAt":"2024-01-01"}`), &req))

	_, err := newService(&fakeUsers{}).Update(context.Background(), 1, &req)

	assert.ErrorIs(t, err, ErrForbiddenField)
}

func TestService_GetAndDelete(t *testing.T) {
	repo := &fakeUsers{saved: []*domain.User{{ID: 1, Email: "jane@example.com", Name: "Jane", UserType: domain.UserBoth}}}
	svc := newService(repo)

	got, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "both", got.UserType)

	_, err = svc.GetByID(context.Background(), 2)
	assert.ErrorIs(t, err, ErrUserNotFound)

	deleted, err := svc.Delete(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "User deleted successfully", deleted.Message)
	assert.Equal(t, int64(1), deleted.User.ID)

	_, err = svc.Delete(context.Background(), 5)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
