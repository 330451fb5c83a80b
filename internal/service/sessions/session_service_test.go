package sessions

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Domenick1991/camrent/internal/catalog"
	"github.com/Domenick1991/camrent/internal/domain"
	"github.com/Domenick1991/camrent/internal/storefront"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCatalogLoader struct {
	mock.Mock
}

func (m *MockCatalogLoader) List(ctx context.Context) ([]domain.Camera, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Camera), args.Error(1)
}

func strPtr(s string) *string { return &s }

func newTestService(t *testing.T, loader *MockCatalogLoader) *SessionService {
	t.Helper()
	now := func() time.Time { return time.Date(2024, 1, 5, 9, 0, 0, 0, time.UTC) }
	workflow := storefront.NewWorkflow(nil, catalog.DefaultAccessories(), storefront.WithClock(now))
	return NewSessionService(storefront.NewMemoryStore(), workflow, loader)
}

func cameras() []domain.Camera {
	return []domain.Camera{
		{ID: 1, Name: "Sony Alpha A7 III", Price: 3000},
		{ID: 2, Name: "Canon EOS R5", Price: 1500},
	}
}

func TestSessionService_FullBooking(t *testing.T) {
	ctx := context.Background()
	loader := &MockCatalogLoader{}
	loader.On("List", ctx).Return(cameras(), nil)
	service := newTestService(t, loader)

	sess, err := service.Create(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, sess.ID)
	assert.Len(t, sess.Catalog, 2)
	assert.Equal(t, storefront.ViewListing, sess.View)

	sess, err = service.Select(ctx, sess.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, storefront.ViewBookingForm, sess.View)

	ids := []int{1, 2}
	sess, err = service.UpdateForm(ctx, sess.ID, FormInput{
		StartDate:    strPtr("2024-01-10"),
		EndDate:      strPtr("2024-01-12"),
		AccessoryIDs: &ids,
		Name:         strPtr("Ivan"),
		Phone:        strPtr("9991234567"),
	})
	require.NoError(t, err)
	assert.Equal(t, "+7 (999) 123-45-67", sess.Form.ContactPhone)

	sess, err = service.UpdateForm(ctx, sess.ID, FormInput{Notes: strPtr("morning pickup")})
	require.NoError(t, err)
	assert.Equal(t, "Ivan", sess.Form.ContactName)
	assert.Equal(t, "morning pickup", sess.Form.Notes)

	sess, err = service.Submit(ctx, sess.ID, &domain.TelegramUser{ID: 1})
	require.NoError(t, err)
	require.NotNil(t, sess.Confirmation)
	assert.Equal(t, 6000+1600, sess.Confirmation.Booking.Total)

	sess, err = service.Dismiss(ctx, sess.ID)
	require.NoError(t, err)
	assert.Nil(t, sess.Confirmation)
	assert.Equal(t, storefront.ViewListing, sess.View)
	assert.Equal(t, storefront.Form{}, sess.Form)
}

func TestSessionService_CreateWithCatalogFailure(t *testing.T) {
	ctx := context.Background()
	loader := &MockCatalogLoader{}
	loader.On("List", ctx).Return(nil, errors.New("storage down")).Once()
	loader.On("List", ctx).Return(cameras(), nil).Once()
	service := newTestService(t, loader)

	sess, err := service.Create(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, sess.CatalogError)
	assert.Empty(t, sess.Catalog)

	sess, err = service.LoadCatalog(ctx, sess.ID)
	require.NoError(t, err)
	assert.Empty(t, sess.CatalogError)
	assert.Len(t, sess.Catalog, 2)
}

func TestSessionService_FailedStepIsNotSaved(t *testing.T) {
	ctx := context.Background()
	loader := &MockCatalogLoader{}
	loader.On("List", ctx).Return(cameras(), nil)
	service := newTestService(t, loader)

	sess, err := service.Create(ctx)
	require.NoError(t, err)

	_, err = service.UpdateForm(ctx, sess.ID, FormInput{
		StartDate: strPtr("2024-01-10"),
		EndDate:   strPtr("2024-01-01"),
	})
	assert.ErrorIs(t, err, domain.ErrDateBeforeMinimum)

	stored, err := service.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.True(t, stored.Form.StartDate.IsZero())
}

func TestSessionService_Errors(t *testing.T) {
	ctx := context.Background()
	loader := &MockCatalogLoader{}
	loader.On("List", ctx).Return(cameras(), nil)
	service := newTestService(t, loader)

	_, err := service.Get(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	sess, err := service.Create(ctx)
	require.NoError(t, err)

	_, err = service.Select(ctx, sess.ID, 42)
	assert.ErrorIs(t, err, domain.ErrCameraNotFound)

	_, err = service.UpdateForm(ctx, sess.ID, FormInput{StartDate: strPtr("10.01.2024")})
	assert.ErrorIs(t, err, domain.ErrInvalidDate)

	_, err = service.Submit(ctx, sess.ID, nil)
	assert.ErrorIs(t, err, domain.ErrIncompleteForm)
}

func TestSessionService_BackIsIdempotent(t *testing.T) {
	ctx := context.Background()
	loader := &MockCatalogLoader{}
	loader.On("List", ctx).Return(cameras(), nil)
	service := newTestService(t, loader)

	sess, err := service.Create(ctx)
	require.NoError(t, err)
	_, err = service.Select(ctx, sess.ID, 2)
	require.NoError(t, err)

	once, err := service.Back(ctx, sess.ID)
	require.NoError(t, err)
	twice, err := service.Back(ctx, sess.ID)
	require.NoError(t, err)

	assert.Equal(t, once, twice)
}

func TestSessionService_Accessories(t *testing.T) {
	service := newTestService(t, &MockCatalogLoader{})
	assert.Len(t, service.Accessories(), 6)
}
