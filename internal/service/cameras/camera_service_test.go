package cameras

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/Domenick1991/camrent/internal/catalog"
	"github.com/Domenick1991/camrent/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCameraSource struct {
	mock.Mock
}

func (m *MockCameraSource) Records(ctx context.Context) ([]domain.CameraRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CameraRecord), args.Error(1)
}

func fiveRecords() []domain.CameraRecord {
	out := make([]domain.CameraRecord, 0, 5)
	for i := 1; i <= 5; i++ {
		out = append(out, domain.CameraRecord{Name: fmt.Sprintf("Camera %d", i), Image: fmt.Sprintf("c%d.jpg", i)})
	}
	return out
}

func TestCameraService_List(t *testing.T) {
	ctx := context.Background()
	src := &MockCameraSource{}
	src.On("Records", ctx).Return(fiveRecords(), nil).Once()

	service := NewCameraService(src, catalog.NewEnricher(catalog.DefaultPrefix))
	cameras, err := service.List(ctx)

	require.NoError(t, err)
	require.Len(t, cameras, 5)
	assert.Equal(t, 1, cameras[0].ID)
	assert.Equal(t, "images/c1.jpg", cameras[0].Image)
	assert.Equal(t, 5, cameras[4].ID)
	src.AssertExpectations(t)
}

func TestCameraService_List_SourceFailure(t *testing.T) {
	ctx := context.Background()
	src := &MockCameraSource{}
	src.On("Records", ctx).Return(nil, fmt.Errorf("%w: disk", domain.ErrCatalogUnavailable)).Once()

	_, err := NewCameraService(src, catalog.NewEnricher("")).List(ctx)

	assert.ErrorIs(t, err, domain.ErrCatalogUnavailable)
}

func TestCameraService_GetByID(t *testing.T) {
	ctx := context.Background()
	src := &MockCameraSource{}
	src.On("Records", ctx).Return(fiveRecords(), nil)
	service := NewCameraService(src, catalog.NewEnricher(""))

	camera, err := service.GetByID(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "Camera 3", camera.Name)
	assert.Equal(t, 2000, camera.Price)

	_, err = service.GetByID(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrCameraNotFound)
}

func TestCameraService_GetByID_SourceFailure(t *testing.T) {
	ctx := context.Background()
	src := &MockCameraSource{}
	src.On("Records", ctx).Return(nil, errors.New("boom")).Once()

	_, err := NewCameraService(src, catalog.NewEnricher("")).GetByID(ctx, 1)
	assert.EqualError(t, err, "boom")
}
