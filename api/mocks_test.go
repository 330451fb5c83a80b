package api

import (
	"context"

	"github.com/Domenick1991/camrent/internal/domain"
	"github.com/Domenick1991/camrent/internal/service/sessions"
	"github.com/Domenick1991/camrent/internal/storefront"
	"github.com/stretchr/testify/mock"
)

// MockCameraUseCase is a mock implementation of cameras.CameraUseCase
type MockCameraUseCase struct {
	mock.Mock
}

func (m *MockCameraUseCase) List(ctx context.Context) ([]domain.Camera, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Camera), args.Error(1)
}

func (m *MockCameraUseCase) GetByID(ctx context.Context, id int) (*domain.Camera, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Camera), args.Error(1)
}

// MockBookingUseCase is a mock implementation of booking.BookingUseCase
type MockBookingUseCase struct {
	mock.Mock
}

func (m *MockBookingUseCase) Accept(ctx context.Context, payload []byte) (*domain.BookingAck, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BookingAck), args.Error(1)
}

// MockSessionUseCase is a mock implementation of sessions.SessionUseCase
type MockSessionUseCase struct {
	mock.Mock
}

func (m *MockSessionUseCase) session(args mock.Arguments) (*storefront.Session, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storefront.Session), args.Error(1)
}

func (m *MockSessionUseCase) Create(ctx context.Context) (*storefront.Session, error) {
	return m.session(m.Called(ctx))
}

func (m *MockSessionUseCase) Get(ctx context.Context, id string) (*storefront.Session, error) {
	return m.session(m.Called(ctx, id))
}

func (m *MockSessionUseCase) LoadCatalog(ctx context.Context, id string) (*storefront.Session, error) {
	return m.session(m.Called(ctx, id))
}

func (m *MockSessionUseCase) Select(ctx context.Context, id string, cameraID int) (*storefront.Session, error) {
	return m.session(m.Called(ctx, id, cameraID))
}

func (m *MockSessionUseCase) Back(ctx context.Context, id string) (*storefront.Session, error) {
	return m.session(m.Called(ctx, id))
}

func (m *MockSessionUseCase) UpdateForm(ctx context.Context, id string, input sessions.FormInput) (*storefront.Session, error) {
	return m.session(m.Called(ctx, id, input))
}

func (m *MockSessionUseCase) Submit(ctx context.Context, id string, user *domain.TelegramUser) (*storefront.Session, error) {
	return m.session(m.Called(ctx, id, user))
}

func (m *MockSessionUseCase) Dismiss(ctx context.Context, id string) (*storefront.Session, error) {
	return m.session(m.Called(ctx, id))
}

func (m *MockSessionUseCase) Accessories() []domain.Accessory {
	return m.Called().Get(0).([]domain.Accessory)
}
