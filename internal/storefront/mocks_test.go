package storefront

import (
	"context"

	"github.com/Domenick1991/camrent/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockBridge struct {
	mock.Mock
}

func (m *MockBridge) Ready()  { m.Called() }
func (m *MockBridge) Expand() { m.Called() }

func (m *MockBridge) ThemeParam(key string) (string, bool) {
	args := m.Called(key)
	return args.String(0), args.Bool(1)
}

func (m *MockBridge) ShowBackButton() { m.Called() }
func (m *MockBridge) HideBackButton() { m.Called() }

func (m *MockBridge) ShowMainButton(button MainButton, onClick func()) {
	m.Called(button, onClick)
}

func (m *MockBridge) HideMainButton() { m.Called() }

func (m *MockBridge) SendData(ctx context.Context, payload string) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

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

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, topic, key string, value interface{}) error {
	args := m.Called(ctx, topic, key, value)
	return args.Error(0)
}
