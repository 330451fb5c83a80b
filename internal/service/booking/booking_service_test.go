package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Domenick1991/camrent/internal/domain"
	"github.com/Domenick1991/camrent/internal/kafka"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockProducer struct {
	mock.Mock
}

func (m *MockProducer) Publish(ctx context.Context, topic, key string, value interface{}) error {
	args := m.Called(ctx, topic, key, value)
	return args.Error(0)
}

var fixedNow = time.UnixMilli(1704880800123)

func TestBookingService_Accept_Success(t *testing.T) {
	ctx := context.Background()
	producer := &MockProducer{}
	producer.On("Publish", mock.Anything, "bookings", "YR-1704880800123", mock.AnythingOfType("kafka.BookingEvent")).
		Run(func(args mock.Arguments) {
			event := args.Get(3).(kafka.BookingEvent)
			assert.Equal(t, kafka.EventBookingReceived, event.Type)
			assert.Equal(t, kafka.SourceHTTP, event.Source)
			assert.JSONEq(t, `{"camera":"Sony"}`, string(event.Payload))
		}).
		Return(nil).Once()
	producer.On("Publish", mock.Anything, "notifications", "YR-1704880800123", mock.Anything).Return(nil).Once()

	service := NewBookingService(producer, "bookings",
		WithNotificationsTopic("notifications"),
		WithClock(func() time.Time { return fixedNow }),
	)

	ack, err := service.Accept(ctx, []byte(`{"camera":"Sony"}`))

	require.NoError(t, err)
	assert.Equal(t, &domain.BookingAck{Success: true, Message: "Booking received successfully", BookingID: "YR-1704880800123"}, ack)
	producer.AssertExpectations(t)
}

func TestBookingService_Accept_CustomPrefix(t *testing.T) {
	service := NewBookingService(nil, "", WithIDPrefix("CAM"), WithClock(func() time.Time { return fixedNow }))

	ack, err := service.Accept(context.Background(), []byte(`{}`))

	require.NoError(t, err)
	assert.Equal(t, "CAM-1704880800123", ack.BookingID)
}

func TestBookingService_Accept_PublishFailureStillAcknowledges(t *testing.T) {
	ctx := context.Background()
	producer := &MockProducer{}
	producer.On("Publish", mock.Anything, "bookings", mock.Anything, mock.Anything).Return(errors.New("kafka down")).Once()

	service := NewBookingService(producer, "bookings", WithNotificationsTopic("notifications"))
	ack, err := service.Accept(ctx, []byte(`{"name":"Ivan"}`))

	require.NoError(t, err)
	assert.True(t, ack.Success)
	producer.AssertExpectations(t)
	producer.AssertNotCalled(t, "Publish", mock.Anything, "notifications", mock.Anything, mock.Anything)
}

func TestBookingService_Accept_InvalidPayload(t *testing.T) {
	producer := &MockProducer{}
	service := NewBookingService(producer, "bookings")

	testCases := []struct {
		name    string
		payload string
	}{
		{name: "truncated", payload: `{"camera":`},
		{name: "plain text", payload: "hello"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.Accept(context.Background(), []byte(tc.payload))
			assert.ErrorIs(t, err, domain.ErrInvalidPayload)
		})
	}
	producer.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestBookingService_Accept_IDsDifferOverTime(t *testing.T) {
	now := fixedNow
	service := NewBookingService(nil, "", WithClock(func() time.Time { return now }))

	first, err := service.Accept(context.Background(), []byte(`{}`))
	require.NoError(t, err)
	now = now.Add(5 * time.Millisecond)
	second, err := service.Accept(context.Background(), []byte(`{}`))
	require.NoError(t, err)

	assert.NotEqual(t, first.BookingID, second.BookingID)
}

func TestBookingService_Accept_EmptyBodyIsEmptyObject(t *testing.T) {
	producer := &MockProducer{}
	producer.On("Publish", mock.Anything, "bookings", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			assert.JSONEq(t, `{}`, string(args.Get(3).(kafka.BookingEvent).Payload))
		}).
		Return(nil).Twice()
	service := NewBookingService(producer, "bookings")

	for _, body := range []string{"", "  \n"} {
		ack, err := service.Accept(context.Background(), []byte(body))
		require.NoError(t, err)
		assert.True(t, ack.Success)
	}
	producer.AssertExpectations(t)
}

func TestBookingService_Accept_StalledBrokerIsBounded(t *testing.T) {
	producer := &MockProducer{}
	producer.On("Publish", mock.Anything, "bookings", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			ctx := args.Get(0).(context.Context)
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline)
			<-ctx.Done()
		}).
		Return(context.DeadlineExceeded).Once()

	service := NewBookingService(producer, "bookings",
		WithNotificationsTopic("notifications"),
		WithPublishTimeout(20*time.Millisecond),
	)

	reqCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	start := time.Now()
	ack, err := service.Accept(reqCtx, []byte(`{"name":"Ivan"}`))

	require.NoError(t, err)
	assert.True(t, ack.Success)
	assert.Less(t, time.Since(start), time.Second)
	producer.AssertExpectations(t)
}
