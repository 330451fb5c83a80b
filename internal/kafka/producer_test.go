package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBookingEvent_KeepsJSONPayload(t *testing.T) {
	event := NewBookingEvent(EventBookingReceived, "YR-1", SourceHTTP, []byte(`{"camera":"Sony"}`))

	assert.Equal(t, EventBookingReceived, event.Type)
	assert.Equal(t, "YR-1", event.BookingID)
	assert.JSONEq(t, `{"camera":"Sony"}`, string(event.Payload))
	assert.False(t, event.CreatedAt.IsZero())
}

func TestNewBookingEvent_QuotesNonJSONPayload(t *testing.T) {
	event := NewBookingEvent(EventBookingSubmitted, "", SourceMiniApp, []byte("not json"))

	_, err := json.Marshal(event)
	require.NoError(t, err)
	assert.Equal(t, `"not json"`, string(event.Payload))
}

func TestEventHandler(t *testing.T) {
	var got []BookingEvent
	handler := EventHandler(func(_ context.Context, e BookingEvent) error {
		got = append(got, e)
		return nil
	})

	value, err := json.Marshal(NewBookingEvent(EventBookingReceived, "YR-2", SourceHTTP, []byte(`{}`)))
	require.NoError(t, err)

	assert.NoError(t, handler(context.Background(), kafka.Message{Value: []byte("{garbage")}))
	assert.NoError(t, handler(context.Background(), kafka.Message{Value: value}))

	require.Len(t, got, 1)
	assert.Equal(t, "YR-2", got[0].BookingID)
}

func TestEventHandler_PropagatesHandlerError(t *testing.T) {
	boom := errors.New("boom")
	handler := EventHandler(func(context.Context, BookingEvent) error { return boom })

	value, _ := json.Marshal(BookingEvent{Type: EventBookingReceived})
	assert.ErrorIs(t, handler(context.Background(), kafka.Message{Value: value}), boom)
}

func TestConsumer_CloseNil(t *testing.T) {
	var c *Consumer
	assert.NoError(t, c.Close())
}
