package booking

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/Domenick1991/camrent/internal/domain"
	"github.com/Domenick1991/camrent/internal/kafka"
)

const (
	ackMessage            = "Booking received successfully"
	defaultPublishTimeout = 3 * time.Second
)

type BookingUseCase interface {
	Accept(ctx context.Context, payload []byte) (*domain.BookingAck, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

// BookingService acknowledges booking submissions. Nothing is stored: the
// payload is logged and relayed to the bot worker.
type BookingService struct {
	producer           Producer
	bookingTopic       string
	notificationsTopic string
	idPrefix           string
	publishTimeout     time.Duration
	now                func() time.Time
}

type BookingServiceOption func(*BookingService)

func WithNotificationsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.notificationsTopic = topic
	}
}

func WithIDPrefix(prefix string) BookingServiceOption {
	return func(s *BookingService) {
		s.idPrefix = prefix
	}
}

// WithPublishTimeout bounds how long relaying may hold up an acknowledgment.
func WithPublishTimeout(d time.Duration) BookingServiceOption {
	return func(s *BookingService) {
		s.publishTimeout = d
	}
}

func WithClock(now func() time.Time) BookingServiceOption {
	return func(s *BookingService) {
		s.now = now
	}
}

// NewBookingService builds the service. A nil producer disables relaying.
func NewBookingService(producer Producer, bookingTopic string, opts ...BookingServiceOption) *BookingService {
	service := &BookingService{
		producer:       producer,
		bookingTopic:   bookingTopic,
		idPrefix:       "YR",
		publishTimeout: defaultPublishTimeout,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// Accept acknowledges any JSON document. An empty body counts as an empty object.
func (s *BookingService) Accept(ctx context.Context, payload []byte) (*domain.BookingAck, error) {
	if len(bytes.TrimSpace(payload)) == 0 {
		payload = []byte("{}")
	}
	if !json.Valid(payload) {
		return nil, domain.ErrInvalidPayload
	}

	bookingID := fmt.Sprintf("%s-%d", s.idPrefix, s.now().UnixMilli())
	log.Printf("booking: received %s: %s", bookingID, payload)

	if err := s.publish(ctx, bookingID, payload); err != nil {
		log.Printf("WARNING: failed to relay booking %s: %v", bookingID, err)
	}

	return &domain.BookingAck{
		Success:   true,
		Message:   ackMessage,
		BookingID: bookingID,
	}, nil
}

func (s *BookingService) publish(ctx context.Context, bookingID string, payload []byte) error {
	if s.producer == nil || s.bookingTopic == "" {
		return nil
	}
	// the deadline covers both topics and outlives a canceled request
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.publishTimeout)
	defer cancel()

	event := kafka.NewBookingEvent(kafka.EventBookingReceived, bookingID, kafka.SourceHTTP, payload)
	if err := s.producer.Publish(ctx, s.bookingTopic, bookingID, event); err != nil {
		return err
	}
	if s.notificationsTopic != "" {
		return s.producer.Publish(ctx, s.notificationsTopic, bookingID, event)
	}
	return nil
}

var _ BookingUseCase = (*BookingService)(nil)
