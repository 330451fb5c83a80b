package storefront

import (
	"context"
	"fmt"
	"time"

	"github.com/Domenick1991/camrent/internal/kafka"
	"github.com/google/uuid"
)

// HostBridge is what the storefront needs from the chat platform hosting it.
type HostBridge interface {
	Ready()
	Expand()
	ThemeParam(key string) (string, bool)
	ShowBackButton()
	HideBackButton()
	ShowMainButton(button MainButton, onClick func())
	HideMainButton()
	SendData(ctx context.Context, payload string) error
}

type MainButton struct {
	Text      string
	Color     string
	TextColor string
}

var themeDefaults = map[string]string{
	"bg_color":           "#ffffff",
	"secondary_bg_color": "#f1f1f1",
	"text_color":         "#000000",
	"hint_color":         "#999999",
	"link_color":         "#2481cc",
	"button_color":       "#3390ec",
	"button_text_color":  "#ffffff",
}

// ThemeColor looks a theme parameter up on the bridge and falls back to the
// platform default for known keys.
func ThemeColor(b HostBridge, key string) string {
	if b != nil {
		if v, ok := b.ThemeParam(key); ok && v != "" {
			return v
		}
	}
	return themeDefaults[key]
}

// NoopBridge stands in for the host when the storefront runs outside of it.
type NoopBridge struct{}

func (NoopBridge) Ready()                                 {}
func (NoopBridge) Expand()                                {}
func (NoopBridge) ThemeParam(string) (string, bool)       { return "", false }
func (NoopBridge) ShowBackButton()                        {}
func (NoopBridge) HideBackButton()                        {}
func (NoopBridge) ShowMainButton(MainButton, func())      {}
func (NoopBridge) HideMainButton()                        {}
func (NoopBridge) SendData(context.Context, string) error { return nil }

type Publisher interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

// RelayBridge delivers booking payloads to the bot backend through Kafka.
// Every other bridge call is a no-op.
type RelayBridge struct {
	NoopBridge
	publisher Publisher
	topics    []string
	timeout   time.Duration
}

const defaultRelayTimeout = 3 * time.Second

func NewRelayBridge(publisher Publisher, topics ...string) *RelayBridge {
	return &RelayBridge{publisher: publisher, topics: topics, timeout: defaultRelayTimeout}
}

// WithTimeout returns a copy of the bridge whose relaying gives up after d.
func (b *RelayBridge) WithTimeout(d time.Duration) *RelayBridge {
	c := *b
	c.timeout = d
	return &c
}

func (b *RelayBridge) SendData(ctx context.Context, payload string) error {
	if b.publisher == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), b.timeout)
	defer cancel()

	event := kafka.NewBookingEvent(kafka.EventBookingSubmitted, "", kafka.SourceMiniApp, []byte(payload))
	key := uuid.NewString()
	for _, topic := range b.topics {
		if topic == "" {
			continue
		}
		if err := b.publisher.Publish(ctx, topic, key, event); err != nil {
			return fmt.Errorf("relay booking to %s: %w", topic, err)
		}
	}
	return nil
}

var (
	_ HostBridge = NoopBridge{}
	_ HostBridge = (*RelayBridge)(nil)
)
