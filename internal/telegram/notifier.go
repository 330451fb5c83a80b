package telegram

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Domenick1991/camrent/config"
	"github.com/Domenick1991/camrent/internal/domain"
	"github.com/Domenick1991/camrent/internal/kafka"
)

// Notifier forwards booking events to the manager chat through the Bot API.
type Notifier struct {
	baseURL string
	token   string
	chatID  string
	client  *http.Client
}

func NewNotifier(cfg config.TelegramConfig) *Notifier {
	return &Notifier{
		baseURL: strings.TrimRight(cfg.APIBaseURL, "/"),
		token:   strings.TrimSpace(cfg.BotToken),
		chatID:  strings.TrimSpace(cfg.ChatID),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (n *Notifier) Send(ctx context.Context, event kafka.BookingEvent) error {
	if n.token == "" || n.chatID == "" {
		log.Printf("telegram: skip %s, empty bot token or chat id", event.Type)
		return nil
	}
	return n.SendMessage(ctx, FormatEvent(event))
}

func (n *Notifier) SendMessage(ctx context.Context, text string) error {
	form := url.Values{}
	form.Set("chat_id", n.chatID)
	form.Set("text", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.baseURL+"/bot"+n.token+"/sendMessage", strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("build telegram request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("send telegram message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("telegram: non-OK status %s: %s", resp.Status, body)
	}
	return nil
}

// FormatEvent renders a booking event as a chat message. Payloads that are not
// booking objects are sent as raw JSON.
func FormatEvent(event kafka.BookingEvent) string {
	var b strings.Builder
	b.WriteString("📷 New booking")
	if event.BookingID != "" {
		b.WriteString(" " + event.BookingID)
	}
	if event.Source != "" {
		b.WriteString(" (" + event.Source + ")")
	}
	b.WriteString("\n\n")

	var p domain.BookingPayload
	if err := json.Unmarshal(event.Payload, &p); err != nil || (p.Name == "" && p.Phone == "" && p.Camera == "") {
		b.Write(event.Payload)
		return b.String()
	}

	camera := p.Camera
	if camera == "" {
		camera = "not selected"
	}
	fmt.Fprintf(&b, "Camera: %s\n", camera)
	fmt.Fprintf(&b, "Dates: %s to %s\n", p.StartDate, p.EndDate)
	if len(p.Accessories) > 0 {
		fmt.Fprintf(&b, "Accessories: %s\n", strings.Join(p.Accessories, ", "))
	}
	fmt.Fprintf(&b, "Name: %s\n", p.Name)
	fmt.Fprintf(&b, "Phone: %s\n", p.Phone)
	if p.Comment != "" {
		fmt.Fprintf(&b, "Comment: %s\n", p.Comment)
	}
	if u := p.TelegramUser; u != nil {
		fmt.Fprintf(&b, "Telegram: %s", strings.TrimSpace(u.FirstName+" "+u.LastName))
		if u.Username != "" {
			fmt.Fprintf(&b, " @%s", u.Username)
		}
		fmt.Fprintf(&b, " (id %d)\n", u.ID)
	}
	return strings.TrimRight(b.String(), "\n")
}
