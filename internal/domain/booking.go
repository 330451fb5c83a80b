package domain

import "time"

// DateLayout is the calendar date format used by form inputs and payloads.
const DateLayout = "2006-01-02"

// BookingDraft is a not-yet-priced rental request read from the booking form.
// Dates are calendar days at UTC midnight.
type BookingDraft struct {
	CameraID     int       `json:"camera_id"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
	AccessoryIDs []int     `json:"accessory_ids"`
	ContactName  string    `json:"contact_name"`
	ContactPhone string    `json:"contact_phone"`
	Notes        string    `json:"notes,omitempty"`
}

type PricedBooking struct {
	Draft               BookingDraft `json:"draft"`
	Camera              *Camera      `json:"camera,omitempty"`
	Accessories         []Accessory  `json:"accessories"`
	Days                int          `json:"days"`
	CameraSubtotal      int          `json:"camera_subtotal"`
	AccessoriesSubtotal int          `json:"accessories_subtotal"`
	Total               int          `json:"total"`
}

// TelegramUser is the platform identity the host exposes for the current user.
type TelegramUser struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Username  string `json:"username"`
}

// BookingPayload is the object delivered to the chat bot.
type BookingPayload struct {
	Camera       string        `json:"camera"`
	CameraID     int           `json:"cameraId"`
	StartDate    string        `json:"startDate"`
	EndDate      string        `json:"endDate"`
	Accessories  []string      `json:"accessories"`
	Name         string        `json:"name"`
	Phone        string        `json:"phone"`
	Comment      string        `json:"comment"`
	TelegramUser *TelegramUser `json:"telegramUser"`
}

// NewBookingPayload builds the bot payload from a priced booking.
func NewBookingPayload(b *PricedBooking, user *TelegramUser) BookingPayload {
	p := BookingPayload{
		CameraID:     b.Draft.CameraID,
		StartDate:    b.Draft.StartDate.Format(DateLayout),
		EndDate:      b.Draft.EndDate.Format(DateLayout),
		Accessories:  make([]string, 0, len(b.Accessories)),
		Name:         b.Draft.ContactName,
		Phone:        b.Draft.ContactPhone,
		Comment:      b.Draft.Notes,
		TelegramUser: user,
	}
	if b.Camera != nil {
		p.Camera = b.Camera.Name
	}
	for _, a := range b.Accessories {
		p.Accessories = append(p.Accessories, a.Name)
	}
	return p
}

type BookingAck struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	BookingID string `json:"bookingId"`
}
