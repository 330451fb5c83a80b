package storefront

import (
	"time"

	"github.com/Domenick1991/camrent/internal/domain"
)

type ViewMode string

const (
	ViewListing     ViewMode = "listing"
	ViewBookingForm ViewMode = "booking_form"
)

// Session is the selection and form state of one user. It is owned by a single
// user and is never shared between concurrent workflows.
type Session struct {
	ID                string          `json:"id"`
	View              ViewMode        `json:"view"`
	Selected          *domain.Camera  `json:"selected,omitempty"`
	Catalog           []domain.Camera `json:"catalog"`
	CatalogError      string          `json:"catalog_error,omitempty"`
	Form              Form            `json:"form"`
	Confirmation      *Confirmation   `json:"confirmation,omitempty"`
	BackButtonVisible bool            `json:"back_button_visible"`
}

func NewSession(id string) *Session {
	return &Session{ID: id, View: ViewListing}
}

// Form mirrors the booking form inputs. Zero dates are unset inputs.
type Form struct {
	MinDate      time.Time `json:"min_date,omitzero"`
	EndMinDate   time.Time `json:"end_min_date,omitzero"`
	StartDate    time.Time `json:"start_date,omitzero"`
	EndDate      time.Time `json:"end_date,omitzero"`
	AccessoryIDs []int     `json:"accessory_ids,omitempty"`
	ContactName  string    `json:"contact_name,omitempty"`
	ContactPhone string    `json:"contact_phone,omitempty"`
	Notes        string    `json:"notes,omitempty"`
}

func (f Form) missing() []string {
	var fields []string
	if f.StartDate.IsZero() {
		fields = append(fields, "start date")
	}
	if f.EndDate.IsZero() {
		fields = append(fields, "end date")
	}
	if f.ContactName == "" {
		fields = append(fields, "name")
	}
	if f.ContactPhone == "" {
		fields = append(fields, "phone")
	}
	return fields
}

func (f Form) draft(cameraID int) domain.BookingDraft {
	return domain.BookingDraft{
		CameraID:     cameraID,
		StartDate:    f.StartDate,
		EndDate:      f.EndDate,
		AccessoryIDs: append([]int(nil), f.AccessoryIDs...),
		ContactName:  f.ContactName,
		ContactPhone: f.ContactPhone,
		Notes:        f.Notes,
	}
}

// Confirmation is shown after a successful submit until the user dismisses it.
type Confirmation struct {
	Booking domain.PricedBooking `json:"booking"`
	Summary string               `json:"summary"`
}

// CalendarDate truncates t to its UTC calendar day.
func CalendarDate(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func ParseDate(s string) (time.Time, error) {
	return time.Parse(domain.DateLayout, s)
}
