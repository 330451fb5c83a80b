package storefront

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/Domenick1991/camrent/internal/catalog"
	"github.com/Domenick1991/camrent/internal/domain"
	"github.com/Domenick1991/camrent/internal/pricing"
)

const catalogErrorMessage = "Failed to load cameras. Please try again later."

type CatalogLoader interface {
	List(ctx context.Context) ([]domain.Camera, error)
}

// Workflow drives a Session through listing, booking form and confirmation.
// It holds no per-user state itself.
type Workflow struct {
	bridge      HostBridge
	accessories *catalog.Accessories
	now         func() time.Time
}

type WorkflowOption func(*Workflow)

func WithClock(now func() time.Time) WorkflowOption {
	return func(w *Workflow) {
		w.now = now
	}
}

func NewWorkflow(bridge HostBridge, accessories *catalog.Accessories, opts ...WorkflowOption) *Workflow {
	if bridge == nil {
		bridge = NoopBridge{}
	}
	if accessories == nil {
		accessories = catalog.DefaultAccessories()
	}
	w := &Workflow{
		bridge:      bridge,
		accessories: accessories,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

func (w *Workflow) Accessories() []domain.Accessory {
	return w.accessories.List()
}

// Start tells the host the app is ready and shows the themed main button.
func (w *Workflow) Start() {
	w.bridge.Ready()
	w.bridge.Expand()
	w.bridge.ShowMainButton(MainButton{
		Text:      "Open app",
		Color:     ThemeColor(w.bridge, "button_color"),
		TextColor: ThemeColor(w.bridge, "button_text_color"),
	}, w.bridge.HideMainButton)
}

// LoadCatalog replaces the session catalog. On failure the listing is replaced
// by an inline error and the rest of the session keeps working.
func (w *Workflow) LoadCatalog(ctx context.Context, s *Session, loader CatalogLoader) error {
	cameras, err := loader.List(ctx)
	if err != nil {
		log.Printf("storefront: load catalog: %v", err)
		s.Catalog = nil
		s.CatalogError = catalogErrorMessage
		return fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}
	s.Catalog = cameras
	s.CatalogError = ""
	return nil
}

func (w *Workflow) SelectCamera(s *Session, camera *domain.Camera) {
	today := w.today()
	s.Selected = camera
	s.View = ViewBookingForm
	s.Form.MinDate = today
	s.Form.EndMinDate = today
	if s.Form.StartDate.After(today) {
		s.Form.EndMinDate = s.Form.StartDate
	}
	s.BackButtonVisible = true
	w.bridge.ShowBackButton()
}

func (w *Workflow) SelectCameraByID(s *Session, id int) error {
	for i := range s.Catalog {
		if s.Catalog[i].ID == id {
			w.SelectCamera(s, &s.Catalog[i])
			return nil
		}
	}
	return domain.ErrCameraNotFound
}

func (w *Workflow) BackToList(s *Session) {
	if s.View == ViewListing && s.Selected == nil && !s.BackButtonVisible {
		return
	}
	s.Selected = nil
	s.View = ViewListing
	s.BackButtonVisible = false
	w.bridge.HideBackButton()
}

// SetStartDate raises the end date minimum to d and snaps an earlier end date forward.
func (w *Workflow) SetStartDate(s *Session, d time.Time) error {
	d = CalendarDate(d)
	if d.Before(w.minDate(s)) {
		return fmt.Errorf("%w: start %s", domain.ErrDateBeforeMinimum, d.Format(domain.DateLayout))
	}
	s.Form.StartDate = d
	s.Form.EndMinDate = d
	if !s.Form.EndDate.IsZero() && s.Form.EndDate.Before(d) {
		s.Form.EndDate = d
	}
	return nil
}

func (w *Workflow) SetEndDate(s *Session, d time.Time) error {
	d = CalendarDate(d)
	floor := s.Form.EndMinDate
	if floor.IsZero() {
		floor = w.minDate(s)
	}
	if d.Before(floor) {
		return fmt.Errorf("%w: end %s", domain.ErrDateBeforeMinimum, d.Format(domain.DateLayout))
	}
	s.Form.EndDate = d
	return nil
}

func (w *Workflow) SetAccessories(s *Session, ids []int) error {
	unique, _, err := w.accessories.Resolve(ids)
	if err != nil {
		return err
	}
	s.Form.AccessoryIDs = unique
	return nil
}

func (w *Workflow) SetContact(s *Session, name, phone, notes string) {
	s.Form.ContactName = strings.TrimSpace(name)
	s.Form.ContactPhone = FormatPhone(phone)
	s.Form.Notes = strings.TrimSpace(notes)
}

// Submit prices the form, shows the confirmation and forwards the booking to
// the host. A missing camera selection is priced at zero rather than rejected.
// Forwarding is fire-and-forget: relay errors are logged and not returned.
func (w *Workflow) Submit(ctx context.Context, s *Session, user *domain.TelegramUser) (*domain.PricedBooking, error) {
	if missing := s.Form.missing(); len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing %s", domain.ErrIncompleteForm, strings.Join(missing, ", "))
	}

	cameraID := 0
	if s.Selected != nil {
		cameraID = s.Selected.ID
	}
	draft := s.Form.draft(cameraID)

	ids, accessories, err := w.accessories.Resolve(draft.AccessoryIDs)
	if err != nil {
		return nil, err
	}
	draft.AccessoryIDs = ids

	priced := pricing.Quote(draft, s.Selected, accessories)
	s.Confirmation = &Confirmation{Booking: *priced, Summary: Summary(priced)}

	payload, err := json.Marshal(domain.NewBookingPayload(priced, user))
	if err != nil {
		log.Printf("storefront: encode booking payload: %v", err)
		return priced, nil
	}
	if err := w.bridge.SendData(ctx, string(payload)); err != nil {
		log.Printf("storefront: forward booking to host: %v", err)
	}
	return priced, nil
}

// DismissConfirmation closes the confirmation, returns to the listing and
// clears the form regardless of what the host did with the booking.
func (w *Workflow) DismissConfirmation(s *Session) {
	s.Confirmation = nil
	w.BackToList(s)
	s.Form = Form{}
}

func (w *Workflow) today() time.Time {
	return CalendarDate(w.now())
}

func (w *Workflow) minDate(s *Session) time.Time {
	if !s.Form.MinDate.IsZero() {
		return s.Form.MinDate
	}
	return w.today()
}
