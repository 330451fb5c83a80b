package sessions

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Domenick1991/camrent/internal/domain"
	"github.com/Domenick1991/camrent/internal/storefront"
	"github.com/google/uuid"
)

type SessionUseCase interface {
	Create(ctx context.Context) (*storefront.Session, error)
	Get(ctx context.Context, id string) (*storefront.Session, error)
	LoadCatalog(ctx context.Context, id string) (*storefront.Session, error)
	Select(ctx context.Context, id string, cameraID int) (*storefront.Session, error)
	Back(ctx context.Context, id string) (*storefront.Session, error)
	UpdateForm(ctx context.Context, id string, input FormInput) (*storefront.Session, error)
	Submit(ctx context.Context, id string, user *domain.TelegramUser) (*storefront.Session, error)
	Dismiss(ctx context.Context, id string) (*storefront.Session, error)
	Accessories() []domain.Accessory
}

// FormInput is a partial form update. Nil fields are left unchanged.
type FormInput struct {
	StartDate    *string `json:"start_date"`
	EndDate      *string `json:"end_date"`
	AccessoryIDs *[]int  `json:"accessory_ids"`
	Name         *string `json:"name"`
	Phone        *string `json:"phone"`
	Notes        *string `json:"notes"`
}

// SessionService runs storefront workflow steps against stored sessions.
// Each call loads the session, applies one step and saves it back; a step
// that fails leaves the stored session untouched.
type SessionService struct {
	store    storefront.SessionStore
	workflow *storefront.Workflow
	catalog  storefront.CatalogLoader
}

func NewSessionService(store storefront.SessionStore, workflow *storefront.Workflow, catalog storefront.CatalogLoader) *SessionService {
	return &SessionService{store: store, workflow: workflow, catalog: catalog}
}

func (s *SessionService) Create(ctx context.Context) (*storefront.Session, error) {
	sess := storefront.NewSession(uuid.NewString())
	s.loadCatalog(ctx, sess)
	if err := s.store.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return sess, nil
}

func (s *SessionService) Get(ctx context.Context, id string) (*storefront.Session, error) {
	return s.store.Get(ctx, id)
}

func (s *SessionService) LoadCatalog(ctx context.Context, id string) (*storefront.Session, error) {
	return s.mutate(ctx, id, func(sess *storefront.Session) error {
		s.loadCatalog(ctx, sess)
		return nil
	})
}

func (s *SessionService) Select(ctx context.Context, id string, cameraID int) (*storefront.Session, error) {
	return s.mutate(ctx, id, func(sess *storefront.Session) error {
		return s.workflow.SelectCameraByID(sess, cameraID)
	})
}

func (s *SessionService) Back(ctx context.Context, id string) (*storefront.Session, error) {
	return s.mutate(ctx, id, func(sess *storefront.Session) error {
		s.workflow.BackToList(sess)
		return nil
	})
}

func (s *SessionService) UpdateForm(ctx context.Context, id string, input FormInput) (*storefront.Session, error) {
	return s.mutate(ctx, id, func(sess *storefront.Session) error {
		if input.StartDate != nil {
			d, err := parseDate(*input.StartDate)
			if err != nil {
				return err
			}
			if err := s.workflow.SetStartDate(sess, d); err != nil {
				return err
			}
		}
		if input.EndDate != nil {
			d, err := parseDate(*input.EndDate)
			if err != nil {
				return err
			}
			if err := s.workflow.SetEndDate(sess, d); err != nil {
				return err
			}
		}
		if input.AccessoryIDs != nil {
			if err := s.workflow.SetAccessories(sess, *input.AccessoryIDs); err != nil {
				return err
			}
		}
		if input.Name != nil || input.Phone != nil || input.Notes != nil {
			s.workflow.SetContact(sess,
				valueOr(input.Name, sess.Form.ContactName),
				valueOr(input.Phone, sess.Form.ContactPhone),
				valueOr(input.Notes, sess.Form.Notes))
		}
		return nil
	})
}

func (s *SessionService) Submit(ctx context.Context, id string, user *domain.TelegramUser) (*storefront.Session, error) {
	return s.mutate(ctx, id, func(sess *storefront.Session) error {
		_, err := s.workflow.Submit(ctx, sess, user)
		return err
	})
}

func (s *SessionService) Dismiss(ctx context.Context, id string) (*storefront.Session, error) {
	return s.mutate(ctx, id, func(sess *storefront.Session) error {
		s.workflow.DismissConfirmation(sess)
		return nil
	})
}

func (s *SessionService) Accessories() []domain.Accessory {
	return s.workflow.Accessories()
}

func (s *SessionService) loadCatalog(ctx context.Context, sess *storefront.Session) {
	if err := s.workflow.LoadCatalog(ctx, sess, s.catalog); err != nil {
		log.Printf("sessions: %s: %v", sess.ID, err)
	}
}

func (s *SessionService) mutate(ctx context.Context, id string, step func(*storefront.Session) error) (*storefront.Session, error) {
	sess, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := step(sess); err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return sess, nil
}

func parseDate(s string) (time.Time, error) {
	d, err := storefront.ParseDate(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", domain.ErrInvalidDate, s)
	}
	return d, nil
}

func valueOr(p *string, fallback string) string {
	if p == nil {
		return fallback
	}
	return *p
}

var _ SessionUseCase = (*SessionService)(nil)
