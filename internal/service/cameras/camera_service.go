package cameras

import (
	"context"

	"github.com/Domenick1991/camrent/internal/catalog"
	"github.com/Domenick1991/camrent/internal/domain"
	"github.com/Domenick1991/camrent/internal/repository"
)

type CameraUseCase interface {
	List(ctx context.Context) ([]domain.Camera, error)
	GetByID(ctx context.Context, id int) (*domain.Camera, error)
}

// CameraService serves the enriched catalog. Records are re-read from the
// source on every call and nothing is cached.
type CameraService struct {
	source   repository.CameraSource
	enricher *catalog.Enricher
}

func NewCameraService(source repository.CameraSource, enricher *catalog.Enricher) *CameraService {
	return &CameraService{source: source, enricher: enricher}
}

func (s *CameraService) List(ctx context.Context) ([]domain.Camera, error) {
	records, err := s.source.Records(ctx)
	if err != nil {
		return nil, err
	}
	return s.enricher.Enrich(records), nil
}

func (s *CameraService) GetByID(ctx context.Context, id int) (*domain.Camera, error) {
	records, err := s.source.Records(ctx)
	if err != nil {
		return nil, err
	}
	return s.enricher.EnrichAt(records, id)
}

var _ CameraUseCase = (*CameraService)(nil)
