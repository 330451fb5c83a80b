package repository

import (
	"context"
	"fmt"
	"os"

	"github.com/Domenick1991/camrent/internal/catalog"
	"github.com/Domenick1991/camrent/internal/domain"
)

// CameraSource returns raw catalog records in display order. Implementations
// read from storage on every call.
type CameraSource interface {
	Records(ctx context.Context) ([]domain.CameraRecord, error)
}

type FileCameraSource struct {
	path string
}

func NewFileCameraSource(path string) CameraSource {
	return &FileCameraSource{path: path}
}

func (s *FileCameraSource) Records(_ context.Context) ([]domain.CameraRecord, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", domain.ErrCatalogUnavailable, s.path, err)
	}
	return catalog.Decode(data)
}

var _ CameraSource = (*FileCameraSource)(nil)
