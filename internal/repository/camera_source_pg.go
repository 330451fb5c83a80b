package repository

import (
	"context"
	"fmt"

	"github.com/Domenick1991/camrent/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PGCameraSource reads the catalog from a cameras table ordered by position.
// It never writes. NULL names or images fail the scan and surface as
// ErrCatalogUnavailable.
type PGCameraSource struct {
	db *pgxpool.Pool
}

func NewPGCameraSource(db *pgxpool.Pool) CameraSource {
	return &PGCameraSource{db: db}
}

func (r *PGCameraSource) Records(ctx context.Context) ([]domain.CameraRecord, error) {
	rows, err := r.db.Query(ctx, `SELECT name, image FROM cameras ORDER BY position, id`)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}
	defer rows.Close()

	records := make([]domain.CameraRecord, 0)
	for rows.Next() {
		var rec domain.CameraRecord
		if err := rows.Scan(&rec.Name, &rec.Image); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}
	return records, nil
}

var _ CameraSource = (*PGCameraSource)(nil)
