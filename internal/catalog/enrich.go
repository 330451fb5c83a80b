package catalog

import (
	"encoding/json"
	"fmt"

	"github.com/Domenick1991/camrent/internal/domain"
)

const (
	basePrice     = 1000
	priceStep     = 500
	priceCycle    = 7
	DefaultPrefix = "images/"
)

var typeLabels = []string{"DSLR", "Mirrorless", "Medium Format", "Compact", "Film", "Action"}

// Enricher derives display and pricing fields from a record's position in the catalog.
type Enricher struct {
	imagePrefix string
}

func NewEnricher(imagePrefix string) *Enricher {
	return &Enricher{imagePrefix: imagePrefix}
}

// rawRecord keeps pointers so a missing field can be told apart from an empty one.
type rawRecord struct {
	Name  *string `json:"name"`
	Image *string `json:"image"`
}

// Decode parses raw catalog JSON. Anything other than an array of objects
// carrying name and image fields is reported as ErrCatalogUnavailable. Empty
// values are accepted.
func Decode(data []byte) ([]domain.CameraRecord, error) {
	var raw []*rawRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: catalog is not an array", domain.ErrCatalogUnavailable)
	}

	records := make([]domain.CameraRecord, 0, len(raw))
	for i, r := range raw {
		if r == nil || r.Name == nil || r.Image == nil {
			return nil, fmt.Errorf("%w: record %d is missing name or image", domain.ErrCatalogUnavailable, i)
		}
		records = append(records, domain.CameraRecord{Name: *r.Name, Image: *r.Image})
	}
	return records, nil
}

func (e *Enricher) Enrich(records []domain.CameraRecord) []domain.Camera {
	cameras := make([]domain.Camera, 0, len(records))
	for i, r := range records {
		cameras = append(cameras, e.camera(i, r))
	}
	return cameras
}

// EnrichAt enriches the record with the given 1-based id.
func (e *Enricher) EnrichAt(records []domain.CameraRecord, id int) (*domain.Camera, error) {
	if id < 1 || id > len(records) {
		return nil, domain.ErrCameraNotFound
	}
	c := e.camera(id-1, records[id-1])
	return &c, nil
}

func (e *Enricher) camera(index int, r domain.CameraRecord) domain.Camera {
	label := typeLabels[index%len(typeLabels)]
	return domain.Camera{
		ID:          index + 1,
		Name:        r.Name,
		Specs:       label + " Camera",
		Description: fmt.Sprintf("Professional %s camera for photography enthusiasts.", label),
		Price:       basePrice + (index%priceCycle)*priceStep,
		Image:       e.imagePrefix + r.Image,
	}
}
