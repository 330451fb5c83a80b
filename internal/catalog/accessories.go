package catalog

import (
	"fmt"
	"sort"

	"github.com/Domenick1991/camrent/internal/domain"
)

// Accessories is the fixed add-on list offered with every camera. Prices are per day.
type Accessories struct {
	items []domain.Accessory
	byID  map[int]domain.Accessory
}

func NewAccessories(items []domain.Accessory) *Accessories {
	a := &Accessories{
		items: append([]domain.Accessory(nil), items...),
		byID:  make(map[int]domain.Accessory, len(items)),
	}
	for _, it := range items {
		a.byID[it.ID] = it
	}
	return a
}

func DefaultAccessories() *Accessories {
	return NewAccessories([]domain.Accessory{
		{ID: 1, Name: "Tripod", Price: 500},
		{ID: 2, Name: "Spare battery", Price: 300},
		{ID: 3, Name: "Memory card 128 GB", Price: 200},
		{ID: 4, Name: "LED light panel", Price: 700},
		{ID: 5, Name: "Shotgun microphone", Price: 400},
		{ID: 6, Name: "50mm f/1.8 lens", Price: 1000},
	})
}

func (a *Accessories) List() []domain.Accessory {
	return append([]domain.Accessory(nil), a.items...)
}

// Resolve dedupes ids and returns them sorted together with their accessories.
func (a *Accessories) Resolve(ids []int) ([]int, []domain.Accessory, error) {
	seen := make(map[int]struct{}, len(ids))
	unique := make([]int, 0, len(ids))
	for _, id := range ids {
		if _, ok := a.byID[id]; !ok {
			return nil, nil, fmt.Errorf("%w: %d", domain.ErrUnknownAccessory, id)
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	sort.Ints(unique)

	items := make([]domain.Accessory, 0, len(unique))
	for _, id := range unique {
		items = append(items, a.byID[id])
	}
	return unique, items, nil
}
