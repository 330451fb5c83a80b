package pricing

import (
	"math"
	"time"

	"github.com/Domenick1991/camrent/internal/domain"
)

// Days returns the number of billable rental days between two calendar dates.
// A same-day rental bills one day.
func Days(start, end time.Time) int {
	days := int(math.Ceil(end.Sub(start).Hours() / 24))
	if days < 1 {
		return 1
	}
	return days
}

// Quote prices a draft. A nil camera contributes nothing to the total.
func Quote(draft domain.BookingDraft, camera *domain.Camera, accessories []domain.Accessory) *domain.PricedBooking {
	days := Days(draft.StartDate, draft.EndDate)

	priced := &domain.PricedBooking{
		Draft:       draft,
		Camera:      camera,
		Accessories: accessories,
		Days:        days,
	}
	if camera != nil {
		priced.CameraSubtotal = camera.Price * days
	}
	for _, a := range accessories {
		priced.AccessoriesSubtotal += a.Price * days
	}
	priced.Total = priced.CameraSubtotal + priced.AccessoriesSubtotal
	return priced
}
