package storefront

import (
	"fmt"
	"strings"

	"github.com/Domenick1991/camrent/internal/domain"
	"github.com/Domenick1991/camrent/internal/pricing"
)

// Summary renders the confirmation text for a priced booking.
func Summary(b *domain.PricedBooking) string {
	var sb strings.Builder
	sb.WriteString("Booking received\n\n")

	if b.Camera != nil {
		fmt.Fprintf(&sb, "Camera: %s (%s/day)\n", b.Camera.Name, pricing.FormatRUB(b.Camera.Price))
	} else {
		sb.WriteString("Camera: no camera selected\n")
	}
	fmt.Fprintf(&sb, "Dates: %s to %s (%s)\n",
		b.Draft.StartDate.Format(domain.DateLayout),
		b.Draft.EndDate.Format(domain.DateLayout),
		dayWord(b.Days))

	if len(b.Accessories) == 0 {
		sb.WriteString("Accessories: none\n")
	} else {
		names := make([]string, 0, len(b.Accessories))
		for _, a := range b.Accessories {
			names = append(names, a.Name)
		}
		fmt.Fprintf(&sb, "Accessories: %s\n", strings.Join(names, ", "))
	}

	fmt.Fprintf(&sb, "\nCamera subtotal: %s\n", pricing.FormatRUB(b.CameraSubtotal))
	fmt.Fprintf(&sb, "Accessories subtotal: %s\n", pricing.FormatRUB(b.AccessoriesSubtotal))
	fmt.Fprintf(&sb, "Total: %s\n", pricing.FormatRUB(b.Total))

	fmt.Fprintf(&sb, "\nContact: %s, %s", b.Draft.ContactName, b.Draft.ContactPhone)
	if b.Draft.Notes != "" {
		fmt.Fprintf(&sb, "\nNotes: %s", b.Draft.Notes)
	}
	return sb.String()
}

func dayWord(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}
