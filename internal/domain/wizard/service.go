package wizard

import (
	"fmt"
	"strconv"
	"strings"
)

// ComputeServiceTotal derives a service line's total from its pricing mode.
// Per-person lines multiply by persons and nights, per-night lines by nights
// only, per-stay lines charge the unit price once. The unit price must
// already be a validated amount string.
func ComputeServiceTotal(f ServiceForm) string {
	cents, ok := parseCents(f.UnitPrice)
	if !ok {
		return ""
	}
	switch f.PricingMode {
	case PricePerPerson:
		cents *= int64(f.Persons) * int64(f.Nights)
	case PricePerNight:
		cents *= int64(f.Nights)
	case PricePerStay:
	default:
		return ""
	}
	return formatCents(cents)
}

func parseCents(amount string) (int64, bool) {
	whole, frac, _ := strings.Cut(amount, ".")
	n, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, false
	}
	cents := n * 100
	if frac != "" {
		if len(frac) == 1 {
			frac += "0"
		}
		f, err := strconv.ParseInt(frac, 10, 64)
		if err != nil || len(frac) > 2 {
			return 0, false
		}
		cents += f
	}
	return cents, true
}

func formatCents(cents int64) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}
