// Package priority computes delivery priority labels from a package's
// urgency and detected category.
package priority

import (
	"github.com/relieflabs/aid-receipts/internal/category"
	"github.com/relieflabs/aid-receipts/internal/models"
)

const (
	High   = "high"
	Medium = "medium"
	Low    = "low"
)

// Compute returns the priority label for an urgency/category pair, or ""
// when the package has no category. Flexible urgency is always low priority
// regardless of category.
func Compute(urgency models.Urgency, cat string) string {
	if cat == "" {
		return ""
	}

	switch urgency {
	case models.UrgencyCritical:
		switch cat {
		case category.Medicine:
			return High
		case category.Clothes:
			return Medium
		case category.Fancy:
			return Low
		}
	case models.UrgencyPreferred:
		switch cat {
		case category.Medicine:
			return Medium
		case category.Clothes, category.Fancy:
			return Low
		}
	case models.UrgencyFlexible:
		return Low
	}
	return ""
}
