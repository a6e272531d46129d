package models

import (
	"fmt"

	"github.com/shopspring/decimal"

	ordersdomain "github.com/companieshouse/certified-copies.orders.api.ch.gov.uk-sub000/services/orders/domain"
)

// FilingTypeNewIncorporation is the sentinel filing type denoting a new
// incorporation filing, which is priced on its own tier.
const FilingTypeNewIncorporation = "NEWINC"

// PostageCost is the aggregate postage applied to every item under the
// current policy.
const PostageCost = "0"

// ProductType tags a cost line with the product it prices.
type ProductType string

const (
	ProductTypeCertifiedCopy        ProductType = "certified-copy"
	ProductTypeCertifiedCopySameDay ProductType = "certified-copy-same-day"
)

// ItemCost is a single line of an item's cost breakdown. All money values
// are non-negative integers rendered in decimal string form.
type ItemCost struct {
	CalculatedCost  string      `json:"calculated_cost"`
	DiscountApplied string      `json:"discount_applied"`
	ItemCost        string      `json:"item_cost"`
	ProductType     ProductType `json:"product_type"`
}

// CostTable holds the four configured pricing tiers.
type CostTable struct {
	Standard                 int
	StandardNewIncorporation int
	SameDay                  int
	SameDayNewIncorporation  int
}

// CalculateCosts maps (delivery timescale, filing type) to a single cost
// line. The filing type NEWINC selects the new-incorporation tier for the
// timescale; any other filing type selects the standard tier. Discount is
// always zero under the current policy (a hook for future discounting), so
// calculated cost equals the base cost. Quantity does not participate;
// the item is priced once regardless of quantity.
//
// Pure function: no side effects, deterministic for a fixed table.
func CalculateCosts(timescale DeliveryTimescale, filingType string, table CostTable) (ItemCost, error) {
	if timescale == "" {
		return ItemCost{}, fmt.Errorf("%w: delivery timescale is required to calculate costs", ordersdomain.ErrInvalidArgument)
	}
	if filingType == "" {
		return ItemCost{}, fmt.Errorf("%w: filing type is required to calculate costs", ordersdomain.ErrInvalidArgument)
	}

	var base int
	var productType ProductType
	switch timescale {
	case DeliveryTimescaleSameDay:
		base = table.SameDay
		if filingType == FilingTypeNewIncorporation {
			base = table.SameDayNewIncorporation
		}
		productType = ProductTypeCertifiedCopySameDay
	default:
		base = table.Standard
		if filingType == FilingTypeNewIncorporation {
			base = table.StandardNewIncorporation
		}
		productType = ProductTypeCertifiedCopy
	}

	itemCost := decimal.NewFromInt(int64(base))
	discount := decimal.Zero
	calculated := itemCost.Sub(discount)

	return ItemCost{
		CalculatedCost:  calculated.String(),
		DiscountApplied: discount.String(),
		ItemCost:        itemCost.String(),
		ProductType:     productType,
	}, nil
}

// TotalItemCost sums the calculated costs of all lines and adds postage.
func TotalItemCost(costs []ItemCost, postageCost string) (string, error) {
	total := decimal.Zero
	for _, c := range costs {
		calculated, err := decimal.NewFromString(c.CalculatedCost)
		if err != nil {
			return "", fmt.Errorf("parse calculated cost %q: %w", c.CalculatedCost, err)
		}
		total = total.Add(calculated)
	}
	postage, err := decimal.NewFromString(postageCost)
	if err != nil {
		return "", fmt.Errorf("parse postage cost %q: %w", postageCost, err)
	}
	return total.Add(postage).String(), nil
}
