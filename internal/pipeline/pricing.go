package pipeline

import (
	"fmt"
	"math"

	"rfp-backend/internal/catalog"
)

// Volume discount tiers applied per SKU based on quoted quantity. Checked
// from the largest tier down; quantities below the smallest tier get no
// discount. Values are fractions of the unit price.
const (
	DiscountTierSmallQty = 5
	DiscountTierMedQty   = 20
	DiscountTierLargeQty = 50

	DiscountTierSmallPct = 0.10
	DiscountTierMedPct   = 0.20
	DiscountTierLargePct = 0.30
)

// BuildQuote turns the non-gap matches into an ordered quote. Matched SKUs
// are grouped in first-appearance order; quantity is the number of
// requirements matched to the SKU. A match referencing a SKU absent from the
// catalog is a configuration error and halts the run.
func BuildQuote(matches []Match, cat *catalog.Catalog) (Quote, error) {
	quantities := make(map[string]int, len(matches))
	order := make([]string, 0, len(matches))
	for _, m := range matches {
		if m.IsGap() {
			continue
		}
		if _, seen := quantities[m.SKU]; !seen {
			order = append(order, m.SKU)
		}
		quantities[m.SKU]++
	}

	quote := Quote{Lines: make([]PriceLine, 0, len(order))}
	for _, sku := range order {
		item, err := cat.Lookup(sku)
		if err != nil {
			return Quote{}, fmt.Errorf("price sku %s: %w", sku, err)
		}
		qty := quantities[sku]
		discount := discountFor(qty)
		lineTotal := roundMoney(item.UnitPrice * float64(qty) * (1 - discount))
		quote.Lines = append(quote.Lines, PriceLine{
			SKU:         sku,
			Name:        item.Name,
			Quantity:    qty,
			UnitPrice:   item.UnitPrice,
			DiscountPct: discount,
			LineTotal:   lineTotal,
		})
		quote.GrandTotal += lineTotal
	}
	quote.GrandTotal = roundMoney(quote.GrandTotal)
	return quote, nil
}

func discountFor(quantity int) float64 {
	switch {
	case quantity >= DiscountTierLargeQty:
		return DiscountTierLargePct
	case quantity >= DiscountTierMedQty:
		return DiscountTierMedPct
	case quantity >= DiscountTierSmallQty:
		return DiscountTierSmallPct
	default:
		return 0
	}
}

func roundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}
