// Package billing holds the pure money arithmetic for orders. Everything
// works in integer cents; rounding happens exactly once per derived figure.
package billing

import (
	"math"

	"github.com/fogonlabs/comanda/internal/domain/entity"
	"github.com/fogonlabs/comanda/internal/domain/enum"
)

// Config carries the tax parameters totals are computed under
type Config struct {
	TaxRate  float64
	TaxModel enum.TaxModel
}

// Totals is the derived monetary state of an order, in cents
type Totals struct {
	SubTotal       int64
	DiscountAmount int64
	Tax            int64
	Total          int64
}

// Compute derives an order's totals from its line items and discount.
// It is a pure function of its inputs: recomputing from the same state
// yields the same result, so callers may run it after every mutation.
func Compute(items []entity.OrderItem, discountType *enum.DiscountType, discountValue float64, cfg Config) Totals {
	var subtotal int64
	for _, item := range items {
		subtotal += item.Price * int64(item.Quantity)
	}

	discount := discountAmount(subtotal, discountType, discountValue)
	discounted := subtotal - discount

	var tax, total int64
	switch cfg.TaxModel {
	case enum.TaxModelInclusive:
		// Prices already include tax; report the tax share of the total
		// and the net amount as the subtotal
		total = discounted
		tax = roundCents(float64(total) * cfg.TaxRate / (1 + cfg.TaxRate))
		subtotal = total - tax
	default:
		tax = roundCents(float64(discounted) * cfg.TaxRate)
		total = discounted + tax
	}

	return Totals{
		SubTotal:       subtotal,
		DiscountAmount: discount,
		Tax:            tax,
		Total:          total,
	}
}

// discountAmount resolves a discount to cents, clamped to [0, subtotal].
// Invalid values (negative, NaN) count as no discount.
func discountAmount(subtotal int64, discountType *enum.DiscountType, value float64) int64 {
	if discountType == nil || value <= 0 || math.IsNaN(value) {
		return 0
	}

	var amount int64
	switch *discountType {
	case enum.DiscountTypePercentage:
		amount = roundCents(float64(subtotal) * value / 100)
	case enum.DiscountTypeFixed:
		amount = roundCents(value * 100)
	}

	if amount < 0 {
		return 0
	}
	if amount > subtotal {
		return subtotal
	}
	return amount
}

func roundCents(v float64) int64 {
	return int64(math.Round(v))
}
