package enum

// TaxModel selects how the configured tax rate applies to order totals.
//
// TaxModelExclusive adds tax on top of the discounted subtotal (the
// conventional receipt model). TaxModelInclusive treats menu prices as
// already containing tax and back-calculates the tax share for display.
// A deployment picks exactly one model; they are never mixed.
type TaxModel string

const (
	TaxModelExclusive TaxModel = "exclusive"
	TaxModelInclusive TaxModel = "inclusive"
)

// Valid reports whether the model is a known tax model
func (m TaxModel) Valid() bool {
	return m == TaxModelExclusive || m == TaxModelInclusive
}
