package billing

import (
	"testing"

	"github.com/fogonlabs/comanda/internal/domain/entity"
	"github.com/fogonlabs/comanda/internal/domain/enum"
	"github.com/stretchr/testify/assert"
)

var exclusive = Config{TaxRate: 0.21, TaxModel: enum.TaxModelExclusive}

func items(prices ...int64) []entity.OrderItem {
	out := make([]entity.OrderItem, 0, len(prices))
	for _, p := range prices {
		out = append(out, entity.OrderItem{Price: p, Quantity: 1})
	}
	return out
}

func TestComputeExclusiveTax(t *testing.T) {
	got := Compute(items(1000, 500), nil, 0, exclusive)

	assert.Equal(t, int64(1500), got.SubTotal)
	assert.Equal(t, int64(0), got.DiscountAmount)
	assert.Equal(t, int64(315), got.Tax)
	assert.Equal(t, int64(1815), got.Total)
}

func TestComputeInclusiveTax(t *testing.T) {
	cfg := Config{TaxRate: 0.21, TaxModel: enum.TaxModelInclusive}
	got := Compute(items(1210), nil, 0, cfg)

	// The tax share is carved out of the listed price
	assert.Equal(t, int64(1000), got.SubTotal)
	assert.Equal(t, int64(1210), got.Total)
	assert.Equal(t, int64(210), got.Tax)
}

func TestComputeQuantityMultipliesPrice(t *testing.T) {
	in := []entity.OrderItem{{Price: 250, Quantity: 4}}
	got := Compute(in, nil, 0, exclusive)

	assert.Equal(t, int64(1000), got.SubTotal)
}

func TestComputePercentageDiscount(t *testing.T) {
	dt := enum.DiscountTypePercentage
	got := Compute(items(2000), &dt, 10, exclusive)

	assert.Equal(t, int64(200), got.DiscountAmount)
	assert.Equal(t, int64(378), got.Tax)  // 21% of 1800
	assert.Equal(t, int64(2178), got.Total)
}

func TestComputeFixedDiscount(t *testing.T) {
	dt := enum.DiscountTypeFixed
	got := Compute(items(2000), &dt, 5, exclusive)

	assert.Equal(t, int64(500), got.DiscountAmount)
	assert.Equal(t, int64(1815), got.Total)
}

func TestComputeDiscountNeverExceedsSubtotal(t *testing.T) {
	fixed := enum.DiscountTypeFixed
	got := Compute(items(1000), &fixed, 99, exclusive)
	assert.Equal(t, int64(1000), got.DiscountAmount)
	assert.Equal(t, int64(0), got.Total)

	pct := enum.DiscountTypePercentage
	got = Compute(items(1000), &pct, 100, exclusive)
	assert.Equal(t, int64(1000), got.DiscountAmount)
	assert.Equal(t, int64(0), got.Total)
}

func TestComputeInvalidDiscountValueIgnored(t *testing.T) {
	dt := enum.DiscountTypePercentage
	got := Compute(items(1000), &dt, -5, exclusive)

	assert.Equal(t, int64(0), got.DiscountAmount)
	assert.Equal(t, int64(1210), got.Total)
}

func TestComputeEmptyOrder(t *testing.T) {
	got := Compute(nil, nil, 0, exclusive)

	assert.Equal(t, int64(0), got.SubTotal)
	assert.Equal(t, int64(0), got.Total)
}

func TestComputeIsIdempotent(t *testing.T) {
	dt := enum.DiscountTypePercentage
	in := []entity.OrderItem{{Price: 333, Quantity: 3}, {Price: 799, Quantity: 2}}

	first := Compute(in, &dt, 15, exclusive)
	second := Compute(in, &dt, 15, exclusive)

	assert.Equal(t, first, second)
}
