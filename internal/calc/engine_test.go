package calc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iudanet/carcost/internal/models"
)

const delta = 1e-6

func exampleInputs() models.Inputs {
	return models.Inputs{
		CarPrice:          10000,
		Shipping:          1500,
		OfficialRate:      153,
		ParallelRate:      280,
		CustomsTaxPercent: 20,
		PortFees:          90000,
	}
}

func TestCalculate_Example(t *testing.T) {
	res := Calculate(exampleInputs())

	assert.InDelta(t, 10000, res.AdjustedCarPrice, delta)
	assert.InDelta(t, 0, res.VATSaved, delta)
	assert.InDelta(t, 2_800_000, res.CarCostLocal, delta)
	assert.InDelta(t, 420_000, res.ShippingCostLocal, delta)
	assert.InDelta(t, 1_530_000, res.CustomsBase, delta)
	assert.InDelta(t, 306_000, res.CustomsTax, delta)
	assert.InDelta(t, 90_000, res.PortFees, delta)
	assert.InDelta(t, 3_616_000, res.TotalLocal, delta)
	assert.InDelta(t, 11_500, res.TotalForeign, delta)
}

func TestCalculate_VATDeductible(t *testing.T) {
	in := exampleInputs()
	in.VATDeductible = true

	res := Calculate(in)

	assert.InDelta(t, 8_100, res.AdjustedCarPrice, delta)
	assert.InDelta(t, 1_900, res.VATSaved, delta)
	assert.InDelta(t, 2_268_000, res.CarCostLocal, delta)
	// Доставка не зависит от НДС
	assert.InDelta(t, 420_000, res.ShippingCostLocal, delta)
	assert.InDelta(t, 1_239_300, res.CustomsBase, delta)
	assert.InDelta(t, 3_025_860, res.TotalLocal, delta)
	// Номинальный итог не учитывает вычет НДС
	assert.InDelta(t, 11_500, res.TotalForeign, delta)
	assert.InDelta(t, 1_900*280, VATSavedLocal(in, res), delta)
}

func TestCalculate_TotalIsSumOfParts(t *testing.T) {
	tests := []struct {
		name string
		in   models.Inputs
	}{
		{name: "zero", in: models.Inputs{}},
		{name: "example", in: exampleInputs()},
		{name: "fractional", in: models.Inputs{CarPrice: 12345.67, Shipping: 89.1, OfficialRate: 135.5, ParallelRate: 248, CustomsTaxPercent: 17.5, PortFees: 1234.5, VATDeductible: true}},
		{name: "negative values", in: models.Inputs{CarPrice: -10, Shipping: -1, OfficialRate: -3, ParallelRate: 0.5, CustomsTaxPercent: -20, PortFees: -5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Calculate(tt.in)
			assert.Equal(t, res.CarCostLocal+res.ShippingCostLocal+res.CustomsTax+res.PortFees, res.TotalLocal)
			assert.GreaterOrEqual(t, res.TotalLocal, 0.0)
			assert.GreaterOrEqual(t, res.TotalForeign, 0.0)
		})
	}
}

func TestCalculate_ShippingExcludedFromCustomsBase(t *testing.T) {
	in := exampleInputs()
	withoutShipping := Calculate(in)

	in.Shipping = 50_000
	withShipping := Calculate(in)

	assert.Equal(t, withoutShipping.CustomsBase, withShipping.CustomsBase)
	assert.Equal(t, withoutShipping.CustomsTax, withShipping.CustomsTax)
}

func TestCalculate_Deterministic(t *testing.T) {
	in := exampleInputs()
	in.VATDeductible = true

	first := Calculate(in)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Calculate(in))
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   models.Inputs
		want models.Inputs
	}{
		{
			name: "empty uses rate defaults",
			in:   models.Inputs{},
			want: models.Inputs{OfficialRate: 153, ParallelRate: 280},
		},
		{
			name: "negative amounts clamp to zero",
			in:   models.Inputs{CarPrice: -1, Shipping: -2, CustomsTaxPercent: -3, PortFees: -4, OfficialRate: 100, ParallelRate: 200},
			want: models.Inputs{OfficialRate: 100, ParallelRate: 200},
		},
		{
			name: "rates clamp to one",
			in:   models.Inputs{OfficialRate: -5, ParallelRate: 0.25},
			want: models.Inputs{OfficialRate: 1, ParallelRate: 1},
		},
		{
			name: "NaN and Inf are absent",
			in:   models.Inputs{CarPrice: math.NaN(), OfficialRate: math.Inf(1), ParallelRate: math.NaN(), PortFees: math.Inf(-1)},
			want: models.Inputs{OfficialRate: 153, ParallelRate: 280},
		},
		{
			name: "vat flag kept",
			in:   models.Inputs{CarPrice: 10, OfficialRate: 2, ParallelRate: 3, VATDeductible: true},
			want: models.Inputs{CarPrice: 10, OfficialRate: 2, ParallelRate: 3, VATDeductible: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}
