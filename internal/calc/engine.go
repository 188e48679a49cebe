// Package calc implements the landed-cost calculation engine.
//
// Calculate is pure: the same inputs always give the same breakdown and
// nothing outside the returned value is touched.
package calc

import (
	"math"

	"github.com/iudanet/carcost/internal/models"
)

const (
	// VATRate фиксированная ставка НДС, вычитаемая из цены автомобиля.
	VATRate = 0.19
	// vatKeepRate доля цены, остающаяся после вычета НДС.
	vatKeepRate = 0.81
)

// Calculate computes the landed-cost breakdown.
// Inputs are normalized first, so any value (negative, NaN, zero rates) is accepted.
func Calculate(in models.Inputs) models.Result {
	in = Normalize(in)

	// Шаг 1: вычет НДС
	adjCar := in.CarPrice
	vatSaved := 0.0
	if in.VATDeductible {
		adjCar = in.CarPrice * vatKeepRate
		vatSaved = in.CarPrice * VATRate
	}

	// Шаг 2: стоимость покупки по параллельному курсу
	carLocal := adjCar * in.ParallelRate
	shipLocal := in.Shipping * in.ParallelRate

	// Шаг 3: таможенная база = только автомобиль по официальному курсу
	customsBase := adjCar * in.OfficialRate

	// Шаг 4: таможенная пошлина
	customsTax := customsBase * in.CustomsTaxPercent / 100

	// Шаг 5: итог
	total := carLocal + shipLocal + customsTax + in.PortFees

	return models.Result{
		AdjustedCarPrice:  adjCar,
		VATSaved:          vatSaved,
		CarCostLocal:      carLocal,
		ShippingCostLocal: shipLocal,
		CustomsBase:       customsBase,
		CustomsTax:        customsTax,
		PortFees:          in.PortFees,
		TotalLocal:        total,
		// Номинальная сумма: НДС здесь не учитывается
		TotalForeign: in.CarPrice + in.Shipping,
	}
}

// Normalize applies defaults and lower bounds to every numeric field.
// Zero, NaN and infinite values are treated as absent.
func Normalize(in models.Inputs) models.Inputs {
	return models.Inputs{
		CarPrice:          orDefault(in.CarPrice, 0, 0),
		Shipping:          orDefault(in.Shipping, 0, 0),
		OfficialRate:      orDefault(in.OfficialRate, models.DefaultOfficialRate, 1),
		ParallelRate:      orDefault(in.ParallelRate, models.DefaultParallelRate, 1),
		CustomsTaxPercent: orDefault(in.CustomsTaxPercent, 0, 0),
		PortFees:          orDefault(in.PortFees, 0, 0),
		VATDeductible:     in.VATDeductible,
	}
}

// VATSavedLocal returns the VAT saving converted at the parallel rate.
func VATSavedLocal(in models.Inputs, res models.Result) float64 {
	return res.VATSaved * Normalize(in).ParallelRate
}

func orDefault(v, def, lower float64) float64 {
	if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		v = def
	}
	return math.Max(lower, v)
}
