package models

// Значения по умолчанию для курсов, если поле не задано или некорректно.
const (
	DefaultOfficialRate = 153.0
	DefaultParallelRate = 280.0
)

// Inputs представляет введенные пользователем параметры расчета.
// Цены в иностранной валюте, сборы в местной валюте (DZD).
type Inputs struct {
	CarPrice          float64 // CarPrice цена автомобиля в иностранной валюте
	Shipping          float64 // Shipping стоимость доставки в иностранной валюте
	OfficialRate      float64 // OfficialRate официальный курс (только для таможенной базы)
	ParallelRate      float64 // ParallelRate курс параллельного рынка (для покупки)
	CustomsTaxPercent float64 // CustomsTaxPercent ставка таможенной пошлины в процентах
	PortFees          float64 // PortFees портовые сборы в местной валюте
	VATDeductible     bool    // VATDeductible вычет НДС 19% из цены автомобиля
}

// Result представляет разбивку рассчитанной стоимости.
// Все значения производные от Inputs.
type Result struct {
	AdjustedCarPrice  float64 // AdjustedCarPrice цена после вычета НДС (в иностранной валюте)
	VATSaved          float64 // VATSaved сумма вычтенного НДС (в иностранной валюте)
	CarCostLocal      float64 // CarCostLocal стоимость автомобиля по параллельному курсу
	ShippingCostLocal float64 // ShippingCostLocal стоимость доставки по параллельному курсу
	CustomsBase       float64 // CustomsBase таможенная база: только автомобиль по официальному курсу
	CustomsTax        float64 // CustomsTax таможенная пошлина
	PortFees          float64 // PortFees портовые сборы
	TotalLocal        float64 // TotalLocal итог в местной валюте
	TotalForeign      float64 // TotalForeign номинальный итог в иностранной валюте (без учета НДС)
}
