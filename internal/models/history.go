package models

// HistoryEntry представляет сохраненный расчет в истории.
// JSON-представление совместимо с форматом, который хранится под ключом истории:
// поля totalDZD/centimes/totalEUR и вложенные inputs/breakdown.
// Запись неизменяема после создания: ее можно только удалить.
type HistoryEntry struct {
	CarName   string            `json:"carName"`   // CarName название автомобиля (trimmed, непустое)
	Timestamp string            `json:"timestamp"` // Timestamp локализованная строка времени сохранения
	Inputs    InputsSnapshot    `json:"inputs"`    // Inputs снимок параметров расчета
	Breakdown BreakdownSnapshot `json:"breakdown"` // Breakdown часть разбивки стоимости
	ID        int64             `json:"id"`        // ID время создания в миллисекундах, уникально в пределах сессии
	SavedAt   int64             `json:"savedAt"`   // SavedAt время сохранения в миллисекундах с начала эпохи
	TotalDZD  float64           `json:"totalDZD"`  // TotalDZD итог в местной валюте
	Centimes  float64           `json:"centimes"`  // Centimes эквивалент в сантимах (равен TotalDZD)
	TotalEUR  float64           `json:"totalEUR"`  // TotalEUR номинальный итог в иностранной валюте
}

// InputsSnapshot снимок Inputs в формате хранения.
type InputsSnapshot struct {
	CarPrice float64 `json:"carPrice"`
	Shipping float64 `json:"shipping"`
	OffRate  float64 `json:"offRate"`
	ParRate  float64 `json:"parRate"`
	TaxPct   float64 `json:"taxPct"`
	PortFees float64 `json:"portFees"`
	VAT      bool    `json:"vat"`
}

// BreakdownSnapshot подмножество Result в формате хранения.
type BreakdownSnapshot struct {
	CarDZD      float64 `json:"carDZD"`
	ShipDZD     float64 `json:"shipDZD"`
	TaxDZD      float64 `json:"taxDZD"`
	PortFees    float64 `json:"portFees"`
	CustomsBase float64 `json:"customsBase"`
	AdjCar      float64 `json:"adjCar"`
}

// NewInputsSnapshot создает снимок параметров для сохранения в истории.
func NewInputsSnapshot(in Inputs) InputsSnapshot {
	return InputsSnapshot{
		CarPrice: in.CarPrice,
		Shipping: in.Shipping,
		OffRate:  in.OfficialRate,
		ParRate:  in.ParallelRate,
		TaxPct:   in.CustomsTaxPercent,
		PortFees: in.PortFees,
		VAT:      in.VATDeductible,
	}
}

// Inputs восстанавливает Inputs из снимка.
func (s InputsSnapshot) Inputs() Inputs {
	return Inputs{
		CarPrice:          s.CarPrice,
		Shipping:          s.Shipping,
		OfficialRate:      s.OffRate,
		ParallelRate:      s.ParRate,
		CustomsTaxPercent: s.TaxPct,
		PortFees:          s.PortFees,
		VATDeductible:     s.VAT,
	}
}

// NewBreakdownSnapshot создает снимок разбивки для сохранения в истории.
func NewBreakdownSnapshot(res Result) BreakdownSnapshot {
	return BreakdownSnapshot{
		CarDZD:      res.CarCostLocal,
		ShipDZD:     res.ShippingCostLocal,
		TaxDZD:      res.CustomsTax,
		PortFees:    res.PortFees,
		CustomsBase: res.CustomsBase,
		AdjCar:      res.AdjustedCarPrice,
	}
}
