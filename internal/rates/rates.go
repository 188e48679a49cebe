// Package rates holds the static exchange-rate table.
// Rates are configuration data: official is the government rate used for
// customs valuation, parallel is the market rate used for purchases.
package rates

import (
	"strings"
	"time"
)

// Currency представляет запись таблицы курсов.
type Currency struct {
	Code     string  // Code ISO 4217 код валюты
	Name     string  // Name отображаемое название
	Flag     string  // Flag флаг для отображения
	Official float64 // Official официальный курс к DZD
	Parallel float64 // Parallel курс параллельного рынка к DZD
}

// LastUpdated дата последнего обновления таблицы.
var LastUpdated = time.Date(2026, time.February, 15, 0, 0, 0, 0, time.UTC)

// DefaultCode валюта по умолчанию; ее курсы совпадают с models.DefaultOfficialRate/DefaultParallelRate.
const DefaultCode = "EUR"

var table = []Currency{
	{Code: "EUR", Name: "Euro", Flag: "🇪🇺", Official: 153.00, Parallel: 280.00},
	{Code: "USD", Name: "US Dollar", Flag: "🇺🇸", Official: 135.50, Parallel: 248.00},
	{Code: "GBP", Name: "British Pound", Flag: "🇬🇧", Official: 178.80, Parallel: 328.00},
	{Code: "CAD", Name: "Canadian Dollar", Flag: "🇨🇦", Official: 98.20, Parallel: 178.00},
	{Code: "CHF", Name: "Swiss Franc", Flag: "🇨🇭", Official: 160.50, Parallel: 293.00},
	{Code: "TRY", Name: "Turkish Lira", Flag: "🇹🇷", Official: 3.50, Parallel: 6.40},
	{Code: "AED", Name: "UAE Dirham", Flag: "🇦🇪", Official: 36.90, Parallel: 67.50},
	{Code: "CNY", Name: "Chinese Yuan", Flag: "🇨🇳", Official: 18.90, Parallel: 34.50},
}

// All returns a copy of the rate table in display order.
func All() []Currency {
	out := make([]Currency, len(table))
	copy(out, table)
	return out
}

// Lookup finds a currency by code, case-insensitively.
func Lookup(code string) (Currency, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	for _, c := range table {
		if c.Code == code {
			return c, true
		}
	}
	return Currency{}, false
}

// Default returns the default currency record.
func Default() Currency {
	c, _ := Lookup(DefaultCode)
	return c
}
