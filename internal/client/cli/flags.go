package cli

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/iudanet/carcost/internal/calc"
	"github.com/iudanet/carcost/internal/models"
	"github.com/iudanet/carcost/internal/rates"
)

var ErrUnknownCurrency = errors.New("unknown currency")

// inputFlags флаги расчета, общие для calc и save
type inputFlags struct {
	currency string
	raw      calc.RawInputs
}

func (f *inputFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&f.raw.CarPrice, "price", "", "Car price in foreign currency")
	fs.StringVar(&f.raw.Shipping, "shipping", "", "Shipping cost in foreign currency")
	fs.StringVar(&f.raw.OfficialRate, "official", "", "Official rate, DZD per unit (default: rate table)")
	fs.StringVar(&f.raw.ParallelRate, "parallel", "", "Parallel market rate, DZD per unit (default: rate table)")
	fs.StringVar(&f.raw.CustomsTaxPercent, "tax", "", "Customs tax, percent of the car price")
	fs.StringVar(&f.raw.PortFees, "port", "", "Port and admin fees in DZD")
	fs.BoolVar(&f.raw.VATDeductible, "vat", false, "TVA deductible (19%), NIF-registered businesses only")
	fs.StringVar(&f.currency, "currency", "", "Take official and parallel rates from the rate table for this currency")
}

// inputs приводит введенные значения; курсы из таблицы, если не заданы явно
func (f *inputFlags) inputs(defaultCurrency string) (models.Inputs, error) {
	code := f.currency
	if code == "" {
		code = defaultCurrency
	}

	raw := f.raw
	if code != "" {
		cur, ok := rates.Lookup(code)
		if !ok {
			return models.Inputs{}, fmt.Errorf("%w: %q", ErrUnknownCurrency, code)
		}
		if strings.TrimSpace(raw.OfficialRate) == "" {
			raw.OfficialRate = formatRate(cur.Official)
		}
		if strings.TrimSpace(raw.ParallelRate) == "" {
			raw.ParallelRate = formatRate(cur.Parallel)
		}
	}

	return calc.ParseInputs(raw), nil
}

func formatRate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
