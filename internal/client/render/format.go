package render

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/iudanet/carcost/internal/rates"
)

// Formatter renders amounts for one display language: local (DZD) amounts
// are grouped the way the language does it, foreign amounts use the
// currency's own symbol and separators.
type Formatter struct {
	printer  *message.Printer
	currency money.Currency
	tag      language.Tag
}

// NewFormatter returns a formatter for lang and the foreign currency code.
// An empty code means the default rate table currency.
func NewFormatter(lang, currencyCode string) *Formatter {
	code := strings.ToUpper(strings.TrimSpace(currencyCode))
	if code == "" {
		code = rates.DefaultCode
	}
	tag := MatchLanguage(lang)

	return &Formatter{
		printer: newPrinter(tag),
		// money.New никогда не возвращает nil валюту, даже для неизвестного кода
		currency: *money.New(0, code).Currency(),
		tag:      tag,
	}
}

// Local formats n with exactly dec fraction digits, halves rounded away
// from zero.
func (f *Formatter) Local(n float64, dec int) string {
	rounded := decimal.NewFromFloat(n).Round(int32(dec)).InexactFloat64()
	return f.printer.Sprint(number.Decimal(rounded,
		number.MinFractionDigits(dec),
		number.MaxFractionDigits(dec),
	))
}

// Foreign formats n in the foreign currency, e.g. €5,500.00.
func (f *Formatter) Foreign(n float64) string {
	fraction := int32(f.currency.Fraction)
	minor := decimal.NewFromFloat(n).Round(fraction).Shift(fraction).IntPart()
	return f.currency.Formatter().Format(minor)
}

// CurrencyCode returns the foreign currency code.
func (f *Formatter) CurrencyCode() string {
	return f.currency.Code
}

// T returns the translated message for key.
func (f *Formatter) T(key string, a ...any) string {
	return f.printer.Sprintf(key, a...)
}

// Language returns the matched display language.
func (f *Formatter) Language() language.Tag {
	return f.tag
}

// Percent formats a percentage value without a fixed number of digits.
func (f *Formatter) Percent(n float64) string {
	return f.printer.Sprint(number.Decimal(n))
}
