package calc

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/iudanet/carcost/internal/models"
)

// RawInputs holds the fields as the user typed them.
type RawInputs struct {
	CarPrice          string
	Shipping          string
	OfficialRate      string
	ParallelRate      string
	CustomsTaxPercent string
	PortFees          string
	VATDeductible     bool
}

// numberPrefix совпадает с числовым префиксом строки ("12.5abc" -> "12.5")
var numberPrefix = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// ParseNumber parses the leading number of s.
// Leading whitespace is skipped and trailing garbage ignored; ok is false
// when s does not start with a number.
func ParseNumber(s string) (float64, bool) {
	m := numberPrefix.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		// Переполнение: значение не годится для расчета
		return 0, false
	}
	return v, true
}

// ParseInputs coerces raw fields into normalized inputs.
func ParseInputs(raw RawInputs) models.Inputs {
	return Normalize(models.Inputs{
		CarPrice:          parseOrZero(raw.CarPrice),
		Shipping:          parseOrZero(raw.Shipping),
		OfficialRate:      parseOrZero(raw.OfficialRate),
		ParallelRate:      parseOrZero(raw.ParallelRate),
		CustomsTaxPercent: parseOrZero(raw.CustomsTaxPercent),
		PortFees:          parseOrZero(raw.PortFees),
		VATDeductible:     raw.VATDeductible,
	})
}

// parseOrZero возвращает 0 для некорректных значений, Normalize подставит default
func parseOrZero(s string) float64 {
	v, ok := ParseNumber(s)
	if !ok {
		return 0
	}
	return v
}
