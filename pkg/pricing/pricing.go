package pricing

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var usdPrinter = message.NewPrinter(language.AmericanEnglish)

// FormatPrice renders an amount as a US-dollar string with two fractional
// digits and thousands separators, e.g. 1234.5 -> "$1,234.50".
func FormatPrice(amount decimal.Decimal) string {
	value, _ := amount.Round(2).Float64()
	return usdPrinter.Sprintf("$%v", number.Decimal(value,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}
