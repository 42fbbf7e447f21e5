package money

import (
	"fmt"
	"strings"
)

// suffixSymbols are currency symbols rendered after the amount with a
// separating space, Scandinavian style.
var suffixSymbols = map[string]bool{
	"kr":  true,
	"SEK": true,
	"DKK": true,
	"NOK": true,
}

// prefixSymbols are rendered directly before the amount without a space.
var prefixSymbols = map[string]bool{
	"£": true,
	"$": true,
}

// FormatAmount renders a monetary amount with two decimals and a comma
// decimal separator, placing the currency symbol by local convention:
// "12,34 kr", "£12,34", "€ 12,34".
func FormatAmount(amount float64, symbol string) string {
	n := strings.Replace(fmt.Sprintf("%.2f", amount), ".", ",", 1)
	switch {
	case symbol == "":
		return n
	case suffixSymbols[symbol]:
		return n + " " + symbol
	case prefixSymbols[symbol]:
		return symbol + n
	default:
		return symbol + " " + n
	}
}

// FormatQuantity renders an item quantity in the German style with two
// decimals, e.g. 2 -> "2,00".
func FormatQuantity(qty int) string {
	return fmt.Sprintf("%d,00", qty)
}

// FormatRate renders a VAT rate as a percentage with one decimal and a
// comma separator, e.g. 0.19 -> "19,0".
func FormatRate(rate float64) string {
	return strings.Replace(fmt.Sprintf("%.1f", rate*100), ".", ",", 1)
}
