package vat

import "strings"

// EU standard (normal) VAT rates, keyed by German country name.
var standardRates = map[string]float64{
	"Belgien":      0.21,
	"Bulgarien":    0.20,
	"Dänemark":     0.25,
	"Deutschland":  0.19,
	"Estland":      0.24,
	"Finnland":     0.255,
	"Frankreich":   0.20,
	"Griechenland": 0.24,
	"Irland":       0.23,
	"Italien":      0.22,
	"Kroatien":     0.25,
	"Lettland":     0.21,
	"Litauen":      0.21,
	"Luxemburg":    0.17,
	"Malta":        0.18,
	"Niederlande":  0.21,
	"Nordirland":   0.20,
	"Österreich":   0.20,
	"Polen":        0.23,
	"Portugal":     0.23,
	"Rumänien":     0.21,
	"Schweden":     0.25,
	"Slowakei":     0.23,
	"Slowenien":    0.22,
	"Spanien":      0.21,
	"Tschechien":   0.21,
	"Ungarn":       0.27,
	"Zypern":       0.19,
}

// EU reduced rates for food and edible supplements, keyed the same way.
// Where a country defines several reduced rates, the one typical for
// food is used; Denmark has no reduced rate at all.
var reducedRates = map[string]float64{
	"Belgien":      0.06,
	"Bulgarien":    0.09,
	"Dänemark":     0.25,
	"Deutschland":  0.07,
	"Estland":      0.09,
	"Finnland":     0.10,
	"Frankreich":   0.055,
	"Griechenland": 0.06,
	"Irland":       0.048,
	"Italien":      0.10,
	"Kroatien":     0.05,
	"Lettland":     0.05,
	"Litauen":      0.05,
	"Luxemburg":    0.03,
	"Malta":        0.05,
	"Niederlande":  0.09,
	"Nordirland":   0.00,
	"Österreich":   0.10,
	"Polen":        0.05,
	"Portugal":     0.06,
	"Rumänien":     0.11,
	"Schweden":     0.06,
	"Slowakei":     0.05,
	"Slowenien":    0.05,
	"Spanien":      0.10,
	"Tschechien":   0.12,
	"Ungarn":       0.05,
	"Zypern":       0.05,
}

// countryAliases normalizes English country names to the German keys
// used by the rate tables.
var countryAliases = map[string]string{
	"Germany":          "Deutschland",
	"Austria":          "Österreich",
	"France":           "Frankreich",
	"Belgium":          "Belgien",
	"Bulgaria":         "Bulgarien",
	"Denmark":          "Dänemark",
	"Estonia":          "Estland",
	"Finland":          "Finnland",
	"Greece":           "Griechenland",
	"Ireland":          "Irland",
	"Italy":            "Italien",
	"Croatia":          "Kroatien",
	"Latvia":           "Lettland",
	"Lithuania":        "Litauen",
	"Luxembourg":       "Luxemburg",
	"Netherlands":      "Niederlande",
	"Northern Ireland": "Nordirland",
	"Poland":           "Polen",
	"Romania":          "Rumänien",
	"Sweden":           "Schweden",
	"Slovakia":         "Slowakei",
	"Slovenia":         "Slowenien",
	"Spain":            "Spanien",
	"Czech Republic":   "Tschechien",
	"Czechia":          "Tschechien",
	"Hungary":          "Ungarn",
	"Cyprus":           "Zypern",
	"Switzerland":      "Schweiz",
}

// NormalizeCountry maps an English country name onto the internal
// German rate-table key. Unrecognized names pass through unchanged.
func NormalizeCountry(country string) string {
	country = strings.TrimSpace(country)
	if alias, ok := countryAliases[country]; ok {
		return alias
	}
	return country
}

// RateFor resolves the decimal VAT rate for a destination country and a
// rate category. Countries outside the rate tables (non-EU, e.g.
// Switzerland) resolve to 0: the marketplace facilitator remits the tax
// and the invoice is zero-rated.
func RateFor(country string, kind RateKind) float64 {
	key := NormalizeCountry(country)
	if kind == Reduced {
		return reducedRates[key]
	}
	return standardRates[key]
}
