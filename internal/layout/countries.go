package layout

import "strings"

// germanNames maps English country names to the German display form
// used on the delivery address block. Unknown names pass through.
var germanNames = map[string]string{
	"Germany":          "Deutschland",
	"Austria":          "Österreich",
	"Switzerland":      "Schweiz",
	"France":           "Frankreich",
	"Italy":            "Italien",
	"Spain":            "Spanien",
	"Netherlands":      "Niederlande",
	"Belgium":          "Belgien",
	"Luxembourg":       "Luxemburg",
	"Poland":           "Polen",
	"Czech Republic":   "Tschechien",
	"Czechia":          "Tschechien",
	"Hungary":          "Ungarn",
	"Romania":          "Rumänien",
	"Bulgaria":         "Bulgarien",
	"Slovakia":         "Slowakei",
	"Slovenia":         "Slowenien",
	"Croatia":          "Kroatien",
	"Lithuania":        "Litauen",
	"Latvia":           "Lettland",
	"Estonia":          "Estland",
	"Greece":           "Griechenland",
	"Portugal":         "Portugal",
	"Ireland":          "Irland",
	"Denmark":          "Dänemark",
	"Sweden":           "Schweden",
	"Finland":          "Finnland",
	"Norway":           "Norwegen",
	"Iceland":          "Island",
	"United Kingdom":   "Vereinigtes Königreich",
	"Great Britain":    "Großbritannien",
	"England":          "England",
	"Scotland":         "Schottland",
	"Wales":            "Wales",
	"Northern Ireland": "Nordirland",
	"Cyprus":           "Zypern",
	"Malta":            "Malta",
}

// countryCodes maps both English and German country names to the
// two-letter code used in invoice filenames.
var countryCodes = map[string]string{
	"Germany": "DE", "Deutschland": "DE",
	"Austria": "AT", "Österreich": "AT",
	"France": "FR", "Frankreich": "FR",
	"Belgium": "BE", "Belgien": "BE",
	"Netherlands": "NL", "Niederlande": "NL",
	"Italy": "IT", "Italien": "IT",
	"Spain": "ES", "Spanien": "ES",
	"Poland": "PL", "Polen": "PL",
	"Sweden": "SE", "Schweden": "SE",
	"Denmark": "DK", "Dänemark": "DK",
	"Luxembourg": "LU", "Luxemburg": "LU",
	"Portugal": "PT",
	"Ireland":  "IE", "Irland": "IE",
	"Greece": "GR", "Griechenland": "GR",
	"Finland": "FI", "Finnland": "FI",
	"Czech Republic": "CZ", "Czechia": "CZ", "Tschechien": "CZ",
	"Hungary": "HU", "Ungarn": "HU",
	"Romania": "RO", "Rumänien": "RO",
	"Bulgaria": "BG", "Bulgarien": "BG",
	"Slovakia": "SK", "Slowakei": "SK",
	"Slovenia": "SI", "Slowenien": "SI",
	"Croatia": "HR", "Kroatien": "HR",
	"Lithuania": "LT", "Litauen": "LT",
	"Latvia": "LV", "Lettland": "LV",
	"Estonia": "EE", "Estland": "EE",
	"Cyprus": "CY", "Zypern": "CY",
	"Malta":            "MT",
	"Northern Ireland": "NI", "Nordirland": "NI",
	"Switzerland": "CH", "Schweiz": "CH",
}

// GermanCountryName returns the German display name for an English
// country name, or the input unchanged when no translation exists.
func GermanCountryName(country string) string {
	if de, ok := germanNames[country]; ok {
		return de
	}
	return country
}

// CountryCode returns the two-letter filename code for a country name,
// in either English or German. Unmapped names fall back to the first
// two letters upper-cased.
func CountryCode(country string) string {
	if code, ok := countryCodes[country]; ok {
		return code
	}
	trimmed := strings.TrimSpace(country)
	if len(trimmed) >= 2 {
		return strings.ToUpper(trimmed[:2])
	}
	return "XX"
}
