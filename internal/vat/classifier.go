package vat

import (
	"strings"

	"github.com/mhessler/rechnung/internal/domain"
)

// RateKind is the classification outcome for an order.
type RateKind int

const (
	// Standard is the regular VAT rate for general merchandise.
	Standard RateKind = iota
	// Reduced is the lowered rate for food and edible supplements.
	Reduced
)

// String implements fmt.Stringer for logging.
func (k RateKind) String() string {
	if k == Reduced {
		return "reduced"
	}
	return "standard"
}

// Built-in fallback keyword lists, used when an item clears every
// configured layer without a match. Cosmetics and hygiene products are
// always standard-rated and override any food-adjacent term in the
// same name.
var (
	fallbackStandardKeywords = []string{
		"zahncreme", "zahnpasta", "toothpaste", "creme", "cream",
		"haaröl", "bartöl", "massageöl", "hair oil", "beard oil",
		"seife", "soap", "shampoo", "kosmetik", "cosmetic", "lotion",
	}

	fallbackReducedKeywords = []string{
		"speiseöl", "kapseln", "vitamin", "nahrung", "supplement",
		"kürbis", "schwarzkümmel", "kurkuma", "kokosöl", "tee",
		"samen", "lebensmittel", "bio", "organic",
	}
)

// Classify decides the rate category for a whole order.
//
// The result is order-level, not per item: Reduced is returned only when
// every single item clears every layer as reduced-rated. One
// standard-rated item forces the entire order to Standard. An empty
// item list is Standard.
func Classify(items []domain.LineItem, rs *RuleSet) RateKind {
	if len(items) == 0 {
		return Standard
	}
	if rs == nil {
		rs = DefaultRuleSet()
	}

	switch rs.Type {
	case TypeSKUBased:
		return classifyByID(items, rs, func(it domain.LineItem) string { return it.SKU },
			rs.standardSKUs, rs.reducedSKUs, true)
	case TypeASINBased:
		// Legacy mode. Old configurations without any ASIN lists fall
		// straight through to keyword matching.
		if len(rs.standardASINs) == 0 && len(rs.reducedASINs) == 0 {
			return classifyFallback(items)
		}
		return classifyByID(items, rs, func(it domain.LineItem) string { return it.ASIN },
			rs.standardASINs, rs.reducedASINs, false)
	default:
		return classifyByKeywords(items, rs)
	}
}

// classifyByID matches items against explicit identifier sets, with
// keyword and built-in fallbacks for unlisted identifiers when
// keywordFallback is set (SKU mode). ASIN mode treats an unlisted
// identifier as Standard.
func classifyByID(items []domain.LineItem, rs *RuleSet, id func(domain.LineItem) string, standard, reduced map[string]struct{}, keywordFallback bool) RateKind {
	for _, it := range items {
		key := id(it)
		if _, ok := standard[key]; ok {
			return Standard
		}
		if _, ok := reduced[key]; ok {
			continue
		}

		if !keywordFallback {
			return Standard
		}

		// Identifier not in the configuration: fall back to the
		// configured keyword lists, then to the built-in lists.
		name := strings.ToLower(it.ProductName)
		if containsAny(name, rs.standardKeywords) {
			return Standard
		}
		if containsAny(name, rs.reducedKeywords) {
			continue
		}
		if itemFallback(name) == Standard {
			return Standard
		}
	}
	return Reduced
}

func classifyByKeywords(items []domain.LineItem, rs *RuleSet) RateKind {
	// No configured keywords at all: classify purely on the built-in
	// fallback lists.
	if len(rs.standardKeywords) == 0 && len(rs.reducedKeywords) == 0 {
		return classifyFallback(items)
	}

	for _, it := range items {
		name := strings.ToLower(it.ProductName)
		if containsAny(name, rs.standardKeywords) {
			return Standard
		}
		if !containsAny(name, rs.reducedKeywords) {
			return Standard
		}
	}
	return Reduced
}

func classifyFallback(items []domain.LineItem) RateKind {
	for _, it := range items {
		if itemFallback(strings.ToLower(it.ProductName)) == Standard {
			return Standard
		}
	}
	return Reduced
}

// itemFallback classifies a single lower-cased product name against the
// built-in lists. The cosmetic exception is checked first and anything
// unmatched defaults to Standard.
func itemFallback(name string) RateKind {
	if containsAny(name, fallbackStandardKeywords) {
		return Standard
	}
	if containsAny(name, fallbackReducedKeywords) {
		return Reduced
	}
	return Standard
}

func containsAny(name string, keywords []string) bool {
	for _, kw := range keywords {
		if kw != "" && strings.Contains(name, kw) {
			return true
		}
	}
	return false
}
