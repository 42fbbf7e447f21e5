package vat

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mhessler/rechnung/internal/domain"
)

func items(names ...string) []domain.LineItem {
	out := make([]domain.LineItem, len(names))
	for i, n := range names {
		out[i] = domain.LineItem{ProductName: n}
	}
	return out
}

func TestClassify_FallbackKeywords(t *testing.T) {
	rs := DefaultRuleSet()

	tests := []struct {
		name  string
		items []domain.LineItem
		want  RateKind
	}{
		{"food product", items("Bio Kürbiskernöl kaltgepresst"), Reduced},
		{"cosmetic product", items("Hand Cream with Chamomile"), Standard},
		{"cosmetic overrides food term", items("Bio Haaröl mit Arganöl"), Standard},
		{"unknown product defaults to standard", items("USB-Kabel 2m"), Standard},
		{"all items reduced", items("Schwarzkümmelöl", "Grüner Tee Sencha", "Vitamin D3 Kapseln"), Reduced},
		{"one standard item forces whole order", items("Kurkuma Kapseln", "Lavendel Seife"), Standard},
		{"empty order", nil, Standard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.items, rs))
		})
	}
}

func TestClassify_SKUBased(t *testing.T) {
	rs := &RuleSet{
		Type:             TypeSKUBased,
		ReducedRateSKUs:  []string{"OIL-250"},
		StandardRateSKUs: []string{"SOAP-1"},
	}
	rs.index()

	t.Run("explicit reduced SKU", func(t *testing.T) {
		got := Classify([]domain.LineItem{{ProductName: "Irgendwas", SKU: "OIL-250"}}, rs)
		assert.Equal(t, Reduced, got)
	})

	t.Run("explicit standard SKU wins over food name", func(t *testing.T) {
		got := Classify([]domain.LineItem{{ProductName: "Bio Speiseöl", SKU: "SOAP-1"}}, rs)
		assert.Equal(t, Standard, got)
	})

	t.Run("unlisted SKU falls back to keywords", func(t *testing.T) {
		got := Classify([]domain.LineItem{{ProductName: "Kokosöl nativ", SKU: "XX-1"}}, rs)
		assert.Equal(t, Reduced, got)

		got = Classify([]domain.LineItem{{ProductName: "Duschgel", SKU: "XX-2"}}, rs)
		assert.Equal(t, Standard, got)
	})

	t.Run("mixed listing forces standard", func(t *testing.T) {
		got := Classify([]domain.LineItem{
			{ProductName: "Öl", SKU: "OIL-250"},
			{ProductName: "Seife", SKU: "SOAP-1"},
		}, rs)
		assert.Equal(t, Standard, got)
	})
}

func TestClassify_KeywordBased(t *testing.T) {
	rs := &RuleSet{
		Type:                 TypeKeywordBased,
		ReducedRateKeywords:  []string{"Öl", "Tee"},
		StandardRateKeywords: []string{"Seife"},
	}
	rs.index()

	assert.Equal(t, Reduced, Classify(items("Leinöl kaltgepresst", "Kräutertee"), rs))
	assert.Equal(t, Standard, Classify(items("Leinöl", "Olivenseife"), rs))
	// A name matching no configured keyword is standard-rated.
	assert.Equal(t, Standard, Classify(items("Baumwolltuch"), rs))
}

func TestClassify_ASINBased(t *testing.T) {
	rs := &RuleSet{
		Type:             TypeASINBased,
		ReducedRateASINs: []string{"B000000001"},
	}
	rs.index()

	t.Run("listed ASIN reduced", func(t *testing.T) {
		got := Classify([]domain.LineItem{{ProductName: "Öl", ASIN: "B000000001"}}, rs)
		assert.Equal(t, Reduced, got)
	})

	t.Run("unlisted ASIN standard", func(t *testing.T) {
		got := Classify([]domain.LineItem{{ProductName: "Kokosöl", ASIN: "B999999999"}}, rs)
		assert.Equal(t, Standard, got)
	})

	t.Run("empty ASIN lists use fallback", func(t *testing.T) {
		empty := &RuleSet{Type: TypeASINBased}
		empty.index()
		got := Classify([]domain.LineItem{{ProductName: "Kokosöl nativ"}}, empty)
		assert.Equal(t, Reduced, got)
	})
}

func TestClassify_NilRuleSet(t *testing.T) {
	assert.Equal(t, Reduced, Classify(items("Bio Leinsamen"), nil))
}

func TestRateKind_String(t *testing.T) {
	assert.Equal(t, "standard", Standard.String())
	assert.Equal(t, "reduced", Reduced.String())
}
