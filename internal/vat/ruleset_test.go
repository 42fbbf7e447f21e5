package vat

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func writeRules(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vat_rules.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoader_LoadsRuleFile(t *testing.T) {
	path := writeRules(t, `{
		"type": "sku-based",
		"reduced_rate_skus": ["OIL-250", "TEA-50"],
		"standard_rate_skus": ["SOAP-1"],
		"reduced_rate_keywords": ["öl"],
		"standard_rate_keywords": ["Seife"]
	}`)

	rs := NewLoader(path, testLogger()).RuleSet()

	assert.Equal(t, TypeSKUBased, rs.Type)
	assert.Len(t, rs.ReducedRateSKUs, 2)
	assert.Contains(t, rs.reducedSKUs, "OIL-250")
	assert.Contains(t, rs.standardSKUs, "SOAP-1")
	// Keywords are lower-cased on load.
	assert.Equal(t, []string{"seife"}, rs.standardKeywords)
}

func TestLoader_MissingTypeDefaultsToKeywordBased(t *testing.T) {
	path := writeRules(t, `{"reduced_rate_keywords": ["tee"]}`)

	rs := NewLoader(path, testLogger()).RuleSet()

	assert.Equal(t, TypeKeywordBased, rs.Type)
}

func TestLoader_MissingFileFallsBack(t *testing.T) {
	l := NewLoader(filepath.Join(t.TempDir(), "nope.json"), testLogger())

	rs := l.RuleSet()

	require.NotNil(t, rs)
	assert.Equal(t, TypeSKUBased, rs.Type)
	assert.Empty(t, rs.ReducedRateSKUs)
}

func TestLoader_CorruptFileFallsBack(t *testing.T) {
	path := writeRules(t, `{broken`)

	rs := NewLoader(path, testLogger()).RuleSet()

	require.NotNil(t, rs)
	assert.Equal(t, TypeSKUBased, rs.Type)
}

func TestLoader_CachesRuleSet(t *testing.T) {
	path := writeRules(t, `{"type": "keyword-based", "reduced_rate_keywords": ["öl"]}`)
	l := NewLoader(path, testLogger())

	first := l.RuleSet()

	// Replacing the file on disk does not affect the cached rule set.
	require.NoError(t, os.WriteFile(path, []byte(`{"type": "sku-based"}`), 0o644))
	assert.Same(t, first, l.RuleSet())
}
