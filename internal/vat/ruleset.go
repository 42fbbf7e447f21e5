// Package vat decides which VAT rate category applies to an order and
// resolves the concrete per-country rate.
//
// Classification is layered: an explicit per-SKU assignment wins over
// configured keyword lists, which win over a built-in fallback keyword
// set. The rule set is loaded from an externally editable JSON file and
// cached for the lifetime of the process; configuration edits require a
// restart to take effect.
package vat

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Rule set type tags. SKU-based is the preferred mode; ASIN-based is a
// legacy mode kept for old configuration files.
const (
	TypeSKUBased     = "sku-based"
	TypeKeywordBased = "keyword-based"
	TypeASINBased    = "asin-based"
)

// RuleSet is the layered classification table. It is read-only once
// loaded; the classifier never mutates it.
type RuleSet struct {
	Type string `mapstructure:"type"`

	ReducedRateSKUs  []string `mapstructure:"reduced_rate_skus"`
	StandardRateSKUs []string `mapstructure:"standard_rate_skus"`

	ReducedRateASINs  []string `mapstructure:"reduced_rate_asins"`
	StandardRateASINs []string `mapstructure:"standard_rate_asins"`

	ReducedRateKeywords  []string `mapstructure:"reduced_rate_keywords"`
	StandardRateKeywords []string `mapstructure:"standard_rate_keywords"`

	reducedSKUs      map[string]struct{}
	standardSKUs     map[string]struct{}
	reducedASINs     map[string]struct{}
	standardASINs    map[string]struct{}
	reducedKeywords  []string
	standardKeywords []string
}

// DefaultRuleSet returns an empty SKU-based rule set. With no explicit
// assignments and no keywords, classification falls through to the
// built-in fallback keyword lists.
func DefaultRuleSet() *RuleSet {
	rs := &RuleSet{Type: TypeSKUBased}
	rs.index()
	return rs
}

// index builds the lookup sets used during classification. Keywords are
// lower-cased once here so matching stays a plain substring check.
func (rs *RuleSet) index() {
	rs.reducedSKUs = toSet(rs.ReducedRateSKUs)
	rs.standardSKUs = toSet(rs.StandardRateSKUs)
	rs.reducedASINs = toSet(rs.ReducedRateASINs)
	rs.standardASINs = toSet(rs.StandardRateASINs)
	rs.reducedKeywords = toLower(rs.ReducedRateKeywords)
	rs.standardKeywords = toLower(rs.StandardRateKeywords)
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

func toLower(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strings.ToLower(v)
	}
	return out
}

// Loader reads the rule set from disk exactly once and caches it for
// the process lifetime. A missing or corrupt file degrades to the
// built-in fallback classification; it is never fatal.
type Loader struct {
	path   string
	logger *slog.Logger

	once sync.Once
	rs   *RuleSet
}

// NewLoader creates a rule set loader for the given file path.
func NewLoader(path string, logger *slog.Logger) *Loader {
	return &Loader{path: path, logger: logger}
}

// RuleSet returns the cached rule set, loading it on first use.
func (l *Loader) RuleSet() *RuleSet {
	l.once.Do(func() {
		l.rs = l.load()
	})
	return l.rs
}

func (l *Loader) load() *RuleSet {
	v := viper.New()
	v.SetConfigFile(l.path)
	v.SetConfigType("json")

	if err := v.ReadInConfig(); err != nil {
		l.logger.Warn("VAT rule file unavailable, using built-in fallback keywords",
			"path", l.path, "error", err)
		return DefaultRuleSet()
	}

	rs := &RuleSet{}
	if err := v.Unmarshal(rs); err != nil {
		l.logger.Warn("VAT rule file malformed, using built-in fallback keywords",
			"path", l.path, "error", err)
		return DefaultRuleSet()
	}

	if rs.Type == "" {
		rs.Type = TypeKeywordBased
	}
	rs.index()

	l.logger.Info("VAT rule set loaded",
		"path", l.path,
		"type", rs.Type,
		"reduced_skus", len(rs.ReducedRateSKUs),
		"standard_skus", len(rs.StandardRateSKUs),
		"reduced_keywords", len(rs.ReducedRateKeywords),
		"standard_keywords", len(rs.StandardRateKeywords),
	)
	return rs
}
