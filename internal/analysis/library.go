// Package analysis holds the demo metric library behind the comparison API.
//
// No text extraction or financial modeling happens here: the library is a
// fixed in-code dataset keyed by normalized entity name, covering the ten
// analysis categories the frontend renders. Entities outside the dataset
// resolve to a neutral profile so a comparison request never fails.
package analysis

import "strings"

// Analysis categories in frontend display order.
const (
	CategoryInvestmentThesis        = "investment_thesis"
	CategoryValuationMetrics        = "valuation_metrics"
	CategoryFinancialPerformance    = "financial_performance"
	CategoryCompetitivePosition     = "competitive_position"
	CategoryRiskFactors             = "risk_factors"
	CategoryGrowthDrivers           = "growth_drivers"
	CategoryMacroContext            = "macro_context"
	CategoryESGFactors              = "esg_factors"
	CategoryManagementQuality       = "management_quality"
	CategoryPortfolioRecommendation = "portfolio_recommendation"
)

// Categories returns the ordered list of analysis categories.
func Categories() []string {
	return []string{
		CategoryInvestmentThesis,
		CategoryValuationMetrics,
		CategoryFinancialPerformance,
		CategoryCompetitivePosition,
		CategoryRiskFactors,
		CategoryGrowthDrivers,
		CategoryMacroContext,
		CategoryESGFactors,
		CategoryManagementQuality,
		CategoryPortfolioRecommendation,
	}
}

// Fact is one metric cell: a value, its unit, and a short definition.
type Fact struct {
	Value      any    `json:"value"`
	Unit       string `json:"unit"`
	Definition string `json:"definition"`
}

// FactTable holds the named facts for one entity/category pair.
type FactTable map[string]Fact

// Profile carries everything the library knows about one entity: its
// investment thesis, the base confidence the scorer will adjust, and the
// per-category fact tables.
type Profile struct {
	Entity         string
	Thesis         string
	BaseConfidence int
	Facts          map[string]FactTable
}

// FactsFor returns the fact table for a category; nil when the profile has
// no data there.
func (p *Profile) FactsFor(category string) FactTable {
	return p.Facts[category]
}

// neutralBaseConfidence is the confidence assigned to unknown entities. It
// sits on the quality-adjustment pivot so evidence quality alone moves the
// reported confidence.
const neutralBaseConfidence = 70

// Library resolves entities and categories to demo analysis data.
type Library struct {
	profiles    map[string]*Profile
	conclusions map[string]string
}

// NewLibrary builds the library with the built-in demo dataset.
func NewLibrary() *Library {
	return &Library{
		profiles:    demoProfiles(),
		conclusions: demoConclusions(),
	}
}

// Normalize canonicalizes an entity name for lookup and wire keys.
func Normalize(entity string) string {
	return strings.ToLower(strings.TrimSpace(entity))
}

// Profile looks up an entity by normalized name. Unknown entities return a
// neutral profile (no facts, pivot confidence) and ok=false.
func (l *Library) Profile(entity string) (*Profile, bool) {
	key := Normalize(entity)
	if p, ok := l.profiles[key]; ok {
		return p, true
	}
	return &Profile{
		Entity:         key,
		BaseConfidence: neutralBaseConfidence,
		Facts:          map[string]FactTable{},
	}, false
}

// Conclusion returns the fixed CIO-ready paragraph for a category, or an
// empty string for categories outside the known set.
func (l *Library) Conclusion(category string) string {
	return l.conclusions[category]
}

// Entities lists the entities the demo dataset covers.
func (l *Library) Entities() []string {
	names := make([]string, 0, len(l.profiles))
	for _, key := range []string{"apple", "meta", "microsoft"} {
		if _, ok := l.profiles[key]; ok {
			names = append(names, key)
		}
	}
	return names
}
