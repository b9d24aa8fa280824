// Package evidence scores how trustworthy a set of uploaded documents is.
//
// The scorer looks only at document descriptors (filename, byte size), never at
// file contents. Five sub-scores — source credibility, cross-document
// consistency, triangulation, temporal reliability, and evidence-type
// diversity — are combined into a weighted composite in [0,100], a categorical
// rating, and a set of reliability flags. The composite also adjusts a
// caller-supplied base confidence value.
//
// Every operation is a pure function of its inputs: no I/O, no retained state,
// safe for concurrent use. Malformed descriptors (empty filename, zero size)
// degrade to the default source bucket and the small-file penalty paths rather
// than producing an error; a scoring call always succeeds.
package evidence

import (
	"math"
	"strings"
)

// Descriptor identifies one uploaded document. It is the only input the
// scorer accepts: filename drives keyword classification, size stands in for
// comprehensiveness. Zero values are valid and route to safe defaults.
type Descriptor struct {
	Filename  string `json:"filename"`
	SizeBytes int64  `json:"size"`
}

// SourceType buckets a document by the kind of source its filename implies.
type SourceType string

const (
	SourceOfficial SourceType = "official"
	SourceAnalyst  SourceType = "analyst"
	SourceNews     SourceType = "news"
	SourceOther    SourceType = "other"
)

// SubScores holds the five component scores that feed the composite. The
// typed record guarantees all five are always computed and weighted; JSON
// field names are the original frontend contract.
type SubScores struct {
	Credibility   float64 `json:"source_credibility"`
	Consistency   float64 `json:"cross_document_consistency"`
	Triangulation float64 `json:"evidence_triangulation"`
	Temporal      float64 `json:"temporal_reliability"`
	Diversity     float64 `json:"evidence_diversity"`
}

// Result is the complete outcome of one scoring call.
type Result struct {
	CompositeScore     float64   `json:"evidence_quality_score"`
	AdjustedConfidence int       `json:"adjusted_confidence"`
	SubScores          SubScores `json:"quality_breakdown"`
	QualityRating      Rating    `json:"quality_rating"`
	ReliabilityFlags   []string  `json:"reliability_flags"`
}

// Weights distributes the composite across the five sub-scores. The weights
// are the trust-weighting policy: they must sum to 1.0 and changing them
// changes scoring semantics, so Validate gates any override.
type Weights struct {
	Credibility   float64 `yaml:"credibility" json:"credibility"`
	Consistency   float64 `yaml:"consistency" json:"consistency"`
	Triangulation float64 `yaml:"triangulation" json:"triangulation"`
	Temporal      float64 `yaml:"temporal" json:"temporal"`
	Diversity     float64 `yaml:"diversity" json:"diversity"`
}

// CredibilityRule maps filename keywords to a base credibility score. Rules
// are checked in order; the first match wins, so more authoritative document
// types must come first.
type CredibilityRule struct {
	Label    string
	Keywords []string
	Base     float64
}

// SourceTypeRule maps filename keywords to a SourceType for the simpler
// four-bucket classification used by consistency and diversity scoring.
type SourceTypeRule struct {
	Type     SourceType
	Keywords []string
}

// Config carries the scorer's parameter data: keyword tables, the weight
// vector, category adjustments, and the rating/flag guard tables. All of it
// is plain data so tests can pin it down and deployments can extend it.
type Config struct {
	CredibilityRules []CredibilityRule
	DefaultBase      float64

	SourceTypeRules []SourceTypeRule

	// CategoryModifiers scales consistency for categories whose evidence is
	// more or less standardized. Unknown categories fall through to 1.0 —
	// callers pass ad hoc tags and that is allowed.
	CategoryModifiers map[string]float64

	// QuantitativeCategories reward official filings in diversity scoring;
	// QualitativeCategories reward breadth of source types instead.
	QuantitativeCategories []string
	QualitativeCategories  []string

	Weights Weights

	RatingBands  []RatingBand
	FlagRules    []FlagRule
	PositiveFlag string
}

// Fixed thresholds of the scoring model. Sizes are bytes.
const (
	sizeLarge        = 5_000_000
	sizeMedium       = 1_000_000
	sizeSmall        = 100_000
	sizeBonusLarge   = 10.0
	sizeBonusMedium  = 5.0
	sizeSmallPenalty = -15.0

	perDocFloor   = 40.0
	perDocCeiling = 95.0

	confidencePivot = 70.0
	adjustmentScale = 0.3
	confidenceFloor = 40.0
	confidenceCeil  = 99.0
)

// Neutral defaults returned for an empty document set.
const (
	emptyCredibility   = 50.0
	emptyConsistency   = 60.0
	emptyTriangulation = 45.0
	emptyTemporal      = 60.0
	emptyDiversity     = 50.0
)

// DefaultConfig returns the production scoring parameters.
func DefaultConfig() *Config {
	return &Config{
		CredibilityRules: []CredibilityRule{
			{Label: "official", Keywords: []string{"10-k", "10k", "annual", "quarterly", "10-q", "10q"}, Base: 90},
			{Label: "analyst", Keywords: []string{"analyst", "research", "morgan", "goldman", "jp", "citi"}, Base: 80},
			{Label: "research", Keywords: []string{"whitepaper", "study", "analysis", "report"}, Base: 70},
			{Label: "press", Keywords: []string{"press", "news", "release"}, Base: 60},
		},
		DefaultBase: 65,

		SourceTypeRules: []SourceTypeRule{
			{Type: SourceOfficial, Keywords: []string{"10-k", "10k", "annual", "quarterly"}},
			{Type: SourceAnalyst, Keywords: []string{"analyst", "research"}},
			{Type: SourceNews, Keywords: []string{"news", "press"}},
		},

		CategoryModifiers: map[string]float64{
			"financial_performance": 1.1,
			"valuation_metrics":     1.1,
			"management_quality":    0.9,
			"esg_factors":           0.85,
			"competitive_position":  0.95,
		},

		QuantitativeCategories: []string{"financial_performance", "valuation_metrics"},
		QualitativeCategories:  []string{"management_quality", "esg_factors", "competitive_position"},

		Weights: Weights{
			Credibility:   0.25,
			Consistency:   0.30,
			Triangulation: 0.20,
			Temporal:      0.15,
			Diversity:     0.10,
		},

		RatingBands:  defaultRatingBands(),
		FlagRules:    defaultFlagRules(),
		PositiveFlag: FlagNoConcerns,
	}
}

// Scorer evaluates evidence quality for document sets.
type Scorer struct {
	cfg *Config
}

// NewScorer creates a scorer; a nil config selects DefaultConfig.
func NewScorer(cfg *Config) *Scorer {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Scorer{cfg: cfg}
}

// Config exposes the active parameter data, mainly for inspection in tests
// and explain-style output.
func (s *Scorer) Config() *Config { return s.cfg }

// Score computes the full evidence quality result for one entity/category
// pair: all five sub-scores, the weighted composite, the categorical rating,
// reliability flags, and the adjusted confidence.
//
// The composite and each sub-score are rounded to one decimal place; the
// rating, flags, and confidence adjustment all derive from those rounded
// values so the reported result is self-consistent.
func (s *Scorer) Score(entity, category string, docs []Descriptor, baseConfidence int) Result {
	sub := SubScores{
		Credibility:   s.SourceCredibility(docs),
		Consistency:   s.ConsistencyScore(entity, category, docs),
		Triangulation: s.TriangulationScore(docs),
		Temporal:      s.TemporalReliability(docs),
		Diversity:     s.EvidenceDiversity(category, docs),
	}

	w := s.cfg.Weights
	composite := round1(sub.Credibility*w.Credibility +
		sub.Consistency*w.Consistency +
		sub.Triangulation*w.Triangulation +
		sub.Temporal*w.Temporal +
		sub.Diversity*w.Diversity)

	sub.Credibility = round1(sub.Credibility)
	sub.Consistency = round1(sub.Consistency)
	sub.Triangulation = round1(sub.Triangulation)
	sub.Temporal = round1(sub.Temporal)
	sub.Diversity = round1(sub.Diversity)

	adjustment := (composite - confidencePivot) * adjustmentScale
	adjusted := clamp(float64(baseConfidence)+adjustment, confidenceFloor, confidenceCeil)

	return Result{
		CompositeScore:     composite,
		AdjustedConfidence: int(math.Round(adjusted)),
		SubScores:          sub,
		QualityRating:      s.cfg.ratingFor(composite),
		ReliabilityFlags:   s.cfg.flagsFor(sub),
	}
}

// SourceCredibility estimates trustworthiness from document type and size.
// Each document gets a base score from the first matching credibility rule
// (65 when nothing matches), a size adjustment, and a [40,95] clamp; the
// result is the mean across documents. An empty set scores a neutral 50.
func (s *Scorer) SourceCredibility(docs []Descriptor) float64 {
	if len(docs) == 0 {
		return emptyCredibility
	}

	total := 0.0
	for _, doc := range docs {
		base := s.credibilityBase(doc.Filename)
		total += clamp(base+sizeAdjustment(doc.SizeBytes), perDocFloor, perDocCeiling)
	}
	return total / float64(len(docs))
}

// ConsistencyScore estimates cross-document agreement. With one source there
// is nothing to cross-check, so the score is a fixed moderate 60. Otherwise
// document count raises the base, distinct source types add a diversity
// bonus, and the category modifier scales the total: standardized financial
// data is easier to reconcile than, say, conflicting ESG viewpoints.
func (s *Scorer) ConsistencyScore(entity, category string, docs []Descriptor) float64 {
	if len(docs) <= 1 {
		return emptyConsistency
	}

	base := math.Min(85, 50+float64(len(docs))*8)
	diversityBonus := float64(len(s.distinctSourceTypes(docs))) * 5

	modifier := 1.0
	if m, ok := s.cfg.CategoryModifiers[category]; ok {
		modifier = m
	}

	return math.Min(95, (base+diversityBonus)*modifier)
}

// TriangulationScore reflects how much independent corroboration the set
// allows. Zero or one document permits none.
func (s *Scorer) TriangulationScore(docs []Descriptor) float64 {
	switch n := len(docs); {
	case n <= 1:
		return emptyTriangulation
	case n == 2:
		return 65.0
	case n == 3:
		return 80.0
	default:
		return math.Min(95, 80+float64(n-3)*3)
	}
}

// TemporalReliability proxies recency and coverage breadth by document count
// and size: multiple documents suggest ongoing coverage, very small files may
// be outdated fragments.
func (s *Scorer) TemporalReliability(docs []Descriptor) float64 {
	if len(docs) == 0 {
		return emptyTemporal
	}

	score := 70.0
	switch {
	case len(docs) >= 3:
		score += 10
	case len(docs) >= 2:
		score += 5
	}

	for _, doc := range docs {
		if doc.SizeBytes < sizeSmall {
			score -= 5
		}
	}

	return clamp(score, 40, 90)
}

// EvidenceDiversity measures breadth of evidence relative to the category.
// Quantitative categories want official filings; qualitative ones want many
// perspectives. The result is capped at 95 with no lower clamp: the base
// already starts at 50, and the asymmetry is part of the documented model.
func (s *Scorer) EvidenceDiversity(category string, docs []Descriptor) float64 {
	if len(docs) == 0 {
		return emptyDiversity
	}

	score := math.Min(80, 50+float64(len(docs))*7)

	switch {
	case containsString(s.cfg.QuantitativeCategories, category):
		for _, doc := range docs {
			if s.cfg.sourceType(doc.Filename) == SourceOfficial {
				score += 8
			}
		}
	case containsString(s.cfg.QualitativeCategories, category):
		score += float64(len(s.distinctSourceTypes(docs))) * 6
	}

	return math.Min(95, score)
}

// credibilityBase returns the base score of the first credibility rule whose
// keywords appear in the filename, or the default base for no match.
func (s *Scorer) credibilityBase(filename string) float64 {
	lower := strings.ToLower(filename)
	for _, rule := range s.cfg.CredibilityRules {
		for _, kw := range rule.Keywords {
			if strings.Contains(lower, kw) {
				return rule.Base
			}
		}
	}
	return s.cfg.DefaultBase
}

// sourceType classifies a filename into the four-bucket source taxonomy.
func (c *Config) sourceType(filename string) SourceType {
	lower := strings.ToLower(filename)
	for _, rule := range c.SourceTypeRules {
		for _, kw := range rule.Keywords {
			if strings.Contains(lower, kw) {
				return rule.Type
			}
		}
	}
	return SourceOther
}

func (s *Scorer) distinctSourceTypes(docs []Descriptor) map[SourceType]struct{} {
	types := make(map[SourceType]struct{}, 4)
	for _, doc := range docs {
		types[s.cfg.sourceType(doc.Filename)] = struct{}{}
	}
	return types
}

// sizeAdjustment rewards comprehensive documents and penalizes fragments.
func sizeAdjustment(sizeBytes int64) float64 {
	switch {
	case sizeBytes > sizeLarge:
		return sizeBonusLarge
	case sizeBytes > sizeMedium:
		return sizeBonusMedium
	case sizeBytes < sizeSmall:
		return sizeSmallPenalty
	default:
		return 0
	}
}

// Validate checks that the weight vector still sums to 1.0. Overrides that
// break the sum would silently rescale the whole model.
func (w Weights) Validate() error {
	sum := w.Credibility + w.Consistency + w.Triangulation + w.Temporal + w.Diversity
	if math.Abs(sum-1.0) > 1e-9 {
		return &WeightSumError{Sum: sum}
	}
	for _, v := range []float64{w.Credibility, w.Consistency, w.Triangulation, w.Temporal, w.Diversity} {
		if v < 0 {
			return &WeightSumError{Sum: sum, Negative: true}
		}
	}
	return nil
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
