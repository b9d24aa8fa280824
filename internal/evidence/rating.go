package evidence

import "fmt"

// Rating is the categorical evidence quality label derived from a score.
type Rating string

const (
	RatingExcellent Rating = "Excellent"
	RatingGood      Rating = "Good"
	RatingModerate  Rating = "Moderate"
	RatingLimited   Rating = "Limited"
	RatingPoor      Rating = "Poor"
)

// Reliability flag strings attached to scoring results.
const (
	FlagLowCredibility      = "⚠️ Low source credibility"
	FlagInconsistentSources = "⚠️ Inconsistent information across sources"
	FlagLimitedConfirmation = "⚠️ Limited independent confirmation"
	FlagNoConcerns          = "✅ No major reliability concerns"
)

// A flag rule watches one named sub-score.
const (
	MetricCredibility   = "credibility"
	MetricConsistency   = "consistency"
	MetricTriangulation = "triangulation"
)

// RatingBand maps a score floor to a rating. Bands are evaluated in order
// and the first band whose floor the score reaches wins, so they must be
// sorted from highest floor to lowest. Boundaries belong to the higher band:
// a score of exactly 85 rates Excellent.
type RatingBand struct {
	Min    float64
	Rating Rating
}

func defaultRatingBands() []RatingBand {
	return []RatingBand{
		{Min: 85, Rating: RatingExcellent},
		{Min: 75, Rating: RatingGood},
		{Min: 65, Rating: RatingModerate},
		{Min: 55, Rating: RatingLimited},
	}
}

// FlagRule emits a warning when the named sub-score falls below a threshold.
type FlagRule struct {
	Metric string
	Below  float64
	Flag   string
}

func defaultFlagRules() []FlagRule {
	return []FlagRule{
		{Metric: MetricCredibility, Below: 60, Flag: FlagLowCredibility},
		{Metric: MetricConsistency, Below: 65, Flag: FlagInconsistentSources},
		{Metric: MetricTriangulation, Below: 60, Flag: FlagLimitedConfirmation},
	}
}

// ratingFor resolves a score against the ordered rating bands. Anything below
// the lowest band is Poor.
func (c *Config) ratingFor(score float64) Rating {
	for _, band := range c.RatingBands {
		if score >= band.Min {
			return band.Rating
		}
	}
	return RatingPoor
}

// flagsFor evaluates the flag rules against the sub-scores. Warning flags are
// independent; when none fire, exactly one positive flag is returned instead.
func (c *Config) flagsFor(sub SubScores) []string {
	var flags []string
	for _, rule := range c.FlagRules {
		if sub.metric(rule.Metric) < rule.Below {
			flags = append(flags, rule.Flag)
		}
	}
	if len(flags) == 0 {
		flags = append(flags, c.PositiveFlag)
	}
	return flags
}

func (s SubScores) metric(name string) float64 {
	switch name {
	case MetricCredibility:
		return s.Credibility
	case MetricConsistency:
		return s.Consistency
	case MetricTriangulation:
		return s.Triangulation
	default:
		return 0
	}
}

// WeightSumError reports a weight vector that no longer sums to 1.0.
type WeightSumError struct {
	Sum      float64
	Negative bool
}

func (e *WeightSumError) Error() string {
	if e.Negative {
		return fmt.Sprintf("evidence weights must be non-negative (sum %.4f)", e.Sum)
	}
	return fmt.Sprintf("evidence weights must sum to 1.0, got %.4f", e.Sum)
}
