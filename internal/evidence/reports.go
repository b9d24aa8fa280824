package evidence

import (
	"fmt"
	"sort"
)

// Overall summarizes evidence quality across a whole document set without
// the per-category weighting: an unweighted mean of credibility, consistency
// (scored against the neutral "overall" category), triangulation, and
// temporal reliability.
type Overall struct {
	Score         float64 `json:"overall_score"`
	Rating        Rating  `json:"rating"`
	DocumentCount int     `json:"document_count"`
	Credibility   float64 `json:"credibility_score"`
	Consistency   float64 `json:"consistency_score"`
	Triangulation float64 `json:"triangulation_score"`
	Temporal      float64 `json:"temporal_score"`
}

// OverallQuality computes the document-set-wide quality summary shown on the
// comparison overview. An empty set reports a fixed {50.0, Limited}.
func (s *Scorer) OverallQuality(docs []Descriptor) Overall {
	if len(docs) == 0 {
		return Overall{Score: 50.0, Rating: RatingLimited}
	}

	credibility := s.SourceCredibility(docs)
	consistency := s.ConsistencyScore("", "overall", docs)
	triangulation := s.TriangulationScore(docs)
	temporal := s.TemporalReliability(docs)

	score := round1((credibility + consistency + triangulation + temporal) / 4)

	return Overall{
		Score:         score,
		Rating:        s.cfg.ratingFor(score),
		DocumentCount: len(docs),
		Credibility:   round1(credibility),
		Consistency:   round1(consistency),
		Triangulation: round1(triangulation),
		Temporal:      round1(temporal),
	}
}

// ConsensusPercentage estimates how much the sources agree. A single source
// trivially agrees with itself.
func (s *Scorer) ConsensusPercentage(docs []Descriptor) int {
	if len(docs) <= 1 {
		return 100
	}

	consensus := 75
	if len(docs) >= 3 {
		consensus += 10
	}
	if consensus > 95 {
		consensus = 95
	}
	return consensus
}

// ReliabilityReport breaks source reliability down by source type. Official
// filings count as high reliability, news items require verification, and
// everything else sits in between.
type ReliabilityReport struct {
	OverallRating        Rating             `json:"overall_score"`
	CredibilityScore     float64            `json:"credibility_score"`
	SourceDistribution   map[SourceType]int `json:"source_distribution"`
	HighReliability      int                `json:"high_reliability"`
	MediumReliability    int                `json:"medium_reliability"`
	RequiresVerification int                `json:"requires_verification"`
	TotalSources         int                `json:"total_sources"`
}

// SourceReliability produces the detailed per-source-type reliability
// breakdown. An empty set yields a Limited rating with an empty distribution.
func (s *Scorer) SourceReliability(docs []Descriptor) ReliabilityReport {
	report := ReliabilityReport{
		OverallRating:      RatingLimited,
		SourceDistribution: make(map[SourceType]int),
	}
	if len(docs) == 0 {
		return report
	}

	credibility := s.SourceCredibility(docs)
	for _, doc := range docs {
		report.SourceDistribution[s.cfg.sourceType(doc.Filename)]++
	}

	report.OverallRating = s.cfg.ratingFor(credibility)
	report.CredibilityScore = round1(credibility)
	report.HighReliability = report.SourceDistribution[SourceOfficial]
	report.MediumReliability = report.SourceDistribution[SourceAnalyst] + report.SourceDistribution[SourceOther]
	report.RequiresVerification = report.SourceDistribution[SourceNews]
	report.TotalSources = len(docs)
	return report
}

// CrossReference records how one document relates to the compared entities.
type CrossReference struct {
	Document         string            `json:"document"`
	CrossReferences  int               `json:"cross_references"`
	EntityMentions   map[string]string `json:"entity_mentions"`
	EvidenceQuality  Rating            `json:"evidence_quality"`
	CredibilityScore float64           `json:"credibility_score"`
}

// CrossReferences generates per-document cross-reference entries for an
// entity pair. Mention counts are deterministic position-based placeholders;
// no document content is read.
func (s *Scorer) CrossReferences(entityA, entityB string, docs []Descriptor) []CrossReference {
	refs := make([]CrossReference, 0, len(docs))
	for i, doc := range docs {
		score := s.SourceCredibility([]Descriptor{doc})
		refs = append(refs, CrossReference{
			Document:        doc.Filename,
			CrossReferences: minInt(len(docs)-1, 3),
			EntityMentions: map[string]string{
				entityA: fmt.Sprintf("Found in %d sections", minInt(i+2, 5)),
				entityB: fmt.Sprintf("Found in %d sections", minInt(i+1, 4)),
			},
			EvidenceQuality:  s.cfg.ratingFor(score),
			CredibilityScore: round1(score),
		})
	}
	return refs
}

// SupportingSources returns document names ranked by per-document
// credibility, highest first, capped at limit (3 when limit is not positive).
// Ties keep their upload order.
func (s *Scorer) SupportingSources(docs []Descriptor, limit int) []string {
	if len(docs) == 0 {
		return []string{"no supporting documents provided"}
	}
	if limit <= 0 {
		limit = 3
	}

	type rankedSource struct {
		name  string
		score float64
	}
	ranked := make([]rankedSource, 0, len(docs))
	for _, doc := range docs {
		ranked = append(ranked, rankedSource{
			name:  doc.Filename,
			score: s.SourceCredibility([]Descriptor{doc}),
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })

	if limit > len(ranked) {
		limit = len(ranked)
	}
	names := make([]string, 0, limit)
	for _, src := range ranked[:limit] {
		names = append(names, src.name)
	}
	return names
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
