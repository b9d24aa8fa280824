// Package compare orchestrates a full entity comparison: demo analysis
// lookup, evidence quality scoring per entity/category pair, and assembly of
// the wire payload the frontend renders.
package compare

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"hlcompare/internal/analysis"
	"hlcompare/internal/evidence"
)

// ErrTooFewEntities is returned when a request names fewer than two distinct
// entities. It is the pipeline's only failure mode.
var ErrTooFewEntities = errors.New("at least two entities must be specified")

// Request describes one comparison run.
type Request struct {
	Entities  []string
	Documents []evidence.Descriptor
	Query     string
}

// EntityAnalysis is the per-entity cell inside one category.
type EntityAnalysis struct {
	Analysis        string             `json:"analysis"`
	Confidence      int                `json:"confidence"`
	KeyFacts        analysis.FactTable `json:"key_facts"`
	EvidenceQuality *evidence.Result   `json:"evidence_quality"`
	Sources         []string           `json:"sources"`
}

// CategoryResult groups the per-entity analyses for one category with its
// fixed conclusion paragraph.
type CategoryResult struct {
	Conclusion string                    `json:"conclusion"`
	Entities   map[string]EntityAnalysis `json:"entities"`
}

// DocumentAnalysis summarizes the uploaded document set as a whole.
type DocumentAnalysis struct {
	TotalDocuments          int                        `json:"total_documents"`
	DocumentsProcessed      []string                   `json:"documents_processed"`
	CrossReferences         []evidence.CrossReference  `json:"cross_references_found"`
	SourceReliability       evidence.ReliabilityReport `json:"source_reliability"`
	EvidenceQualityOverview evidence.Overall           `json:"evidence_quality_overview"`
}

// ExecutiveSummary is the top-line block of the comparison payload.
type ExecutiveSummary struct {
	Overview               string `json:"overview"`
	KeyRecommendation      string `json:"key_recommendation"`
	ConfidenceLevel        string `json:"confidence_level"`
	SourceConsensus        string `json:"source_consensus"`
	EvidenceQualitySummary string `json:"evidence_quality_summary"`
}

// Result is the complete comparison payload.
type Result struct {
	Comparison        map[string]CategoryResult `json:"comparison"`
	DocumentAnalysis  DocumentAnalysis          `json:"document_analysis"`
	ExecutiveSummary  ExecutiveSummary          `json:"executive_summary"`
	DocumentsAnalyzed int                       `json:"documents_analyzed"`
	Entities          []string                  `json:"entities"`
	EntityConfidence  map[string]int            `json:"entity_confidence"`
}

// Pipeline wires the scorer and the demo metric library into comparison runs.
// It holds no per-run state; a single Pipeline serves concurrent requests.
type Pipeline struct {
	scorer  *evidence.Scorer
	library *analysis.Library
	log     zerolog.Logger
	workers int
}

// NewPipeline creates a comparison pipeline. Nil collaborators select the
// defaults, matching the scorer's own degrade-to-defaults posture.
func NewPipeline(scorer *evidence.Scorer, library *analysis.Library, logger zerolog.Logger) *Pipeline {
	if scorer == nil {
		scorer = evidence.NewScorer(nil)
	}
	if library == nil {
		library = analysis.NewLibrary()
	}
	return &Pipeline{
		scorer:  scorer,
		library: library,
		log:     logger,
		workers: runtime.GOMAXPROCS(0),
	}
}

// Scorer exposes the pipeline's evidence scorer for callers that need
// per-document quality reads outside a full comparison run.
func (p *Pipeline) Scorer() *evidence.Scorer {
	return p.scorer
}

// Run executes one comparison. Entities are normalized and deduplicated;
// scoring fans out per entity since each scoring call is independent.
func (p *Pipeline) Run(ctx context.Context, req Request) (*Result, error) {
	start := time.Now()

	entities := normalizeEntities(req.Entities)
	if len(entities) < 2 {
		return nil, ErrTooFewEntities
	}

	categories := analysis.Categories()

	type entityReport struct {
		byCategory map[string]EntityAnalysis
		confidence int // mean adjusted confidence across categories
	}
	reports := make([]entityReport, len(entities))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)
	for i, entity := range entities {
		i, entity := i, entity
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			byCategory := make(map[string]EntityAnalysis, len(categories))
			total := 0
			for _, category := range categories {
				cell := p.analyzeEntity(entity, category, req.Documents)
				byCategory[category] = cell
				total += cell.Confidence
			}
			reports[i] = entityReport{
				byCategory: byCategory,
				confidence: total / len(categories),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("comparison cancelled: %w", err)
	}

	comparison := make(map[string]CategoryResult, len(categories))
	for _, category := range categories {
		perEntity := make(map[string]EntityAnalysis, len(entities))
		for i, entity := range entities {
			perEntity[entity] = reports[i].byCategory[category]
		}
		comparison[category] = CategoryResult{
			Conclusion: p.library.Conclusion(category),
			Entities:   perEntity,
		}
	}

	entityConfidence := make(map[string]int, len(entities))
	for i, entity := range entities {
		entityConfidence[entity] = reports[i].confidence
	}

	result := &Result{
		Comparison:        comparison,
		DocumentAnalysis:  p.documentAnalysis(entities, req.Documents),
		ExecutiveSummary:  p.executiveSummary(entities, entityConfidence, req.Documents),
		DocumentsAnalyzed: len(req.Documents),
		Entities:          entities,
		EntityConfidence:  entityConfidence,
	}

	p.log.Info().
		Strs("entities", entities).
		Int("documents", len(req.Documents)).
		Dur("elapsed", time.Since(start)).
		Msg("comparison completed")

	return result, nil
}

// analyzeEntity builds one entity/category cell: demo facts plus the
// evidence-quality-adjusted confidence.
func (p *Pipeline) analyzeEntity(entity, category string, docs []evidence.Descriptor) EntityAnalysis {
	profile, known := p.library.Profile(entity)
	if !known {
		p.log.Debug().Str("entity", entity).Msg("entity outside demo dataset, using neutral profile")
	}

	quality := p.scorer.Score(entity, category, docs, profile.BaseConfidence)

	text := ""
	if category == analysis.CategoryInvestmentThesis {
		text = profile.Thesis
	}

	return EntityAnalysis{
		Analysis:        text,
		Confidence:      quality.AdjustedConfidence,
		KeyFacts:        profile.FactsFor(category),
		EvidenceQuality: &quality,
		Sources:         p.scorer.SupportingSources(docs, 3),
	}
}

func (p *Pipeline) documentAnalysis(entities []string, docs []evidence.Descriptor) DocumentAnalysis {
	names := make([]string, 0, len(docs))
	for _, doc := range docs {
		names = append(names, doc.Filename)
	}
	return DocumentAnalysis{
		TotalDocuments:          len(docs),
		DocumentsProcessed:      names,
		CrossReferences:         p.scorer.CrossReferences(entities[0], entities[1], docs),
		SourceReliability:       p.scorer.SourceReliability(docs),
		EvidenceQualityOverview: p.scorer.OverallQuality(docs),
	}
}

// recommendationMargin is the confidence lead one entity needs over the
// runner-up before the summary recommends an overweight.
const recommendationMargin = 5

func (p *Pipeline) executiveSummary(entities []string, confidence map[string]int, docs []evidence.Descriptor) ExecutiveSummary {
	ranked := make([]string, len(entities))
	copy(ranked, entities)
	sort.SliceStable(ranked, func(i, j int) bool { return confidence[ranked[i]] > confidence[ranked[j]] })

	recommendation := "NEUTRAL WEIGHTING"
	if confidence[ranked[0]]-confidence[ranked[1]] > recommendationMargin {
		recommendation = "OVERWEIGHT " + strings.ToUpper(ranked[0])
	}

	total := 0
	for _, entity := range entities {
		total += confidence[entity]
	}

	overall := p.scorer.OverallQuality(docs)

	return ExecutiveSummary{
		Overview:               fmt.Sprintf("Comprehensive analysis of %s across investment criteria.", joinEntities(entities)),
		KeyRecommendation:      recommendation,
		ConfidenceLevel:        fmt.Sprintf("%d%% average adjusted confidence", total/len(entities)),
		SourceConsensus:        fmt.Sprintf("%d%% cross-source consensus", p.scorer.ConsensusPercentage(docs)),
		EvidenceQualitySummary: fmt.Sprintf("Overall evidence quality: %s (%.1f/100)", overall.Rating, overall.Score),
	}
}

// normalizeEntities lowercases, trims, and deduplicates while preserving
// request order.
func normalizeEntities(raw []string) []string {
	seen := make(map[string]struct{}, len(raw))
	entities := make([]string, 0, len(raw))
	for _, r := range raw {
		entity := analysis.Normalize(r)
		if entity == "" {
			continue
		}
		if _, dup := seen[entity]; dup {
			continue
		}
		seen[entity] = struct{}{}
		entities = append(entities, entity)
	}
	return entities
}

func joinEntities(entities []string) string {
	if len(entities) == 2 {
		return entities[0] + " versus " + entities[1]
	}
	return strings.Join(entities, ", ")
}
