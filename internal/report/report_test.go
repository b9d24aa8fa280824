package report

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hlcompare/internal/analysis"
	"hlcompare/internal/compare"
	"hlcompare/internal/evidence"
)

func sampleResult() *compare.Result {
	return &compare.Result{
		Comparison: map[string]compare.CategoryResult{
			analysis.CategoryInvestmentThesis: {
				Conclusion: "Both names warrant continued coverage.",
				Entities: map[string]compare.EntityAnalysis{
					"apple": {
						Analysis:   "Premium ecosystem with durable services growth.",
						Confidence: 95,
						EvidenceQuality: &evidence.Result{
							CompositeScore: 82.4,
							QualityRating:  evidence.RatingGood,
						},
					},
					"meta": {
						Analysis:   "Ad platform scale with heavy AI capex.",
						Confidence: 88,
					},
				},
			},
		},
		DocumentAnalysis: compare.DocumentAnalysis{
			TotalDocuments:     2,
			DocumentsProcessed: []string{"AAPL_10K.pdf", "META_10K.pdf"},
			EvidenceQualityOverview: evidence.Overall{
				Score:  78.5,
				Rating: evidence.RatingGood,
			},
		},
		ExecutiveSummary: compare.ExecutiveSummary{
			Overview:               "Comprehensive analysis of apple versus meta across investment criteria.",
			KeyRecommendation:      "OVERWEIGHT APPLE",
			ConfidenceLevel:        "High",
			SourceConsensus:        "85% agreement across sources",
			EvidenceQualitySummary: "Good evidence quality (78.5/100)",
		},
		DocumentsAnalyzed: 2,
		Entities:          []string{"apple", "meta"},
		EntityConfidence:  map[string]int{"apple": 95, "meta": 88},
	}
}

var reportDate = time.Date(2025, time.March, 14, 9, 0, 0, 0, time.UTC)

func TestEmailMemo(t *testing.T) {
	memo := EmailMemo(sampleResult(), reportDate)

	assert.True(t, strings.HasPrefix(memo, "Subject: Investment Analysis - Apple vs Meta Comparison"))
	assert.Contains(t, memo, "RECOMMENDATION: OVERWEIGHT APPLE")
	assert.Contains(t, memo, "• Apple: 95% confidence")
	assert.Contains(t, memo, "• Meta: 88% confidence")
	assert.Contains(t, memo, "Good evidence quality (78.5/100)")
	assert.Contains(t, memo, "generated on March 14, 2025")
	assert.Contains(t, memo, "Harding Loevner Investment Team")
	assert.Contains(t, memo, "for institutional use only")
}

func TestRenderText(t *testing.T) {
	out := RenderText(sampleResult(), reportDate)

	require.Contains(t, out, "HARDING LOEVNER")
	assert.Contains(t, out, "APPLE VS META")
	assert.Contains(t, out, "Generated: March 14, 2025")

	assert.Contains(t, out, "EXECUTIVE SUMMARY")
	assert.Contains(t, out, "Key Recommendation: OVERWEIGHT APPLE")

	assert.Contains(t, out, "INVESTMENT THESIS")
	assert.Contains(t, out, "Apple Analysis")
	assert.Contains(t, out, "Confidence Score: 95%")
	assert.Contains(t, out, "Evidence Quality: 82.4 (Good)")
	assert.Contains(t, out, "Conclusion: Both names warrant continued coverage.")

	// Entities within a category render alphabetically.
	appleIdx := strings.Index(out, "Apple Analysis")
	metaIdx := strings.Index(out, "Meta Analysis")
	assert.Less(t, appleIdx, metaIdx)

	assert.Contains(t, out, "DOCUMENT ANALYSIS")
	assert.Contains(t, out, "Documents Analyzed: 2")
	assert.Contains(t, out, "Overall Evidence Quality: 78.5 (Good)")

	// Categories absent from the result are skipped, not rendered empty.
	assert.NotContains(t, out, "VALUATION METRICS")
}

func TestRenderText_NoEvidenceBlockWhenMissing(t *testing.T) {
	result := sampleResult()
	out := RenderText(result, reportDate)

	metaSection := out[strings.Index(out, "Meta Analysis"):]
	metaSection = metaSection[:strings.Index(metaSection, "Conclusion:")]
	assert.NotContains(t, metaSection, "Evidence Quality:")
}

func TestTitleCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"apple", "Apple"},
		{"acme corp", "Acme Corp"},
		{"électricité de france", "Électricité De France"},
		{"ørsted", "Ørsted"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, titleCase(tt.in), "in=%q", tt.in)
	}
}
