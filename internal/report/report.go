// Package report renders comparison results as plain-text deliverables: an
// email-ready investment memo and a full text report.
package report

import (
	"fmt"
	"sort"
	"strings"
	"text/template"
	"time"
	"unicode"
	"unicode/utf8"

	"hlcompare/internal/analysis"
	"hlcompare/internal/compare"
)

var categoryTitles = map[string]string{
	analysis.CategoryInvestmentThesis:        "Investment Thesis",
	analysis.CategoryValuationMetrics:        "Valuation Metrics",
	analysis.CategoryFinancialPerformance:    "Financial Performance",
	analysis.CategoryCompetitivePosition:     "Competitive Position",
	analysis.CategoryRiskFactors:             "Risk Factors",
	analysis.CategoryGrowthDrivers:           "Growth Drivers",
	analysis.CategoryMacroContext:            "Macro Context",
	analysis.CategoryESGFactors:              "ESG Factors",
	analysis.CategoryManagementQuality:       "Management Quality",
	analysis.CategoryPortfolioRecommendation: "Portfolio Recommendation",
}

var memoTemplate = template.Must(template.New("memo").Parse(`Subject: Investment Analysis - {{.Entities}} Comparison

Dear Team,

Please find below our comprehensive investment analysis comparing {{.Entities}}.

EXECUTIVE SUMMARY
=================
{{.Overview}}

RECOMMENDATION: {{.Recommendation}}

OVERALL SCORES
==============
{{range .Scores}}• {{.Entity}}: {{.Confidence}}% confidence
{{end}}
EVIDENCE QUALITY
================
{{.EvidenceSummary}}

This analysis was generated on {{.Date}} using our HL Compare platform.

Best regards,
Harding Loevner Investment Team

---
This analysis is for institutional use only.
`))

type memoScore struct {
	Entity     string
	Confidence int
}

type memoData struct {
	Entities        string
	Overview        string
	Recommendation  string
	Scores          []memoScore
	EvidenceSummary string
	Date            string
}

// EmailMemo renders an email-ready investment memo from a comparison result.
func EmailMemo(result *compare.Result, now time.Time) string {
	scores := make([]memoScore, 0, len(result.Entities))
	for _, entity := range result.Entities {
		scores = append(scores, memoScore{
			Entity:     titleCase(entity),
			Confidence: result.EntityConfidence[entity],
		})
	}

	var b strings.Builder
	err := memoTemplate.Execute(&b, memoData{
		Entities:        entityList(result.Entities),
		Overview:        result.ExecutiveSummary.Overview,
		Recommendation:  result.ExecutiveSummary.KeyRecommendation,
		Scores:          scores,
		EvidenceSummary: result.ExecutiveSummary.EvidenceQualitySummary,
		Date:            now.Format("January 2, 2006"),
	})
	if err != nil {
		// The template and data shape are both fixed at compile time.
		return ""
	}
	return b.String()
}

// RenderText renders the full comparison as a plain-text report, one section
// per analysis category in the canonical order.
func RenderText(result *compare.Result, now time.Time) string {
	var b strings.Builder

	title := strings.ToUpper(entityList(result.Entities))
	b.WriteString("HARDING LOEVNER\n")
	b.WriteString("INVESTMENT COMPARISON ANALYSIS\n\n")
	fmt.Fprintf(&b, "%s\n", title)
	fmt.Fprintf(&b, "Generated: %s\n\n", now.Format("January 2, 2006"))

	b.WriteString("EXECUTIVE SUMMARY\n")
	b.WriteString(rule('=', 17))
	fmt.Fprintf(&b, "Overview: %s\n", result.ExecutiveSummary.Overview)
	fmt.Fprintf(&b, "Key Recommendation: %s\n", result.ExecutiveSummary.KeyRecommendation)
	fmt.Fprintf(&b, "Confidence Level: %s\n", result.ExecutiveSummary.ConfidenceLevel)
	fmt.Fprintf(&b, "Source Consensus: %s\n", result.ExecutiveSummary.SourceConsensus)
	fmt.Fprintf(&b, "Evidence Quality: %s\n\n", result.ExecutiveSummary.EvidenceQualitySummary)

	for _, category := range analysis.Categories() {
		section, ok := result.Comparison[category]
		if !ok {
			continue
		}

		heading := strings.ToUpper(categoryTitles[category])
		b.WriteString(heading + "\n")
		b.WriteString(rule('=', len(heading)))

		for _, entity := range sortedEntities(section.Entities) {
			ea := section.Entities[entity]
			fmt.Fprintf(&b, "%s Analysis\n", titleCase(entity))
			fmt.Fprintf(&b, "%s\n", ea.Analysis)
			fmt.Fprintf(&b, "Confidence Score: %d%%\n", ea.Confidence)
			if ea.EvidenceQuality != nil {
				fmt.Fprintf(&b, "Evidence Quality: %.1f (%s)\n",
					ea.EvidenceQuality.CompositeScore, ea.EvidenceQuality.QualityRating)
			}
			b.WriteString("\n")
		}

		fmt.Fprintf(&b, "Conclusion: %s\n\n", section.Conclusion)
	}

	overview := result.DocumentAnalysis
	b.WriteString("DOCUMENT ANALYSIS\n")
	b.WriteString(rule('=', 17))
	fmt.Fprintf(&b, "Documents Analyzed: %d\n", overview.TotalDocuments)
	if len(overview.DocumentsProcessed) > 0 {
		fmt.Fprintf(&b, "Documents: %s\n", strings.Join(overview.DocumentsProcessed, ", "))
	}
	fmt.Fprintf(&b, "Overall Evidence Quality: %.1f (%s)\n",
		overview.EvidenceQualityOverview.Score,
		overview.EvidenceQualityOverview.Rating)

	return b.String()
}

func entityList(entities []string) string {
	if len(entities) == 0 {
		return ""
	}
	titled := make([]string, len(entities))
	for i, e := range entities {
		titled[i] = titleCase(e)
	}
	return strings.Join(titled, " vs ")
}

// titleCase uppercases the first letter of each space-separated word.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

func sortedEntities(m map[string]compare.EntityAnalysis) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func rule(ch byte, n int) string {
	return strings.Repeat(string(ch), n) + "\n"
}
