package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"hlcompare/internal/evidence"
)

func newScoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score evidence quality for a set of document descriptors",
		Long: `Score evidence quality from document names and sizes without uploading
anything. Each --doc takes the form name:bytes, for example:

  hlcompare score --entity apple --doc AAPL_10K_annual.pdf:6291456 --doc analyst_note.pdf:204800`,
		RunE: runScore,
	}
	cmd.Flags().StringArray("doc", nil, "Document descriptor as name:bytes (repeatable)")
	cmd.Flags().String("entity", "", "Entity the documents describe")
	cmd.Flags().String("category", "", "Analysis category for category-sensitive scoring")
	cmd.Flags().Int("base-confidence", 70, "Base confidence to adjust")
	cmd.Flags().Bool("breakdown", false, "Print the five sub-scores as well")
	return cmd
}

func runScore(cmd *cobra.Command, args []string) error {
	setupLogging(cmd)

	rawDocs, _ := cmd.Flags().GetStringArray("doc")
	docs, err := parseDescriptors(rawDocs)
	if err != nil {
		return err
	}

	entity, _ := cmd.Flags().GetString("entity")
	category, _ := cmd.Flags().GetString("category")
	baseConfidence, _ := cmd.Flags().GetInt("base-confidence")
	breakdown, _ := cmd.Flags().GetBool("breakdown")

	scorer := evidence.NewScorer(nil)
	result := scorer.Score(entity, category, docs, baseConfidence)

	fmt.Printf("Evidence Quality Score: %.1f (%s)\n", result.CompositeScore, result.QualityRating)
	fmt.Printf("Adjusted Confidence:    %d%% (base %d%%)\n", result.AdjustedConfidence, baseConfidence)
	for _, flag := range result.ReliabilityFlags {
		fmt.Printf("  %s\n", flag)
	}

	if breakdown {
		out, err := json.MarshalIndent(result.SubScores, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, string(out))
	}
	return nil
}

func parseDescriptors(raw []string) ([]evidence.Descriptor, error) {
	docs := make([]evidence.Descriptor, 0, len(raw))
	for _, r := range raw {
		idx := strings.LastIndexByte(r, ':')
		if idx <= 0 || idx == len(r)-1 {
			return nil, fmt.Errorf("invalid --doc %q, want name:bytes", r)
		}
		size, err := strconv.ParseInt(r[idx+1:], 10, 64)
		if err != nil || size < 0 {
			return nil, fmt.Errorf("invalid --doc %q, want name:bytes", r)
		}
		docs = append(docs, evidence.Descriptor{Filename: r[:idx], SizeBytes: size})
	}
	return docs, nil
}
