package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"hlcompare/internal/compare"
	"hlcompare/internal/evidence"
	"hlcompare/internal/report"
)

func newCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare [entity]...",
		Short: "Run a comparison from the command line",
		Long: `Compare two or more entities directly, without the API server. Document
descriptors are optional; without them the scorer reports its no-document
defaults. Example:

  hlcompare compare apple microsoft --doc AAPL_10K.pdf:6291456 --format memo`,
		Args: cobra.MinimumNArgs(2),
		RunE: runCompare,
	}
	cmd.Flags().StringArray("doc", nil, "Document descriptor as name:bytes (repeatable)")
	cmd.Flags().String("format", "json", "Output format: json, text, or memo")
	return cmd
}

func runCompare(cmd *cobra.Command, args []string) error {
	setupLogging(cmd)

	rawDocs, _ := cmd.Flags().GetStringArray("doc")
	docs, err := parseDescriptors(rawDocs)
	if err != nil {
		return err
	}
	format, _ := cmd.Flags().GetString("format")

	pipeline := compare.NewPipeline(evidence.NewScorer(nil), nil, log.Logger)
	result, err := pipeline.Run(cmd.Context(), compare.Request{
		Entities:  args,
		Documents: docs,
	})
	if err != nil {
		return err
	}

	switch format {
	case "json":
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, string(out))
	case "text":
		fmt.Fprint(os.Stdout, report.RenderText(result, time.Now()))
	case "memo":
		fmt.Fprint(os.Stdout, report.EmailMemo(result, time.Now()))
	default:
		return fmt.Errorf("unknown format %q, want json, text, or memo", format)
	}
	return nil
}
