package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/rushteam/basketkit"
	"github.com/rushteam/basketkit/core"
)

func recommendCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "recommend <file.csv>",
		Short: "Run the recommendation pipeline once on a local CSV",
		Args:  cobra.ExactArgs(1),
		PreRunE: bindFlags(map[string]string{
			"mining.country":       "country",
			"mining.min_support":   "min-support",
			"mining.min_threshold": "min-threshold",
			"mining.metric":        "metric",
			"mining.top_n":         "top",
			"pipeline.file":        "pipeline",
		}),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := buildPipeline()
			if err != nil {
				return fmt.Errorf("failed to build pipeline: %w", err)
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", args[0], err)
			}
			defer f.Close()

			rctx := &core.RecommendContext{RequestID: uuid.NewString(), Source: filepath.Base(args[0])}
			res, err := basketkit.Run(cmd.Context(), p, rctx, f)
			if err != nil {
				return fmt.Errorf("error processing file: %w", err)
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			}
			return printResult(cmd.OutOrStdout(), res)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	cmd.Flags().String("country", core.DefaultCountry, "only keep rows from this country")
	cmd.Flags().Float64("min-support", core.DefaultMinSupport, "minimum itemset support")
	cmd.Flags().Float64("min-threshold", core.DefaultMinThreshold, "minimum rule metric value")
	cmd.Flags().String("metric", core.MetricConfidence, "rule metric (confidence, support, lift, leverage, conviction)")
	cmd.Flags().Int("top", core.DefaultTopN, "number of recommendations")
	cmd.Flags().String("pipeline", "", "pipeline YAML/JSON file (overrides the flags above)")

	return cmd
}

func printResult(w io.Writer, res *core.Result) error {
	switch res.Status {
	case core.StatusNoItemsets:
		_, err := fmt.Fprintln(w, "No frequent itemsets found. Try adjusting the dataset.")
		return err
	case core.StatusNoRules:
		_, err := fmt.Fprintln(w, "No association rules generated. Adjust support or confidence.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RULE\tCONFIDENCE")
	for _, rec := range res.Recommendations {
		fmt.Fprintf(tw, "%s\t%.2f\n", rec.Rule, rec.Confidence)
	}
	return tw.Flush()
}
