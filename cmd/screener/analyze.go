package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"OmegaScreen/internal/model"
	"OmegaScreen/internal/series"
)

func newAnalyzeCmd() *cobra.Command {
	var assetID string

	cmd := &cobra.Command{
		Use:   "analyze <csv-file>",
		Short: "Run divergence analysis on an exported price/volume-delta series",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			if assetID == "" {
				res, err := series.Analyze(string(data))
				if err != nil {
					return printOutcome(cmd, nil, err)
				}
				return printOutcome(cmd, res, nil)
			}

			svc, st, err := openService()
			if err != nil {
				return err
			}
			defer st.Close()

			res, err := svc.SubmitSeries(assetID, string(data))
			if printErr := printOutcome(cmd, res, err); printErr != nil {
				return printErr
			}
			if err != nil {
				return nil
			}

			asset, err := svc.Get(assetID)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatScores(&asset))
			return nil
		},
	}
	cmd.Flags().StringVar(&assetID, "asset", "", "apply the result to a stored asset id")
	return cmd
}

// printOutcome renders either the analysis result or the rejection. A
// validation rejection is a meaningful outcome, not a CLI failure.
func printOutcome(cmd *cobra.Command, res *model.Analysis, err error) error {
	out := cmd.OutOrStdout()
	if err != nil {
		var ve *series.ValidationError
		if errors.As(err, &ve) {
			fmt.Fprintf(out, "rejected (%s): %s\n", ve.Kind, ve.Detail)
			return nil
		}
		return err
	}

	var b strings.Builder
	b.WriteString("Series analysis\n")
	fmt.Fprintf(&b, "  periods analyzed: %d\n", res.PeriodsAnalyzed)
	fmt.Fprintf(&b, "  price trend:      slope=%.6f r=%.4f\n", res.Price.Slope, res.Price.R)
	fmt.Fprintf(&b, "  cvd trend:        slope=%.6f r=%.4f\n", res.CVD.Slope, res.CVD.R)
	fmt.Fprintf(&b, "  signal:           %s\n", res.Label)
	fmt.Fprintf(&b, "  data score:       %.0f\n", res.DataScore)
	fmt.Fprint(out, b.String())
	return nil
}

func formatScores(a *model.Asset) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Asset %s (%s)\n", a.Name, a.Ticker)
	fmt.Fprintf(&b, "  narrative:  %.2f\n", a.NarrativeScore)
	fmt.Fprintf(&b, "  tokenomics: %.2f\n", a.TokenomicsScore)
	if a.DataScore != nil {
		fmt.Fprintf(&b, "  data:       %.2f\n", *a.DataScore)
	} else {
		b.WriteString("  data:       pending\n")
	}
	fmt.Fprintf(&b, "  omega:      %s [%s]\n", a.OmegaDisplay(), a.State)
	return b.String()
}
