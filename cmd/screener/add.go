package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"OmegaScreen/internal/screener"
)

// newAddCmd registers a manually scored asset: the operator supplies all
// seven sub-scores, so the asset is created Complete with its omega score.
func newAddCmd() *cobra.Command {
	var in screener.ManualInput

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a manually scored asset",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, st, err := openService()
			if err != nil {
				return err
			}
			defer st.Close()

			asset, err := svc.CreateManual(in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created asset %s\n", asset.ID)
			fmt.Fprint(cmd.OutOrStdout(), formatScores(&asset))
			return nil
		},
	}

	cmd.Flags().StringVar(&in.Name, "name", "", "asset name")
	cmd.Flags().StringVar(&in.Ticker, "ticker", "", "ticker symbol")
	cmd.Flags().StringVar(&in.Category, "category", "", "sector category label")
	cmd.Flags().Float64Var(&in.SectorStrength, "sector-strength", 5, "sector strength (1-10)")
	cmd.Flags().Float64Var(&in.ValueProposition, "value-proposition", 5, "value proposition (1-10)")
	cmd.Flags().Float64Var(&in.BackingTeam, "backing-team", 5, "backing & team (1-10)")
	cmd.Flags().Float64Var(&in.ValuationPotential, "valuation-potential", 5, "valuation potential (1-10)")
	cmd.Flags().Float64Var(&in.TokenUtility, "token-utility", 5, "token utility (1-10)")
	cmd.Flags().Float64Var(&in.SupplyRisk, "supply-risk", 5, "supply risk (1-10)")
	cmd.Flags().Float64Var(&in.DataSignal, "data-signal", 5, "data signal (1-10)")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}
