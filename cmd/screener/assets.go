package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func newAssetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "assets",
		Short: "List screened assets and their scores",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, st, err := openService()
			if err != nil {
				return err
			}
			defer st.Close()

			assets := svc.List()
			if len(assets) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no assets tracked yet")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tTICKER\tCATEGORY\tMARKET CAP\tNARR\tTOKE\tDATA\tOMEGA\tSTATE")
			for _, a := range assets {
				mcap := "-"
				if a.MarketCap != nil {
					mcap = "$" + humanize.CommafWithDigits(*a.MarketCap, 0)
				}
				data := "-"
				if a.DataScore != nil {
					data = fmt.Sprintf("%.2f", *a.DataScore)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.2f\t%.2f\t%s\t%s\t%s\n",
					a.Name, a.Ticker, a.Category, mcap,
					a.NarrativeScore, a.TokenomicsScore, data,
					a.OmegaDisplay(), a.State)
			}
			return w.Flush()
		},
	}
}
