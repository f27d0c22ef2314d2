package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

var (
	historyUser string
	historyJSON bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List the documents generated by a user",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := newApp(ctx, cfg, logger, prometheus.NewRegistry())
		if err != nil {
			return err
		}
		defer a.Close()

		docs, err := a.service.Documents(ctx, historyUser)
		if err != nil {
			return fmt.Errorf("history of %s: %w", historyUser, err)
		}

		if historyJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			return encoder.Encode(docs)
		}

		if len(docs) == 0 {
			fmt.Println("No documents.")
			return nil
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "INDEX\tDATE\tITEMS\tSUPPLY\tTAX\tAMOUNT\tID")
		for i, d := range docs {
			fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%s\t%s\t%s\n",
				i,
				a.formatter.Date(d.CreatedAt),
				len(d.Items),
				a.formatter.Number(d.Totals.Supply),
				a.formatter.Number(d.Totals.Tax),
				a.formatter.Number(d.Totals.Amount),
				d.ID,
			)
		}
		return w.Flush()
	},
}

func init() {
	historyCmd.Flags().StringVarP(&historyUser, "user", "u", "", "User id")
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "Output as JSON")
	_ = historyCmd.MarkFlagRequired("user")
	rootCmd.AddCommand(historyCmd)
}
