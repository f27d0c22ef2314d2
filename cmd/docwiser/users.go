package main

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/mmynk/docwiser/internal/models"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "List the users stored for the configured document type",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := newApp(ctx, cfg, logger, prometheus.NewRegistry())
		if err != nil {
			return err
		}
		defer a.Close()

		ids, err := a.service.Users(ctx)
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			fmt.Println("No users.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "USER\tDOCUMENTS")
		for _, id := range ids {
			docs, err := a.service.Documents(ctx, id)
			switch {
			case errors.Is(err, models.ErrSchemaVersion):
				fmt.Fprintf(w, "%s\t(newer schema)\n", id)
			case err != nil:
				return fmt.Errorf("history of %s: %w", id, err)
			default:
				fmt.Fprintf(w, "%s\t%d\n", id, len(docs))
			}
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(usersCmd)
}
