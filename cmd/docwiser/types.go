package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mmynk/docwiser/internal/models"
)

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List the available document types",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		types, err := models.LoadDocTypes(cfg.Document.TypesFile)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "KEY\tTITLE\tSCOPE\tDOCUMENTS\tSTAMP\tFIELDS\t")
		for _, key := range types.Keys() {
			d := types[key]
			active := ""
			if key == cfg.Document.Type {
				active = "*"
			}
			fmt.Fprintf(w, "%s%s\t%s\t%s\t%s\t%t\t%d\t\n",
				d.Key, active, d.Title, d.Scope, d.DocumentsKey, d.Stamp,
				len(d.Supplier)+len(d.Recipient)+len(d.Header),
			)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(typesCmd)
}
