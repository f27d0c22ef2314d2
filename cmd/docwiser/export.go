package main

import (
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/mmynk/docwiser/internal/render"
)

var (
	exportUser   string
	exportIndex  int
	exportFormat string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a stored document as PDF or HTML",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := newApp(ctx, cfg, logger, prometheus.NewRegistry())
		if err != nil {
			return err
		}
		defer a.Close()

		artifact, err := a.service.Export(ctx, exportUser, exportIndex, exportFormat)
		if err != nil {
			return fmt.Errorf("export document %d of %s: %w", exportIndex, exportUser, err)
		}

		out := exportOut
		if out == "" {
			out = artifact.Filename
		}
		if err := os.WriteFile(out, artifact.Body, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", out, err)
		}
		logger.Info("Document exported", "user_id", exportUser, "index", exportIndex, "path", out, "bytes", len(artifact.Body))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportUser, "user", "u", "", "User id")
	exportCmd.Flags().IntVarP(&exportIndex, "index", "i", 0, "History index (see `docwiser history`)")
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", render.FormatPDF, "Output format: pdf or html")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output file (default <export name>.<format>)")
	_ = exportCmd.MarkFlagRequired("user")
	rootCmd.AddCommand(exportCmd)
}
