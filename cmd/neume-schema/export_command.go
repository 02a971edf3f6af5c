package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/neume-network/schema"
)

func newExportCommand(ctx *commandContext) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export [name]",
		Short: "Export definitions as JSON Schema draft-07",
		Long: "Without a name every definition is written as one bundle keyed by name. " +
			"With a name that definition is written as a standalone document.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := ctx.logger(cmd)
			if err != nil {
				return err
			}

			var data []byte
			if len(args) == 1 {
				data, err = schema.Document(args[0])
			} else {
				data, err = schema.All().MarshalIndent()
			}
			if err != nil {
				return err
			}

			if outPath == "" || outPath == "-" {
				_, err := cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
				return fmt.Errorf("create output directory: %w", err)
			}
			if err := os.WriteFile(outPath, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", outPath, err)
			}
			logger.Info("schema exported", "path", outPath, "bytes", len(data))
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write to file instead of stdout")
	return cmd
}
