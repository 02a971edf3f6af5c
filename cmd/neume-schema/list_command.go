package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/neume-network/schema"
)

func newListCommand(_ *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:         "list",
		Short:       "List the available definitions",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := schema.Entries()
			rows := make([][]string, 0, len(entries))
			for _, e := range entries {
				rows = append(rows, []string{e.Name, e.Description})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Name", "Description"}, rows, nil))
			return nil
		},
	}
}
