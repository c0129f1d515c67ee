package main

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/fieldcheck/pkg/validator"
)

func newTypesCmd() *cobra.Command {
	output := newOutputFormat(outputText)

	cmd := &cobra.Command{
		Use:   "types",
		Short: "List supported format tags and their messages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			types := validator.Types()
			entries := make([]typeEntry, 0, len(types))
			for _, t := range types {
				entries = append(entries, typeEntry{Type: t.String(), Message: t.Message()})
			}
			return writeTypes(cmd.OutOrStdout(), output.String(), entries)
		},
	}

	cmd.Flags().VarP(output, "output", "o", "output format: json, yaml or text")
	return cmd
}
