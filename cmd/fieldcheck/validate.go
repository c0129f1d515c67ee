package main

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/fieldcheck/pkg/validator"
)

func newValidateCmd() *cobra.Command {
	var typ string
	output := newOutputFormat(outputText)

	cmd := &cobra.Command{
		Use:   "validate --type <tag> <value>",
		Short: "Validate a single value",
		Long: "Validate a single value against a format tag. " +
			"Exits 0 when the value is valid and 1 when it is not.",
		Example: "  fieldcheck validate --type amount 25.50\n" +
			"  fieldcheck validate --type checkbox --output json \"\"",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res := validator.Validate(args[0], typ)
			if err := writeResult(cmd.OutOrStdout(), output.String(), res); err != nil {
				return err
			}
			if !res.Valid {
				return errInvalidValue
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&typ, "type", "t", "", "format tag, see 'fieldcheck types'")
	cmd.Flags().VarP(output, "output", "o", "output format: json, yaml or text")
	_ = cmd.MarkFlagRequired("type")
	return cmd
}
