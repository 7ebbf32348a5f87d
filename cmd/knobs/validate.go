package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/knobworks/knobs/internal/render"
	"github.com/knobworks/knobs/internal/schema"
)

func newValidateCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Check a parameter document without opening the form",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("validate requires exactly one document path")
			}

			doc, err := schema.ParseDocument(args[0])
			if err != nil {
				return err
			}

			// The same coverage check the form performs at construction.
			if err := render.NewRegistry(nil).Validate(doc.Parameters); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d parameters, %d values, %d colors)\n",
				args[0], len(doc.Parameters), len(doc.Model.ParamValues), len(doc.Model.Colors))
			return nil
		},
	}

	return cmd
}
