package main

import (
	"github.com/spf13/cobra"

	"github.com/knobworks/knobs/internal/logger"
)

type rootFlags struct {
	verbose bool
	theme   string
}

func newRootCmd(log *logger.Logger) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "knobs",
		Short:         "Knobs edits typed parameter sets through a declarative form",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.theme, "theme", "dark", "Form theme (light or dark)")

	cmd.AddCommand(newEditCmd(flags, log))
	cmd.AddCommand(newValidateCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
