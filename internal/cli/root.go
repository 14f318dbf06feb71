package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCommand runs the server when no subcommand is given.
func NewRootCommand() *cobra.Command {
	serve := NewCmdServe()

	cmd := &cobra.Command{
		Use:           "covid-estimator",
		Short:         "covid-estimator projects the impact of an outbreak from a regional report.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serve.RunE,
	}
	cmd.AddCommand(serve)
	cmd.AddCommand(NewCmdEstimate())

	return cmd
}
