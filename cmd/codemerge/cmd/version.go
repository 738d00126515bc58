package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/viant/codemerge/repository"
)

func newVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "codemerge %s (document format %s)\n", version, repository.Version)
			return err
		},
	}
}
