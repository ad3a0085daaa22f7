package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pthm/mdui"
)

var (
	version = "dev"
	commit  = "none"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "mdui %s (commit %s, MDUI %s)\n", version, commit, mdui.Version)
			return nil
		},
	}
}
