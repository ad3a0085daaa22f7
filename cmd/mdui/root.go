package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "mdui",
		Short:         "mdui builds Material Design UI pages from Go",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newHeadersCmd())
	cmd.AddCommand(newGalleryCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}
