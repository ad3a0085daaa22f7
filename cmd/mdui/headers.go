package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pthm/mdui"
)

func newHeadersCmd() *cobra.Command {
	flags := &assetFlags{}

	cmd := &cobra.Command{
		Use:   "headers",
		Short: "Print the head elements for an MDUI page",
		Long: `Print the stylesheet, script and style elements a page needs to use MDUI,
one per line, ready to paste into a template's <head>.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := flags.resolve(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, n := range mdui.Headers(file.MDUI()) {
				s, err := mdui.HTMLWithContext(cmd.Context(), n)
				if err != nil {
					return fmt.Errorf("render %s: %w", n.Tag(), err)
				}
				fmt.Fprintln(out, s)
			}
			return nil
		},
	}

	flags.register(cmd.Flags())
	return cmd
}
