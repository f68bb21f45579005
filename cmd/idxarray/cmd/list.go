package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [prefix]",
		Short: "List tables in the store",
		Long:  "List all tables in the store, optionally filtered by prefix.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prefix := ""
			if len(args) > 0 {
				prefix = args[0]
			}

			s, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}
			names, err := s.List(cmd.Context(), prefix)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, name := range names {
				fmt.Fprintln(out, name)
			}
			if len(names) == 0 {
				fmt.Fprintln(out, "(no tables)")
			}
			return nil
		},
	}
}
