package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) newDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff <a> <b>",
		Short: "Print the indices at which two tables differ",
		Long:  "Print the indices at which two tables of the same width differ, as ranges, followed by the count.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := a.openStore(ctx)
			if err != nil {
				return err
			}

			typ := a.v.GetString("type")
			left, _, err := loadTable(ctx, s, args[0], typ)
			if err != nil {
				return err
			}
			right, _, err := loadTable(ctx, s, args[1], typ)
			if err != nil {
				return err
			}

			bm, err := left.Diff(right)
			if err != nil {
				return fmt.Errorf("diff %s %s: %w", args[0], args[1], err)
			}

			out := cmd.OutOrStdout()
			for _, r := range ranges(bm) {
				fmt.Fprintln(out, r)
			}
			fmt.Fprintf(out, "%d differing slots\n", bm.GetCardinality())
			return nil
		},
	}
}
