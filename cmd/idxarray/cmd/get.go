package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <name> <index>",
		Short: "Print the value of one slot",
		Long:  "Print the value of one slot. The index may be decimal, hex (0x) or octal (0o).",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}
			t, _, err := loadTable(cmd.Context(), s, args[0], a.v.GetString("type"))
			if err != nil {
				return err
			}
			i, err := parseIndex(args[1], t.Width())
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%v\n", t.Value(i))
			return nil
		},
	}
}
