package cmd

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) newDumpCmd() *cobra.Command {
	var nonzero bool

	cmd := &cobra.Command{
		Use:   "dump <name>",
		Short: "Print every slot as index and value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}
			t, _, err := loadTable(cmd.Context(), s, args[0], a.v.GetString("type"))
			if err != nil {
				return err
			}

			w := bufio.NewWriter(cmd.OutOrStdout())
			for i := range t.Len() {
				v := t.Value(i)
				if nonzero && isZero(v) {
					continue
				}
				fmt.Fprintf(w, "%d\t%v\n", i, v)
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&nonzero, "nonzero", false, "skip slots holding the zero value")
	return cmd
}
