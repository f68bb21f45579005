package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func (a *app) newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <name>",
		Short: "Show the snapshot header of a table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}
			info, err := s.Stat(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "version\t%d\n", info.Version)
			fmt.Fprintf(w, "width\t%d\n", info.Width)
			fmt.Fprintf(w, "slots\t%d\n", info.Slots())
			fmt.Fprintf(w, "codec\t%s\n", info.Codec)
			fmt.Fprintf(w, "compression\t%s\n", info.Compression)
			fmt.Fprintf(w, "raw_size\t%d\n", info.RawSize)
			fmt.Fprintf(w, "stored_size\t%d\n", info.StoredSize)
			fmt.Fprintf(w, "checksum\t0x%08x\n", info.Checksum)
			return w.Flush()
		},
	}
}
