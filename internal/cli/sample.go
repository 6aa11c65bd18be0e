package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/scaler/dataset"
)

func newSampleCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Emit the built-in sample P&L dataset",
		RunE: func(cmd *cobra.Command, args []string) error {
			if out == "" {
				fmt.Fprint(cmd.OutOrStdout(), dataset.Sample())
				return nil
			}
			return os.WriteFile(out, []byte(dataset.Sample()), 0644)
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Write the sample to a file instead of stdout")

	return cmd
}
