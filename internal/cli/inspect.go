package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newInspectCmd(rc *RootConfig) *cobra.Command {
	var (
		input     string
		delimiter string
	)

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Normalize the input and report what was detected, without calculating",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(rc)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("input") {
				cfg.Input.Path = input
			}
			if cmd.Flags().Changed("delimiter") {
				cfg.Input.Delimiter = delimiter
			}

			res, err := loadInput(cfg)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Delimiter:   %s\n", delimiterName(res.Delimiter))
			fmt.Fprintf(w, "Header:      %v\n", res.HasHeader)
			fmt.Fprintf(w, "Valid rows:  %d\n", len(res.Observations))
			if n := len(res.Observations); n > 0 {
				fmt.Fprintf(w, "First date:  %s\n", res.Observations[0].Date.Format("2006-01-02"))
				fmt.Fprintf(w, "Last date:   %s\n", res.Observations[n-1].Date.Format("2006-01-02"))
			}
			if len(res.Warnings) > 0 {
				fmt.Fprintf(w, "Dropped rows:\n")
				for _, warn := range res.Warnings {
					fmt.Fprintf(w, "  row %d: %s\n", warn.Row, warn.Reason)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "-", "Delimited P&L file ('-' for stdin; .gz/.xz/.zip accepted)")
	cmd.Flags().StringVar(&delimiter, "delimiter", "", "Delimiter override: comma|tab|semicolon (default auto-detect)")

	return cmd
}

func delimiterName(d rune) string {
	switch d {
	case '\t':
		return "tab"
	case ';':
		return "semicolon"
	case ',':
		return "comma"
	}
	return fmt.Sprintf("%q", d)
}
