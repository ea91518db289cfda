package cli

import (
	"github.com/spf13/cobra"

	"github.com/aalvaropc/numutil/internal/domain"
)

func tableCmd(gf *globalFlags) *cobra.Command {
	var from, to, workers int
	var format string

	c := &cobra.Command{
		Use:   "table <fib|fib2|fact>",
		Short: "Evaluate a function over an inclusive range of inputs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fn, err := domain.ParseFunction(args[0])
			if err != nil {
				return err
			}
			if err := checkFormat(format, formatPretty, formatPlain, formatJSON); err != nil {
				return err
			}

			app, cleanup, err := loadApp(gf, true)
			if err != nil {
				return err
			}
			defer func() { _ = cleanup() }()

			tbl, err := app.tabulate(workers).Execute(cmd.Context(), fn, from, to)
			if err != nil {
				return err
			}
			return printTable(cmd.OutOrStdout(), tbl, format)
		},
	}

	c.Flags().IntVar(&from, "from", 0, "First n (inclusive)")
	c.Flags().IntVar(&to, "to", 10, "Last n (inclusive)")
	c.Flags().IntVar(&workers, "workers", 0, "Concurrent computations (default from config, 4)")
	c.Flags().StringVar(&format, "format", formatPretty, "Output format: pretty|plain|json")
	return c
}
