package cli

import (
	"github.com/spf13/cobra"

	"github.com/aalvaropc/numutil/internal/domain"
	"github.com/aalvaropc/numutil/internal/ports"
)

func evalCmd(gf *globalFlags) *cobra.Command {
	var format string
	var save bool

	c := &cobra.Command{
		Use:   "eval <fib|fib2|fact> <n>",
		Short: "Evaluate one function for one input",
		Long:  "Evaluate one function for one input. Pass negative inputs after --, e.g. `numutil eval fib -- -3`.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fn, err := domain.ParseFunction(args[0])
			if err != nil {
				return err
			}
			n, err := parseN("n", args[1])
			if err != nil {
				return err
			}
			if err := checkFormat(format, formatPlain, formatJSON); err != nil {
				return err
			}

			app, cleanup, err := loadApp(gf, true)
			if err != nil {
				return err
			}
			defer func() { _ = cleanup() }()

			var store ports.EvaluationStore
			if save {
				store = app.store()
			}

			ev, err := app.evaluate(store).Execute(cmd.Context(), fn, n)
			if err != nil {
				return err
			}
			return printEvaluation(cmd.OutOrStdout(), ev, format)
		},
	}

	c.Flags().StringVar(&format, "format", formatPlain, "Output format: plain|json")
	c.Flags().BoolVar(&save, "save", false, "Save an evaluation artifact under the store dir (default runs/)")
	return c
}
