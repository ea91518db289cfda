package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/numutil/internal/domain"
)

func verifyCmd(gf *globalFlags) *cobra.Command {
	var maxN int
	var verbose bool

	c := &cobra.Command{
		Use:   "verify",
		Short: "Cross-check fib against fib2 and known reference values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, cleanup, err := loadApp(gf, true)
			if err != nil {
				return err
			}
			defer func() { _ = cleanup() }()

			v, err := app.verify().Execute(cmd.Context(), maxN)
			if err != nil {
				return err
			}

			printVerification(cmd.OutOrStdout(), v, verbose)

			if failed := v.Failed(); len(failed) > 0 {
				return &domain.OpError{
					Op:   "cli.verify",
					Kind: domain.KindMismatch,
					Err:  fmt.Errorf("%d failed check(s): %w", len(failed), domain.ErrMismatch),
				}
			}
			return nil
		},
	}

	c.Flags().IntVar(&maxN, "max", 30, "Largest n for the fib/fib2 agreement check")
	c.Flags().BoolVarP(&verbose, "verbose", "v", false, "List every check, not only failures")
	return c
}
