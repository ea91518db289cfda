package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/numutil/internal/buildinfo"
	"github.com/aalvaropc/numutil/internal/domain"
)

// defaultN is the input used when numutil runs without a subcommand.
const defaultN = 100

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// globalFlags are shared by every subcommand through persistent flags.
type globalFlags struct {
	config string
	debug  bool
	logDir string
}

func newRootCmd() *cobra.Command {
	gf := &globalFlags{}

	cmd := &cobra.Command{
		Use:          "numutil",
		Short:        "numutil — Fibonacci and factorial with arbitrary precision",
		Long:         "With no arguments numutil prints fib2(100). Config is only read from an explicit --config.",
		Version:      buildinfo.Version,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, cleanup, err := loadApp(gf, false)
			if err != nil {
				return err
			}
			defer func() { _ = cleanup() }()

			ev, err := app.evaluate(nil).Execute(cmd.Context(), domain.FuncFib2, defaultN)
			if err != nil {
				return err
			}
			return printEvaluation(cmd.OutOrStdout(), ev, formatPlain)
		},
	}

	cmd.PersistentFlags().StringVar(&gf.config, "config", "", "Path to numutil.yaml (optional; searched upward from the working directory if omitted)")
	cmd.PersistentFlags().BoolVar(&gf.debug, "debug", false, "enable verbose logging (requires a log dir)")
	cmd.PersistentFlags().StringVar(&gf.logDir, "log-dir", "", "write JSON logs to <dir>/numutil.log")

	cmd.AddCommand(
		evalCmd(gf),
		tableCmd(gf),
		verifyCmd(gf),
		functionsCmd(),
		versionCmd(),
	)
	return cmd
}
