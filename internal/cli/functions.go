package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/numutil/internal/domain"
)

var functionSummaries = map[domain.Function]string{
	domain.FuncFib:  "n-th Fibonacci number, naive recursion (exponential time)",
	domain.FuncFib2: "n-th Fibonacci number, iterative accumulator pair",
	domain.FuncFact: "n! by iterative multiplication",
}

func functionsCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "functions",
		Short: "Inspect the available functions",
	}

	c.AddCommand(functionsListCmd())
	return c
}

func functionsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List functions",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			w := cmd.OutOrStdout()
			for _, fn := range domain.Functions() {
				fmt.Fprintf(w, "- %-5s %s\n", fn, functionSummaries[fn])
			}
		},
	}
}
