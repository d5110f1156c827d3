package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wesleyorama2/bigo/internal/report"
)

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <report.json> <jsonpath>",
		Short: "Query a saved JSON report",
		Long: `Query a report written by "bigo run --output report.json".

Examples:
  bigo inspect report.json '$.results[2].stats.calls'
  bigo inspect report.json 'results.#(label=="fib_rec_naive").stats'`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := report.InspectFile(args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}
}
