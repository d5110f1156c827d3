package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wesleyorama2/bigo/internal/suite"
)

func newPlanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Print the rows a run would produce, without running them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadSuiteConfig(cmd)
			if err != nil {
				return err
			}

			tree, err := suite.Plan(cfg)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), tree.String())
			return nil
		},
	}

	addSuiteFlags(cmd)
	return cmd
}
