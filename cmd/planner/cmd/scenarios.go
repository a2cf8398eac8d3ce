package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ougirez/workforce-planner/internal/pkg/config"
)

var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "List the configured scenarios and their demand multipliers",
	RunE: func(cmd *cobra.Command, _ []string) error {
		engine, err := config.NewEngine()
		if err != nil {
			return err
		}

		for _, sc := range engine.Scenarios() {
			fmt.Fprintf(cmd.OutOrStdout(), "%-24s %.2f\n", sc.Kind, sc.Multiplier)
		}
		return nil
	},
}
