// Package cmd holds the planner command line.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ougirez/workforce-planner/internal/pkg/config"
	"github.com/ougirez/workforce-planner/internal/pkg/constants"
	"github.com/ougirez/workforce-planner/internal/pkg/logger"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "planner",
	Short: "Workforce capacity and hiring scenario planner",
	Long: `planner compares regional workforce capacity against scenario demand
and turns the shortage into a prioritized hiring plan.

Examples:
  planner serve --config planner.yaml
  planner evaluate --employees 1500 --scenario new_contract_win --horizon 12
  planner evaluate --population 340000 --skills "Tower Climbing,RF Engineering" --format table`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(evaluateCmd)
	rootCmd.AddCommand(scenariosCmd)
}

func initConfig() {
	if err := config.Init(cfgFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if verbose {
		viper.Set(constants.ViperLogLevelKey, "debug")
	}

	err := logger.Init(logger.Config{
		Level:  viper.GetString(constants.ViperLogLevelKey),
		Format: viper.GetString(constants.ViperLogFormatKey),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}
