// Package cmd provides the CLI commands for fabric-price.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"fabric-price/adapters/catalog"
	"fabric-price/core/determinism"
	"fabric-price/core/output"
	"fabric-price/core/pricing"
	"fabric-price/internal/config"
	"fabric-price/internal/errors"
	"fabric-price/internal/logging"
)

// Version is set at build time with -ldflags "-X fabric-price/cmd/cli/cmd.Version=..."
var Version = "0.1.0"

var (
	cfgFile string
	verbose bool
	noColor bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "fabric-price",
	Short: "Estimate knitted fabric prices",
	Long: `fabric-price estimates the price of knitted fabric per meter and per kg.

Three models are available: a lookup table of per-kg prices by composition
and processing, a regression by color, and a regression for the plain
60/40 cotton/polyester blend.

Examples:
  fabric-price estimate table --gsm 200 --width 175 --composition "CVC 60% Cotton 40% Polyester"
  fabric-price estimate regression --gsm 180 --width 160 --color dark
  fabric-price quote order.hcl --xlsx order.xlsx`,
	SilenceUsage: true,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.fabric-price.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	// Add subcommands
	rootCmd.AddCommand(estimateCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(quoteCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "overwrite an existing config file")
}

func configPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	return config.DefaultPath()
}

func initConfig() {
	cfg, err := config.Load(configPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	config.Set(cfg)

	// Initialize logging
	logCfg := cfg.Logging
	if verbose {
		logCfg.Level = "debug"
	}
	if err := logging.Initialize(logCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// newCalculator builds a calculator from the loaded configuration
func newCalculator(cmd *cobra.Command) (*pricing.Calculator, error) {
	return catalog.NewCalculator(cmd.Context(), config.Get())
}

// formatter resolves --format, falling back to output.default_format
func formatter(name string) (output.Formatter, error) {
	cfg := config.Get()
	if name == "" {
		name = cfg.Output.DefaultFormat
	}
	return output.DefaultRegistry(output.Options{NoColor: noColor || cfg.Output.NoColor}).Get(name)
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "fabric-price version %s\n", Version)
	},
}

var configForce bool

// configCmd manages configuration
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with default settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath()
		if _, err := os.Stat(path); err == nil && !configForce {
			return errors.Newf(errors.TypeConfig, "%s already exists (use --force to overwrite)", path)
		}
		if err := config.Default().Save(path); err != nil {
			return err
		}
		logging.Info("config written", zap.String("path", path))
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Run: func(cmd *cobra.Command, args []string) {
		determinism.RangeMapSorted(config.Get().Settings(), func(k string, v interface{}) bool {
			fmt.Fprintf(cmd.OutOrStdout(), "%s = %v\n", k, v)
			return true
		})
	},
}
