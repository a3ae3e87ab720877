// Package root contains the root command for the application.
package root

import (
	"github.com/farnaz-amriza/sales-analytics-system/internal/catalog"
	"github.com/farnaz-amriza/sales-analytics-system/internal/config"
	"github.com/farnaz-amriza/sales-analytics-system/internal/enrichment"
	"github.com/farnaz-amriza/sales-analytics-system/internal/logging"
	"github.com/farnaz-amriza/sales-analytics-system/internal/report"
	"github.com/farnaz-amriza/sales-analytics-system/internal/salesparser"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands.
type CommonFlags struct {
	Input     string
	Output    string
	Region    string
	MinAmount string
	MaxAmount string
}

var (
	// Log is the shared logger instance for commands.
	Log = logging.GetLogger()

	// Cfg holds the loaded application configuration after PersistentPreRun.
	Cfg = &config.Config{}

	// SharedFlags are the flag values accessible to all commands.
	SharedFlags = CommonFlags{}

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "sales-analytics",
		Short: "A CLI tool to clean, analyze and enrich pipe-delimited sales data.",
		Long: `sales-analytics ingests pipe-delimited sales transaction files, validates
and filters the records, computes revenue and performance aggregates,
enriches transactions against an external product catalog and produces a
formatted text report.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to sales-analytics!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to load configuration: %v", err)
			}
			Cfg = cfg

			Log = logging.Configure(cfg.Log.Level, cfg.Log.Format)

			// Propagate the configured logger to the leaf packages.
			salesparser.SetLogger(Log)
			catalog.SetLogger(Log)
			enrichment.SetLogger(Log)
			report.SetLogger(Log)

			delim := []rune(cfg.CSV.Delimiter)[0]
			salesparser.SetDelimiter(delim)
			enrichment.SetDelimiter(delim)
		},
	}
)

// Init initializes the root command and all flags.
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "data/sales_data.txt", "Input sales data file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file (defaults come from configuration)")
	Cmd.PersistentFlags().StringVar(&SharedFlags.Region, "region", "", "Keep only transactions from this region")
	Cmd.PersistentFlags().StringVar(&SharedFlags.MinAmount, "min-amount", "", "Keep only transactions with amount >= this value")
	Cmd.PersistentFlags().StringVar(&SharedFlags.MaxAmount, "max-amount", "", "Keep only transactions with amount <= this value")
}

// SetLogger allows tests to inject a logger.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		Log = logger
	}
}
