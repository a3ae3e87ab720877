package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/farnaz-amriza/sales-analytics-system/cmd/analyze"
	"github.com/farnaz-amriza/sales-analytics-system/cmd/enrich"
	"github.com/farnaz-amriza/sales-analytics-system/cmd/report"
	"github.com/farnaz-amriza/sales-analytics-system/cmd/root"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func init() {
	// 1. Load environment variables silently first (no logging yet)
	loadEnvSilently()

	// 2. Configure the global log level before any logging happens
	configureLogLevelDirectly()

	// 3. Initialize the root command and register subcommands
	root.Init()
	root.Cmd.AddCommand(analyze.Cmd)
	root.Cmd.AddCommand(enrich.Cmd)
	root.Cmd.AddCommand(report.Cmd)
}

// loadEnvSilently loads environment variables without logging anything.
func loadEnvSilently() {
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		// Try to find .env in parent directory (project root)
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}

	_ = godotenv.Load(envFile)
}

// configureLogLevelDirectly sets the global log level for all logrus
// instances from the LOG_LEVEL environment variable.
func configureLogLevelDirectly() {
	logLevelStr := os.Getenv("LOG_LEVEL")
	if logLevelStr == "" {
		logLevelStr = "info"
	}

	logLevel, err := logrus.ParseLevel(strings.ToLower(logLevelStr))
	if err != nil {
		logLevel = logrus.InfoLevel
	}

	logrus.SetLevel(logLevel)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
