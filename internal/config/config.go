package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DataFile   string
	LogLevel   string
	ChartWidth int
}

// ProcessEnvironmentVariables resolves settings from a .env file (if present)
// and the environment, with defaults suitable for a local checkout.
func ProcessEnvironmentVariables() (*Config, error) {
	// Missing .env is fine, real environment variables still apply.
	_ = godotenv.Load()

	env := Config{
		DataFile:   "data/transactions.json",
		LogLevel:   "info",
		ChartWidth: 40,
	}

	envDataFile := os.Getenv("FINANCE_TRACKER_FILE")
	envLogLevel := os.Getenv("LOG_LEVEL")
	envChartWidth := os.Getenv("CHART_WIDTH")

	if len(envDataFile) != 0 {
		env.DataFile = envDataFile
	}

	if len(envLogLevel) != 0 {
		env.LogLevel = envLogLevel
	}

	if len(envChartWidth) != 0 {
		width, err := strconv.Atoi(envChartWidth)
		if err != nil || width < 1 {
			return nil, fmt.Errorf("CHART_WIDTH must be a positive integer, got %q", envChartWidth)
		}
		env.ChartWidth = width
	}

	return &env, nil
}
