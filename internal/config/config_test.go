package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProcessEnvironmentVariables_Defaults(t *testing.T) {
	t.Setenv("FINANCE_TRACKER_FILE", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("CHART_WIDTH", "")

	env, err := ProcessEnvironmentVariables()
	assert.NoError(t, err)
	assert.Equal(t, "data/transactions.json", env.DataFile)
	assert.Equal(t, "info", env.LogLevel)
	assert.Equal(t, 40, env.ChartWidth)
}

func TestProcessEnvironmentVariables_Overrides(t *testing.T) {
	t.Setenv("FINANCE_TRACKER_FILE", "/tmp/ledger.json")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CHART_WIDTH", "60")

	env, err := ProcessEnvironmentVariables()
	assert.NoError(t, err)
	assert.Equal(t, "/tmp/ledger.json", env.DataFile)
	assert.Equal(t, "debug", env.LogLevel)
	assert.Equal(t, 60, env.ChartWidth)
}

func TestProcessEnvironmentVariables_BadChartWidth(t *testing.T) {
	t.Setenv("CHART_WIDTH", "wide")

	_, err := ProcessEnvironmentVariables()
	assert.Error(t, err)
}

func TestProcessEnvironmentVariables_NonPositiveChartWidth(t *testing.T) {
	t.Setenv("CHART_WIDTH", "0")

	_, err := ProcessEnvironmentVariables()
	assert.Error(t, err)
}
