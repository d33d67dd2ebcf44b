package main

import (
	"context"
	"flag"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-tracker/internal/commands"
	"github.com/carson-networks/finance-tracker/internal/config"
	"github.com/carson-networks/finance-tracker/internal/ledger"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/storage"
)

func main() {
	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	logger := logging.SetupLogging(envConfig.LogLevel)
	logger.Info("finance-tracker starting")

	demo := flag.Bool("demo", false, "run the non-interactive demo and exit")
	dataFile := flag.String("file", envConfig.DataFile, "transaction JSON file")
	flag.Parse()

	files := storage.NewFileStore(*dataFile)
	store := ledger.NewStore()
	ctx := context.Background()

	records, err := files.Load(ctx)
	if err != nil {
		logger.WithError(err).Fatal("FileStore.Load")
		return
	}
	if err := store.LoadFrom(storage.ToLedger(records)); err != nil {
		logger.WithError(err).Fatal("Store.LoadFrom")
		return
	}
	logger.WithField("transactionCount", store.Len()).Info("transactions loaded")

	session := commands.NewSession(store, files, os.Stdin, os.Stdout, envConfig.ChartWidth)

	if *demo || !stdinIsTerminal() {
		if err := commands.Demo(ctx, session); err != nil {
			logger.WithError(err).Fatal("commands.Demo")
		}
		return
	}

	runner := commands.NewRunner(logger, session)
	if err := runner.Run(ctx); err != nil {
		logger.WithError(err).Error("Runner.Run")
	}
	logger.Info("finance-tracker exiting")
}

func stdinIsTerminal() bool {
	info, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
