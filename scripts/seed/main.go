package main

import (
	"context"

	"github.com/sirupsen/logrus"

	tracker_config "github.com/carson-networks/finance-tracker/internal/config"
	"github.com/carson-networks/finance-tracker/internal/storage"
)

// Writes the built-in sample data set to the configured transaction file so a
// fresh checkout has data to play with.
func main() {
	env, err := tracker_config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("ProcessEnvironmentVariables")
		return
	}

	files := storage.NewFileStore(env.DataFile)
	records := storage.SampleRecords()

	if err := files.Save(context.Background(), records); err != nil {
		logrus.WithError(err).Fatal("FileStore.Save")
		return
	}

	logrus.WithFields(logrus.Fields{
		"path":        env.DataFile,
		"recordCount": len(records),
	}).Info("Sample data written")
}
