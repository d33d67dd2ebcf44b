package logging

import (
	"context"

	"github.com/sirupsen/logrus"
)

// CommandWrapper wraps one menu command run with start/complete logging and a
// duration timing. The LogData travels on the context so the command can add
// its own fields to the summary entry.
func CommandWrapper(
	commandName string,
	log *logrus.Logger,
	run func(ctx context.Context) error,
) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		logData := NewLogData(log)
		log.Infof("Command.%v.Start", commandName)

		endTimer := logData.AddTiming("duration")
		err := run(WithLogData(ctx, logData))
		endTimer()
		if err != nil {
			logData.Log().WithError(err).Errorf("Command.%v.Error", commandName)
			return err
		}

		logData.Log().Infof("Command.%v.Complete", commandName)
		return nil
	}
}
