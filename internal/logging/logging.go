package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// SetupLogging configures a JSON logger writing to the given file. Stdout
// belongs to the TUI, so the log never goes there; with an empty path the
// logger is discarded entirely.
func SetupLogging(path string, level logrus.Level) (*logrus.Logger, func()) {
	logger := &logrus.Logger{
		Formatter: &logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyLevel: "loglevel",
			},
		},
		Out:   io.Discard,
		Level: level,
	}

	closer := func() {}
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err == nil {
			logger.Out = f
			closer = func() { _ = f.Close() }
		}
	}

	return logger, closer
}
