// Package logging configures the logrus logger shared by minic components.
package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// New returns a text logger writing to out. Verbose enables debug output.
func New(out io.Writer, verbose bool) *logrus.Logger {
	logger := logrus.New()
	configure(logger, out, verbose)
	return logger
}

// Setup configures the standard logrus logger for the CLI (stderr) and
// returns it. Packages that log through the logrus package functions,
// such as db migrations, pick up the same settings.
func Setup(verbose bool) *logrus.Logger {
	logger := logrus.StandardLogger()
	configure(logger, os.Stderr, verbose)
	return logger
}

// Discard returns a logger that drops everything. Useful in tests.
func Discard() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func configure(logger *logrus.Logger, out io.Writer, verbose bool) {
	logger.SetOutput(out)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.WarnLevel)
	}
}
