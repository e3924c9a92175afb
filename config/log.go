package config

import (
	"fmt"
	"os"
	"path"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"
)

var availableLoggingLevels = []string{"panic", "fatal", "error", "warn", "info", "debug"}

// AvailableLoggingLevelsString lists accepted --logging-level values.
var AvailableLoggingLevelsString = strings.Join(availableLoggingLevels, ", ")

var std = &logrus.Logger{
	Out: os.Stderr,
	Formatter: &CustomTextFormatter{
		logrus.TextFormatter{
			FullTimestamp:    true,
			DisableQuote:     true,
			CallerPrettyfier: hideCaller,
		},
	},
	Hooks:        make(logrus.LevelHooks),
	Level:        logrus.InfoLevel,
	ReportCaller: true,
	ExitFunc:     os.Exit,
}

// NamedLogger creates named package logger.
func NamedLogger(name string) *logrus.Entry {
	return std.WithField("pkg", name)
}

// SetLoggingLevel changes level of every named logger.
func SetLoggingLevel(loggingLevel string) error {
	if !validateLoggingLevel(loggingLevel) {
		return ConfigurationError("invalid logging level %q, one of: %s", loggingLevel, AvailableLoggingLevelsString)
	}
	level, err := logrus.ParseLevel(loggingLevel)
	if err != nil {
		return ConfigurationError("%v", err)
	}
	std.SetLevel(level)
	return nil
}

func validateLoggingLevel(loggingLevel string) bool {
	for _, l := range availableLoggingLevels {
		if l == loggingLevel {
			return true
		}
	}
	return false
}

// CustomTextFormatter prefixes messages with the caller file and line.
type CustomTextFormatter struct {
	logrus.TextFormatter
}

// Format renders a single log entry
func (f *CustomTextFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	if entry.HasCaller() {
		entry.Message = fmt.Sprintf("[%-15s:%03d]%s", path.Base(entry.Caller.File), entry.Caller.Line, entry.Message)
	}
	return f.TextFormatter.Format(entry)
}

// caller is already part of the message
func hideCaller(*runtime.Frame) (string, string) {
	return "", ""
}
