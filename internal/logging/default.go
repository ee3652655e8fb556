package logging

var logger Logger

// SetLogger sets the package logger. This is primarily a test helper.
func SetLogger(l Logger) {
	logger = l
}

func SetNewLoggerWithLevel(level StatusLevel) {
	logger = NewDefaultLogger(level)
}

// GetLogger returns the package logger. Before the root command installs one,
// a stderr logger at NoStatus is used.
func GetLogger() Logger {
	if logger == nil {
		logger = NewDefaultLogger(NoStatus)
	}
	return logger
}
