package logging

import (
	"fmt"
	"io"
	"os"
)

type StatusLevel int

const (
	NoStatus StatusLevel = iota
	Verbose
	EvenMoreVerbose
)

type LogConsumer func(status string, statusLevel StatusLevel)

type LogReporter func(level StatusLevel, format string, a ...any)

// Logger is the diagnostic logger used across the tool. Info and Error are always
// written, Verbose and EvenMoreVerbose only when the configured level allows it.
type Logger interface {
	Info(format string, a ...any)
	Error(format string, a ...any)
	Verbose(format string, a ...any)
	EvenMoreVerbose(format string, a ...any)
	Level() StatusLevel
}

type defaultLogger struct {
	consumer LogConsumer
	level    StatusLevel
}

// NewDefaultLogger creates a logger writing to stderr.
func NewDefaultLogger(level StatusLevel) Logger {
	return NewLogger(os.Stderr, level)
}

// NewLogger creates a logger writing one line per status to w.
func NewLogger(w io.Writer, level StatusLevel) Logger {
	return NewConsumerLogger(func(status string, _ StatusLevel) {
		fmt.Fprintln(w, status)
	}, level)
}

// NewConsumerLogger creates a logger handing every status that passes the level check to consumer.
func NewConsumerLogger(consumer LogConsumer, level StatusLevel) Logger {
	return &defaultLogger{
		consumer: consumer,
		level:    level,
	}
}

func (l *defaultLogger) report(level StatusLevel, format string, a ...any) {
	if l.consumer != nil && l.level >= level {
		l.consumer(fmt.Sprintf(format, a...), level)
	}
}

func (l *defaultLogger) Info(format string, a ...any) {
	l.report(NoStatus, format, a...)
}

func (l *defaultLogger) Error(format string, a ...any) {
	l.report(NoStatus, "error: "+format, a...)
}

func (l *defaultLogger) Verbose(format string, a ...any) {
	l.report(Verbose, format, a...)
}

func (l *defaultLogger) EvenMoreVerbose(format string, a ...any) {
	l.report(EvenMoreVerbose, format, a...)
}

func (l *defaultLogger) Level() StatusLevel {
	return l.level
}

// Reporter adapts the logger to a LogReporter, for code that reports with an explicit level.
func Reporter(l Logger) LogReporter {
	return func(level StatusLevel, format string, a ...any) {
		switch level {
		case NoStatus:
			l.Info(format, a...)
		case Verbose:
			l.Verbose(format, a...)
		default:
			l.EvenMoreVerbose(format, a...)
		}
	}
}
