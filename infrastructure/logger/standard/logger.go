// ABOUTME: Structured logger backed by logrus with optional rotating file output
// ABOUTME: Adapts the map-based Logger interface to logrus fields

package standard

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures a StandardLogger
type Options struct {
	Level  string // debug, info, warn, error
	Format string // text or json
	File   string // optional path; rotated with lumberjack

	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// StandardLogger implements the Logger interface using logrus
type StandardLogger struct {
	entry *logrus.Logger
}

// NewStandardLogger creates a text logger at info level writing to stdout
func NewStandardLogger() *StandardLogger {
	return NewLogger(Options{})
}

// NewLogger creates a logger from the given options
func NewLogger(opts Options) *StandardLogger {
	l := logrus.New()
	l.SetLevel(parseLevel(opts.Level))

	if strings.EqualFold(opts.Format, "json") {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	writers := []io.Writer{os.Stdout}
	if opts.File != "" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    withDefault(opts.MaxSizeMB, 100),
			MaxBackups: withDefault(opts.MaxBackups, 3),
			MaxAge:     withDefault(opts.MaxAgeDays, 28),
			Compress:   opts.Compress,
		})
	}
	l.SetOutput(io.MultiWriter(writers...))

	return &StandardLogger{entry: l}
}

// SetOutput redirects log output
func (l *StandardLogger) SetOutput(w io.Writer) {
	l.entry.SetOutput(w)
}

// Debug logs a debug message
func (l *StandardLogger) Debug(msg string, fields map[string]interface{}) {
	l.entry.WithFields(logrus.Fields(fields)).Debug(msg)
}

// Info logs an info message
func (l *StandardLogger) Info(msg string, fields map[string]interface{}) {
	l.entry.WithFields(logrus.Fields(fields)).Info(msg)
}

// Warn logs a warning message
func (l *StandardLogger) Warn(msg string, fields map[string]interface{}) {
	l.entry.WithFields(logrus.Fields(fields)).Warn(msg)
}

// Error logs an error message
func (l *StandardLogger) Error(msg string, fields map[string]interface{}) {
	l.entry.WithFields(logrus.Fields(fields)).Error(msg)
}

func parseLevel(level string) logrus.Level {
	if level == "" {
		return logrus.InfoLevel
	}
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return logrus.InfoLevel
	}
	return parsed
}

func withDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
