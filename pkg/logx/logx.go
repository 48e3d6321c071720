// Package logx prints severity-prefixed console messages gated by config.App.
package logx

import (
	"io"
	"log"
	"os"

	"supatools/pkg/config"
)

type Logger struct {
	app config.App

	debug *log.Logger
	info  *log.Logger
	warn  *log.Logger
	err   *log.Logger
}

// New writes debug and info to stdout, warn and error to stderr.
func New(app config.App, stdout, stderr io.Writer) *Logger {
	return &Logger{
		app:   app,
		debug: log.New(stdout, "[DEBUG] ", 0),
		info:  log.New(stdout, "[INFO] ", 0),
		warn:  log.New(stderr, "[WARN] ", 0),
		err:   log.New(stderr, "[ERROR] ", 0),
	}
}

// Default builds a logger for the current process environment.
func Default() *Logger {
	return New(config.NewApp(config.Load().AppEnv), os.Stdout, os.Stderr)
}

func (l *Logger) Debugf(format string, args ...any) {
	if l.app.Debug {
		l.debug.Printf(format, args...)
	}
}

func (l *Logger) Infof(format string, args ...any) {
	if l.leveled() {
		l.info.Printf(format, args...)
	}
}

func (l *Logger) Warnf(format string, args ...any) {
	if l.leveled() {
		l.warn.Printf(format, args...)
	}
}

func (l *Logger) Errorf(format string, args ...any) {
	if l.leveled() {
		l.err.Printf(format, args...)
	}
}

// leveled is the shared gate for info, warn and error. Both levels NewApp can
// produce pass it, so only debug output is ever suppressed.
func (l *Logger) leveled() bool {
	return l.app.LogLevel == config.LogLevelDebug || l.app.LogLevel == config.LogLevelError
}
