// Package logx is the leveled logger used across the service. It sits on top
// of fiber's logger so request logs and application logs share one sink.
package logx

import (
	"io"
	"strings"

	"github.com/gofiber/fiber/v2/log"
)

type Level = log.Level

const (
	LevelDebug = log.LevelDebug
	LevelInfo  = log.LevelInfo
	LevelWarn  = log.LevelWarn
	LevelError = log.LevelError
)

// SetLevel sets the minimum level that is written
func SetLevel(l Level) { log.SetLevel(l) }

// SetOutput redirects log output, mainly for tests
func SetOutput(w io.Writer) { log.SetOutput(w) }

// ParseLevel maps "debug", "info", "warn", "error" to a level, defaulting to info
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

func Debug(v ...any)                 { log.Debug(v...) }
func Debugf(format string, v ...any) { log.Debugf(format, v...) }
func Info(v ...any)                  { log.Info(v...) }
func Infof(format string, v ...any)  { log.Infof(format, v...) }
func Warn(v ...any)                  { log.Warn(v...) }
func Warnf(format string, v ...any)  { log.Warnf(format, v...) }
func Error(v ...any)                 { log.Error(v...) }
func Errorf(format string, v ...any) { log.Errorf(format, v...) }
func Fatalf(format string, v ...any) { log.Fatalf(format, v...) }
