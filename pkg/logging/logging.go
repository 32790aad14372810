package logging

import (
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

var (
	once      sync.Once
	singleton *log.Logger
)

func getLogger() *log.Logger {
	once.Do(func() {
		singleton = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			TimeFormat:      time.RFC3339,
			Prefix:          "raytracer",
		})
		singleton.SetLevel(log.InfoLevel)
	})
	return singleton
}

// Logger returns the process-wide logger
func Logger() *log.Logger {
	return getLogger()
}

// SetLevel parses and applies a level name ("debug", "info", "warn", "error")
func SetLevel(level string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return err
	}
	getLogger().SetLevel(lvl)
	return nil
}

// With returns a child logger carrying the given key/value pairs
func With(keyvals ...interface{}) *log.Logger {
	return getLogger().With(keyvals...)
}

func Debug(msg string, keyvals ...interface{}) {
	getLogger().Debug(msg, keyvals...)
}

func Info(msg string, keyvals ...interface{}) {
	getLogger().Info(msg, keyvals...)
}

func Warn(msg string, keyvals ...interface{}) {
	getLogger().Warn(msg, keyvals...)
}

func Error(msg string, keyvals ...interface{}) {
	getLogger().Error(msg, keyvals...)
}

// Progress returns a row-progress callback that logs every `every` rows and
// once more when the last row completes
func Progress(logger *log.Logger, every int) func(done, total int) {
	if every <= 0 {
		every = 1
	}
	return func(done, total int) {
		if done == total {
			logger.Info("rows complete", "rows", done)
			return
		}
		if done%every == 0 {
			logger.Debug("rendering", "rows", done, "total", total)
		}
	}
}
