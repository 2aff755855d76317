// Package logger configures the process-wide logrus instance with optional
// rotating file output.
package logger

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	std = logrus.New()
	mu  sync.Mutex
)

// Config controls the global logger.
type Config struct {
	Level      string // debug, info, warn, error
	OutputFile string // optional; empty logs to stderr only
	MaxSize    int    // max size per log file in MB
	MaxBackups int    // rotated files to keep
	MaxAge     int    // days to keep rotated files
	Compress   bool   // gzip rotated files
}

// Init applies the configuration to the global logger. Safe to call more than
// once; the last call wins.
func Init(config Config) error {
	mu.Lock()
	defer mu.Unlock()

	level, err := logrus.ParseLevel(config.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	std.SetLevel(level)
	std.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "06-01-02 15:04:05",
	})

	writers := []io.Writer{os.Stderr}
	if config.OutputFile != "" {
		if err := os.MkdirAll(filepath.Dir(config.OutputFile), 0o755); err != nil {
			return err
		}
		writers = append(writers, &lumberjack.Logger{
			Filename:   config.OutputFile,
			MaxSize:    config.MaxSize,
			MaxBackups: config.MaxBackups,
			MaxAge:     config.MaxAge,
			Compress:   config.Compress,
		})
	}
	std.SetOutput(io.MultiWriter(writers...))
	return nil
}

// InitDefault configures info-level stderr logging.
func InitDefault() {
	_ = Init(Config{Level: "info"})
}

// New returns an entry tagged with the component name. Packages hold one of
// these instead of the raw logger.
func New(component string) *logrus.Entry {
	return std.WithField("component", component)
}

// WithField adds a field on the global logger.
func WithField(key string, value interface{}) *logrus.Entry {
	return std.WithField(key, value)
}

// WithFields adds several fields on the global logger.
func WithFields(fields logrus.Fields) *logrus.Entry {
	return std.WithFields(fields)
}

func Debugf(format string, args ...interface{}) { std.Debugf(format, args...) }
func Infof(format string, args ...interface{})  { std.Infof(format, args...) }
func Warnf(format string, args ...interface{})  { std.Warnf(format, args...) }
func Errorf(format string, args ...interface{}) { std.Errorf(format, args...) }
