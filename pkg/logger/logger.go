package logger

import (
	"os"

	"github.com/natefinch/lumberjack"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/huynhanx03/go-queue/pkg/settings"
)

const defaultLevel = zapcore.InfoLevel

// Logger is a zap logger that optionally writes to a rotating file.
type Logger struct {
	*zap.Logger
	file *lumberjack.Logger
}

// New builds a JSON logger writing to stdout and, when cfg.FileLogName is set,
// to a file rotated according to cfg.
func New(cfg *settings.Logger) (*Logger, error) {
	level, err := parseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	encoder := zapcore.NewJSONEncoder(encoderConfig())
	cores := []zapcore.Core{
		zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), level),
	}

	var file *lumberjack.Logger
	if cfg.FileLogName != "" {
		file = &lumberjack.Logger{
			Filename:   cfg.FileLogName,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		}
		cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(file), level))
	}

	return &Logger{
		Logger: zap.New(zapcore.NewTee(cores...), zap.AddCaller()),
		file:   file,
	}, nil
}

// Nop returns a Logger that discards everything.
func Nop() *Logger {
	return &Logger{Logger: zap.NewNop()}
}

// Close flushes buffered entries and closes the log file, if any.
func (l *Logger) Close() error {
	// Sync on stdout fails on some terminals; only the file result matters.
	_ = l.Sync()
	if l.file == nil {
		return nil
	}
	return errors.Wrap(l.file.Close(), "failed to close log file")
}

func parseLevel(s string) (zapcore.Level, error) {
	if s == "" {
		return defaultLevel, nil
	}
	level, err := zapcore.ParseLevel(s)
	if err != nil {
		return defaultLevel, errors.Wrapf(err, "invalid log level %q", s)
	}
	return level, nil
}

func encoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "time"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncodeLevel = zapcore.LowercaseLevelEncoder
	return cfg
}
