// Package logger builds the zap logger used by the sdbootctl binary. Logging
// is off by default so command output stays clean; levels can be raised for
// debugging and optionally redirected to a rotated log file.
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Config struct {
	// Level adjusts verbosity: 0=Fatal, 1=Error, 2=Warn, 3=Info, 4+=Debug.
	Level int8 `mapstructure:"log-level"`
	// File, when set, sends log output to a size-rotated file instead of stderr.
	File string `mapstructure:"log-file"`
	// MaxSize is the maximum size in megabytes of the log file before rotation.
	MaxSize int `mapstructure:"log-max-size"`
	// NumRotatedFiles is how many rotated log files to keep.
	NumRotatedFiles int `mapstructure:"log-num-rotated-files"`
}

func New(cfg Config) *zap.Logger {
	var sink zapcore.WriteSyncer
	if cfg.File != "" {
		sink = zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.NumRotatedFiles,
		})
	} else {
		sink = zapcore.Lock(os.Stderr)
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		sink,
		zapLevel(cfg.Level),
	)
	return zap.New(core)
}

func zapLevel(level int8) zapcore.Level {
	switch level {
	case 0:
		return zapcore.FatalLevel
	case 1:
		return zapcore.ErrorLevel
	case 2:
		return zapcore.WarnLevel
	case 3:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}
