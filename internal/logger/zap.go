package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.SugaredLogger

type Logger struct {
	*zap.SugaredLogger
}

func GetLogger() Logger {
	if logger == nil {
		zaplog, _ := zap.NewDevelopment()
		logger = zaplog.Sugar()
	}

	return Logger{SugaredLogger: logger}
}

// Init replaces the shared logger. Unknown levels fall back to info.
func Init(level string, dev bool) error {
	lvl := zapcore.InfoLevel
	if level != "" {
		if err := lvl.UnmarshalText([]byte(level)); err != nil {
			lvl = zapcore.InfoLevel
		}
	}

	cfg := zap.NewProductionConfig()
	if dev {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	zaplog, err := cfg.Build()
	if err != nil {
		return err
	}

	logger = zaplog.Sugar()
	return nil
}
