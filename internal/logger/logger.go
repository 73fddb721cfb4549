// Package logger builds the diagnostic zap logger; it always writes to stderr so stdout carries only matches
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EnvLogLevel - переменная окружения с уровнем логирования
const EnvLogLevel = "MINIGREP_LOG_LEVEL"

const defaultLevel = zapcore.WarnLevel

func New(level string) (*zap.Logger, error) {
	zapCfg := zap.NewDevelopmentConfig()
	zapCfg.Encoding = "console"
	zapCfg.OutputPaths = []string{"stderr"}
	zapCfg.ErrorOutputPaths = []string{"stderr"}
	zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zapCfg.Level = zap.NewAtomicLevelAt(ParseLevel(level))
	zapCfg.DisableStacktrace = true

	return zapCfg.Build()
}

// ParseLevel falls back to warn for an empty or unknown level.
func ParseLevel(level string) zapcore.Level {
	if level == "" {
		return defaultLevel
	}
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return defaultLevel
	}
	return lvl
}
