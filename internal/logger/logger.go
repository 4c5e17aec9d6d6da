package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var base *zap.Logger

// Init builds the process logger: JSON at info level in production, colored
// console at debug level otherwise. The result is also installed as zap's
// global so code logging through zap.L() shares the same sink.
func Init(environment string) error {
	var cfg zap.Config
	if environment == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.MessageKey = "message"

	logger, err := cfg.Build(
		zap.AddCaller(),
		zap.AddStacktrace(zapcore.ErrorLevel),
	)
	if err != nil {
		return err
	}

	base = logger
	zap.ReplaceGlobals(logger)

	return nil
}

// l falls back to zap's global (a no-op before ReplaceGlobals) so the
// package is safe to call without Init, as in tests.
func l() *zap.Logger {
	if base != nil {
		return base
	}
	return zap.L()
}

func Sync() {
	if base != nil {
		_ = base.Sync()
	}
}

// WithRequestID returns a logger that stamps every entry with the request id.
func WithRequestID(requestID string) *zap.Logger {
	return l().With(zap.String("request_id", requestID))
}

func Debug(msg string, fields ...zap.Field) {
	l().Debug(msg, fields...)
}

func Info(msg string, fields ...zap.Field) {
	l().Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	l().Warn(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	l().Error(msg, fields...)
}

func Fatal(msg string, fields ...zap.Field) {
	l().Fatal(msg, fields...)
}
