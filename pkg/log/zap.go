package log

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapConfig configures the zap-backed Logger.
type ZapConfig struct {
	Level        string // debug | info | warn | error
	Mode         string // development | production
	Encoding     string // console | json
	ColorEnabled bool
}

type zapLogger struct {
	sugar *zap.SugaredLogger
}

// Init builds the service logger from config. Falls back to a production
// JSON logger on invalid settings rather than failing startup.
func Init(cfg ZapConfig) Logger {
	level := zapcore.InfoLevel
	if err := level.Set(cfg.Level); err != nil {
		level = zapcore.InfoLevel
	}

	var zc zap.Config
	if cfg.Mode == "production" {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	if cfg.Encoding != "" {
		zc.Encoding = cfg.Encoding
	}
	if cfg.Encoding == "console" && cfg.ColorEnabled {
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	l, err := zc.Build(zap.AddCallerSkip(1))
	if err != nil {
		l, _ = zap.NewProduction(zap.AddCallerSkip(1))
	}
	return &zapLogger{sugar: l.Sugar()}
}

func (z *zapLogger) Debug(ctx context.Context, args ...any) { z.sugar.Debug(args...) }
func (z *zapLogger) Debugf(ctx context.Context, format string, args ...any) {
	z.sugar.Debugf(format, args...)
}
func (z *zapLogger) Info(ctx context.Context, args ...any) { z.sugar.Info(args...) }
func (z *zapLogger) Infof(ctx context.Context, format string, args ...any) {
	z.sugar.Infof(format, args...)
}
func (z *zapLogger) Warn(ctx context.Context, args ...any) { z.sugar.Warn(args...) }
func (z *zapLogger) Warnf(ctx context.Context, format string, args ...any) {
	z.sugar.Warnf(format, args...)
}
func (z *zapLogger) Error(ctx context.Context, args ...any) { z.sugar.Error(args...) }
func (z *zapLogger) Errorf(ctx context.Context, format string, args ...any) {
	z.sugar.Errorf(format, args...)
}
