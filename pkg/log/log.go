package log

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the logging interface used across the service. Every method
// takes a context first so request-scoped fields can be attached later
// without changing call sites.
type Logger interface {
	Debug(ctx context.Context, args ...any)
	Debugf(ctx context.Context, template string, args ...any)
	Info(ctx context.Context, args ...any)
	Infof(ctx context.Context, template string, args ...any)
	Warn(ctx context.Context, args ...any)
	Warnf(ctx context.Context, template string, args ...any)
	Error(ctx context.Context, args ...any)
	Errorf(ctx context.Context, template string, args ...any)
	DPanic(ctx context.Context, args ...any)
	DPanicf(ctx context.Context, template string, args ...any)
	Panic(ctx context.Context, args ...any)
	Panicf(ctx context.Context, template string, args ...any)
	Fatal(ctx context.Context, args ...any)
	Fatalf(ctx context.Context, template string, args ...any)
}

// ZapConfig configures the zap-backed logger.
type ZapConfig struct {
	Level        string // debug, info, warn, error
	Mode         string // debug or production
	Encoding     string // console or json
	ColorEnabled bool
}

type zapLogger struct {
	s *zap.SugaredLogger
}

// Init builds a zap-backed Logger from config. Invalid levels fall back to
// info rather than failing startup.
func Init(cfg ZapConfig) Logger {
	level := zapcore.InfoLevel
	if parsed, err := zapcore.ParseLevel(cfg.Level); err == nil {
		level = parsed
	}

	var zapCfg zap.Config
	if cfg.Mode == "production" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	if cfg.Encoding != "" {
		zapCfg.Encoding = cfg.Encoding
	}
	if cfg.Encoding == "console" && cfg.ColorEnabled {
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	logger, err := zapCfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		logger = zap.NewNop()
	}

	return &zapLogger{s: logger.Sugar()}
}

func (l *zapLogger) Debug(ctx context.Context, args ...any)  { l.s.Debug(args...) }
func (l *zapLogger) Info(ctx context.Context, args ...any)   { l.s.Info(args...) }
func (l *zapLogger) Warn(ctx context.Context, args ...any)   { l.s.Warn(args...) }
func (l *zapLogger) Error(ctx context.Context, args ...any)  { l.s.Error(args...) }
func (l *zapLogger) DPanic(ctx context.Context, args ...any) { l.s.DPanic(args...) }
func (l *zapLogger) Panic(ctx context.Context, args ...any)  { l.s.Panic(args...) }
func (l *zapLogger) Fatal(ctx context.Context, args ...any)  { l.s.Fatal(args...) }

func (l *zapLogger) Debugf(ctx context.Context, template string, args ...any) {
	l.s.Debugf(template, args...)
}
func (l *zapLogger) Infof(ctx context.Context, template string, args ...any) {
	l.s.Infof(template, args...)
}
func (l *zapLogger) Warnf(ctx context.Context, template string, args ...any) {
	l.s.Warnf(template, args...)
}
func (l *zapLogger) Errorf(ctx context.Context, template string, args ...any) {
	l.s.Errorf(template, args...)
}
func (l *zapLogger) DPanicf(ctx context.Context, template string, args ...any) {
	l.s.DPanicf(template, args...)
}
func (l *zapLogger) Panicf(ctx context.Context, template string, args ...any) {
	l.s.Panicf(template, args...)
}
func (l *zapLogger) Fatalf(ctx context.Context, template string, args ...any) {
	l.s.Fatalf(template, args...)
}
