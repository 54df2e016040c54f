package log

import (
	"context"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type zapLogger struct {
	sugar *zap.SugaredLogger
}

// Init builds a Logger from cfg. Unknown levels fall back to info.
func Init(cfg ZapConfig) Logger {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	if cfg.Mode == ModeProduction {
		encCfg = zap.NewProductionEncoderConfig()
	}
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	if cfg.ColorEnabled && cfg.Encoding != EncodingJSON {
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	var encoder zapcore.Encoder
	if cfg.Encoding == EncodingJSON {
		encoder = zapcore.NewJSONEncoder(encCfg)
	} else {
		encoder = zapcore.NewConsoleEncoder(encCfg)
	}

	core := zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), zap.NewAtomicLevelAt(level))
	opts := []zap.Option{zap.AddCaller(), zap.AddCallerSkip(1)}
	if cfg.Mode != ModeProduction {
		opts = append(opts, zap.AddStacktrace(zapcore.ErrorLevel))
	}

	return &zapLogger{sugar: zap.New(core, opts...).Sugar()}
}

// NewNop returns a Logger that discards everything.
func NewNop() Logger {
	return &zapLogger{sugar: zap.NewNop().Sugar()}
}

func (l *zapLogger) with(ctx context.Context) *zap.SugaredLogger {
	if id := GetTraceID(ctx); id != "" {
		return l.sugar.With(traceIDField, id)
	}
	return l.sugar
}

func (l *zapLogger) Debug(ctx context.Context, args ...interface{}) {
	l.with(ctx).Debug(args...)
}

func (l *zapLogger) Debugf(ctx context.Context, template string, args ...interface{}) {
	l.with(ctx).Debugf(template, args...)
}

func (l *zapLogger) Info(ctx context.Context, args ...interface{}) {
	l.with(ctx).Info(args...)
}

func (l *zapLogger) Infof(ctx context.Context, template string, args ...interface{}) {
	l.with(ctx).Infof(template, args...)
}

func (l *zapLogger) Warn(ctx context.Context, args ...interface{}) {
	l.with(ctx).Warn(args...)
}

func (l *zapLogger) Warnf(ctx context.Context, template string, args ...interface{}) {
	l.with(ctx).Warnf(template, args...)
}

func (l *zapLogger) Error(ctx context.Context, args ...interface{}) {
	l.with(ctx).Error(args...)
}

func (l *zapLogger) Errorf(ctx context.Context, template string, args ...interface{}) {
	l.with(ctx).Errorf(template, args...)
}

func (l *zapLogger) Fatal(ctx context.Context, args ...interface{}) {
	l.with(ctx).Fatal(args...)
}

func (l *zapLogger) Fatalf(ctx context.Context, template string, args ...interface{}) {
	l.with(ctx).Fatalf(template, args...)
}
