package logger

import (
	"go.uber.org/zap"
)

type zapLogger struct {
	sugar *zap.SugaredLogger
}

var _ Logger = &zapLogger{}

// NewZap adapts a zap.SugaredLogger to the client's Logger interface.
// If sugar is nil, a no-op zap logger is used.
func NewZap(sugar *zap.SugaredLogger) Logger {
	if sugar == nil {
		sugar = zap.NewNop().Sugar()
	}
	return &zapLogger{sugar: sugar}
}

func (z *zapLogger) Debugf(format string, args ...any) {
	z.sugar.Debugf(format, args...)
}

func (z *zapLogger) Infof(format string, args ...any) {
	z.sugar.Infof(format, args...)
}

func (z *zapLogger) Warnf(format string, args ...any) {
	z.sugar.Warnf(format, args...)
}

func (z *zapLogger) Errorf(format string, args ...any) {
	z.sugar.Errorf(format, args...)
}
