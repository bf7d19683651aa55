package log

import (
	"context"
	"log"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

var global Logger

// Logger is the ctx-first logger handed to usecases and repositories.
type Logger interface {
	Info(ctx context.Context, message string, data ...interface{})
	Error(ctx context.Context, message string, data ...interface{})
}

type logger struct {
	z *otelzap.Logger
}

func SetupLogger() *otelzap.Logger {
	z, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to setup logger: %v", err)
	}
	return otelzap.New(z, otelzap.WithMinLevel(zap.InfoLevel))
}

func Init(z *otelzap.Logger) {
	global = &logger{z: z}
}

func GetLogger() Logger {
	return global
}

func (l *logger) Info(ctx context.Context, message string, data ...interface{}) {
	l.z.Ctx(ctx).Info(message, fields(data)...)
}

func (l *logger) Error(ctx context.Context, message string, data ...interface{}) {
	l.z.Ctx(ctx).Error(message, fields(data)...)
}

func fields(data []interface{}) []zap.Field {
	out := make([]zap.Field, 0, len(data))
	for _, d := range data {
		if err, ok := d.(error); ok {
			out = append(out, zap.Error(err))
			continue
		}
		out = append(out, zap.Any("data", d))
	}
	return out
}
