package logger

import (
	"context"
	"fmt"
	"log"

	"go.opentelemetry.io/otel/trace"
)

type Logger struct {
	l *log.Logger
}

func New(l *log.Logger) *Logger {
	return &Logger{l: l}
}

func (l *Logger) LogErrorf(format string, v ...any) {
	msg := fmt.Sprintf(format, v...)
	l.l.Printf("[Error]: %s\n", msg)
}

func (l *Logger) LogWarnf(format string, v ...any) {
	msg := fmt.Sprintf(format, v...)
	l.l.Printf("[Warn]: %s\n", msg)
}

func (l *Logger) LogInfo(format string, v ...any) {
	msg := fmt.Sprintf(format, v...)
	l.l.Printf("[Info]: %s\n", msg)
}

// LogInfoCtx behaves like LogInfo and appends the trace ID of the session
// carried by ctx, if any.
func (l *Logger) LogInfoCtx(ctx context.Context, format string, v ...any) {
	l.LogInfo("%s%s", fmt.Sprintf(format, v...), traceSuffix(ctx))
}

func (l *Logger) LogErrorCtx(ctx context.Context, format string, v ...any) {
	l.LogErrorf("%s%s", fmt.Sprintf(format, v...), traceSuffix(ctx))
}

func traceSuffix(ctx context.Context) string {
	if sc := trace.SpanContextFromContext(ctx); sc.HasTraceID() {
		return ", traceID: " + sc.TraceID().String()
	}

	return ""
}
