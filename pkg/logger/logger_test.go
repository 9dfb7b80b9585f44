package logger

import (
	"context"
	"testing"

	"github.com/go-logr/logr"
)

// mockLogLevel is a valid zapcore.Level value for testing.
const mockLogLevel int8 = 0 // zapcore.InfoLevel

func TestGetReturnsLoggerInstance(t *testing.T) {
	logger := Get(mockLogLevel)
	if logger == nil {
		t.Fatal("Get should return a non-nil logger")
	}
}

func TestGetReturnsSameInstanceOnSubsequentCalls(t *testing.T) {
	logger1 := Get(mockLogLevel)
	logger2 := Get(mockLogLevel)
	if logger1 != logger2 {
		t.Error("Get should return the same logger instance on subsequent calls")
	}
}

func TestGetReturnsNoopLoggerIfGlobalLoggerNil(t *testing.T) {
	orig := globalLogrLogger
	globalLogrLogger = nil
	defer func() { globalLogrLogger = orig }()

	logger := Get(mockLogLevel)
	if logger != &defaultNoopLogger {
		t.Error("Get should fall back to the noop logger when the global logger is nil")
	}
}

func TestWithLoggerAddsLoggerToContext(t *testing.T) {
	ctx := context.Background()
	logger := Get(mockLogLevel)
	newCtx := WithLogger(ctx, logger)

	got := newCtx.Value(loggerContextKey{})
	if got == nil {
		t.Fatal("WithLogger should add logger to context")
	}
	if got != logger {
		t.Error("WithLogger should store the provided logger in context")
	}
}

func TestWithLoggerReturnsSameContextIfLoggerAlreadySet(t *testing.T) {
	ctx := context.Background()
	logger := Get(mockLogLevel)
	ctxWithLogger := context.WithValue(ctx, loggerContextKey{}, logger)

	resultCtx := WithLogger(ctxWithLogger, logger)
	if resultCtx != ctxWithLogger {
		t.Error("WithLogger should return the same context if logger is already set and matches")
	}
}

func TestFromContextReturnsLoggerFromContext(t *testing.T) {
	ctx := context.Background()
	logger := Get(mockLogLevel)
	ctxWithLogger := context.WithValue(ctx, loggerContextKey{}, logger)

	got := FromContext(ctxWithLogger)
	if got != logger {
		t.Error("FromContext should return the logger stored in context")
	}
}

func TestFromContextReturnsGlobalLoggerIfNoLoggerInContext(t *testing.T) {
	ctx := context.Background()
	globalLogger := Get(mockLogLevel)

	got := FromContext(ctx)
	if got != globalLogger {
		t.Error("FromContext should return the global logger if none in context")
	}
}

func TestFromContextReturnsNoopLoggerIfNoGlobalOrContextLogger(t *testing.T) {
	orig := globalLogrLogger
	globalLogrLogger = nil
	defer func() { globalLogrLogger = orig }()

	got := FromContext(context.Background())
	if got != &defaultNoopLogger {
		t.Error("FromContext should return defaultNoopLogger if no logger is set")
	}
}

func TestSyncDoesNotPanicWhenGlobalZapLoggerIsNil(t *testing.T) {
	orig := globalZapLogger
	globalZapLogger = nil
	defer func() { globalZapLogger = orig }()

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sync should not panic when globalZapLogger is nil, but got panic: %v", r)
		}
	}()
	Sync()
}

func TestGetGlobalLoggerReturnsGlobalLogger(t *testing.T) {
	orig := globalLogrLogger
	defer func() { globalLogrLogger = orig }()

	mockLogger := logr.Discard()
	globalLogrLogger = &mockLogger

	got := GetGlobalLogger()
	if got != &mockLogger {
		t.Error("GetGlobalLogger should return the globalLogrLogger when it is set")
	}
}

func TestGetGlobalLoggerReturnsNoopLoggerIfGlobalLoggerNil(t *testing.T) {
	orig := globalLogrLogger
	globalLogrLogger = nil
	defer func() { globalLogrLogger = orig }()

	got := GetGlobalLogger()
	if got != &defaultNoopLogger {
		t.Error("GetGlobalLogger should return defaultNoopLogger when globalLogrLogger is nil")
	}
}

func TestGetNoopLoggerIsNoop(t *testing.T) {
	logger := GetNoopLogger()
	if logger != &defaultNoopLogger {
		t.Fatal("GetNoopLogger should return defaultNoopLogger")
	}
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("noop logger should not panic on Info, got: %v", r)
		}
	}()
	logger.Info("this should do nothing")
}

func TestWithValuesReturnsNewLoggerWithValues(t *testing.T) {
	logger := Get(mockLogLevel)

	newLogger := WithValues(logger, "testKey", "testValue")
	if newLogger == nil {
		t.Fatal("WithValues should return a non-nil logger")
	}
	if newLogger == logger {
		t.Error("WithValues should return a new logger instance, not the original")
	}
}
