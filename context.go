package warden

import (
	"context"

	"github.com/tendermint/tendermint/libs/log"
)

// Context is just a wrapper around context.Context with a defined set of
// keys. Every extension may add its own keys to enrich it with specific
// data. There should exist two functions for every value of type T we
// want to support in Context:
//
//   WithXYZ(Context, T) Context
//   XYZ(Context) T
type Context = context.Context

type contextKey int

const (
	contextKeyLogger contextKey = iota
)

// DefaultLogger is used for all context that have not set anything
// themselves.
var DefaultLogger = log.NewNopLogger()

// WithLogger sets the logger for this context.
func WithLogger(ctx Context, logger log.Logger) Context {
	// Logger is always set to aid debugging, overwriting is allowed.
	return context.WithValue(ctx, contextKeyLogger, logger)
}

// GetLogger returns the currently set logger, or DefaultLogger if none
// was set.
func GetLogger(ctx Context) log.Logger {
	if logger, ok := ctx.Value(contextKeyLogger).(log.Logger); ok {
		return logger
	}
	return DefaultLogger
}

// LogInfo accepts keyvalue pairs, and returns another context like this,
// after passing all the keyvals to the Logger.
func LogInfo(ctx Context, keyvals ...interface{}) Context {
	logger := GetLogger(ctx)
	return WithLogger(ctx, logger.With(keyvals...))
}
