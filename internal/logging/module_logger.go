// Package logging provides module-scoped loggers over the pluggable
// provider contract, defaulting to a no-op implementation.
package logging

import (
	"context"

	"github.com/goliatone/go-fields/pkg/interfaces"
)

const (
	rootModule     = "fields"
	recordModule   = "fields.record"
	localizeModule = "fields.localize"
	commandModule  = "fields.commands"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The module identifier is
// attached as structured context so downstream entries filter predictably.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// RecordLogger returns the logger namespace reserved for the record service.
func RecordLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, recordModule)
}

// CommandLogger returns the logger namespace reserved for command handlers.
func CommandLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, commandModule)
}

// NoOp returns a logger that drops every log entry. It satisfies the Logger
// contract so services can safely operate when logging is disabled.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
