package config

import (
	"context"
	"log/slog"

	"github.com/leapstack-labs/saju/internal/cli/output"
)

// Context keys shared by the root command, which stores the values, and the
// commands package, which reads them.
type (
	configKey   struct{}
	loggerKey   struct{}
	rendererKey struct{}
)

// ConfigKey returns the context key used for storing the loaded config.
func ConfigKey() interface{} {
	return configKey{}
}

// LoggerKey returns the context key used for storing the logger.
// This allows the commands package to retrieve the logger from context
// without creating an import cycle with the cli package.
func LoggerKey() interface{} {
	return loggerKey{}
}

// RendererKey returns the context key used for storing the renderer.
func RendererKey() interface{} {
	return rendererKey{}
}

// GetConfig retrieves the config from the command context, or the defaults
// when none was stored.
func GetConfig(ctx context.Context) *Config {
	if ctx != nil {
		if c, ok := ctx.Value(configKey{}).(*Config); ok && c != nil {
			return c
		}
	}
	c := &Config{}
	c.ApplyDefaults()
	return c
}

// GetLogger retrieves the logger from the command context.
func GetLogger(ctx context.Context) *slog.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
			return l
		}
	}
	// Return discard logger as safe fallback
	return slog.New(slog.DiscardHandler)
}

// GetRenderer retrieves the renderer from the command context. It returns nil
// when none was stored.
func GetRenderer(ctx context.Context) *output.Renderer {
	if ctx == nil {
		return nil
	}
	r, _ := ctx.Value(rendererKey{}).(*output.Renderer)
	return r
}
