// Package config provides configuration management for the saju CLI.
//
// This package extends the shared configuration types from internal/config
// with CLI-specific fields. The shared engine and batch settings are
// re-exported here via type aliases for convenience.
package config

import (
	sharedcfg "github.com/leapstack-labs/saju/internal/config"
)

// EngineConfig is an alias for the shared engine configuration.
type EngineConfig = sharedcfg.EngineConfig

// BatchConfig is an alias for the shared batch configuration.
type BatchConfig = sharedcfg.BatchConfig

// Config holds all CLI configuration options.
type Config struct {
	Verbose      bool          `koanf:"verbose"`
	OutputFormat string        `koanf:"output"`
	Engine       *EngineConfig `koanf:"engine"`
	Batch        *BatchConfig  `koanf:"batch"`
}

// DefaultOutput auto-detects: TTY=text, non-TTY=markdown.
const DefaultOutput = "auto"

// ApplyDefaults fills the engine and batch sections when a config file
// leaves them out.
func (c *Config) ApplyDefaults() {
	if c.Engine == nil {
		c.Engine = sharedcfg.DefaultEngineConfig()
	}
	sharedcfg.ApplyEngineDefaults(c.Engine)
	if c.Batch == nil {
		c.Batch = sharedcfg.DefaultBatchConfig()
	}
	sharedcfg.ApplyBatchDefaults(c.Batch)
	if c.OutputFormat == "" {
		c.OutputFormat = DefaultOutput
	}
}
