// Package config provides shared configuration types for saju.
// This package is decoupled from CLI concerns so that any caller building an
// engine from a config file uses the same keys and defaults.
package config

import (
	"fmt"
	"log/slog"

	"github.com/leapstack-labs/saju/pkg/saju"
)

// EngineConfig holds chart engine settings.
type EngineConfig struct {
	// DST applies the historical daylight-saving table
	DST bool `koanf:"dst"`
	// MeridianCorrection shifts clock time to the 127.5°E meridian
	MeridianCorrection bool `koanf:"meridian_correction"`
	// LateRatHour is "split" or "next-day"
	LateRatHour string `koanf:"late_rat_hour"`
}

// Validate checks the engine settings.
func (e *EngineConfig) Validate() error {
	if _, err := saju.ParseLateRatPolicy(e.LateRatHour); err != nil {
		return fmt.Errorf("engine.late_rat_hour: %w", err)
	}
	return nil
}

// SajuConfig converts the settings to a saju.Config.
func (e *EngineConfig) SajuConfig(logger *slog.Logger) saju.Config {
	return saju.Config{
		DisableDST:                !e.DST,
		DisableMeridianCorrection: !e.MeridianCorrection,
		LateRatHour:               saju.LateRatPolicy(e.LateRatHour),
		Logger:                    logger,
	}
}

// NewEngine builds an engine from the settings.
func (e *EngineConfig) NewEngine(logger *slog.Logger) (*saju.Engine, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return saju.New(e.SajuConfig(logger))
}

// BatchConfig holds batch runner settings.
type BatchConfig struct {
	// Workers is the number of charts computed concurrently
	Workers int `koanf:"workers"`
}

// Validate checks the batch settings.
func (b *BatchConfig) Validate() error {
	if b.Workers <= 0 {
		return fmt.Errorf("batch.workers must be positive, got %d", b.Workers)
	}
	return nil
}
