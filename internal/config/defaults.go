package config

import (
	"runtime"

	"github.com/leapstack-labs/saju/pkg/saju"
)

// Default configuration values.
const (
	DefaultDST                = true
	DefaultMeridianCorrection = true
	DefaultLateRatHour        = string(saju.LateRatSplit)
)

// DefaultWorkers is the default batch concurrency.
func DefaultWorkers() int {
	return runtime.GOMAXPROCS(0)
}

// DefaultEngineConfig returns an EngineConfig with default values.
func DefaultEngineConfig() *EngineConfig {
	return &EngineConfig{
		DST:                DefaultDST,
		MeridianCorrection: DefaultMeridianCorrection,
		LateRatHour:        DefaultLateRatHour,
	}
}

// DefaultBatchConfig returns a BatchConfig with default values.
func DefaultBatchConfig() *BatchConfig {
	return &BatchConfig{Workers: DefaultWorkers()}
}

// ApplyEngineDefaults fills the unset late rat hour policy. Boolean switches
// have no unset state and are left alone.
func ApplyEngineDefaults(e *EngineConfig) {
	if e == nil {
		return
	}
	if e.LateRatHour == "" {
		e.LateRatHour = DefaultLateRatHour
	}
}

// ApplyBatchDefaults fills an unset worker count.
func ApplyBatchDefaults(b *BatchConfig) {
	if b == nil {
		return
	}
	if b.Workers == 0 {
		b.Workers = DefaultWorkers()
	}
}
