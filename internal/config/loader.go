package config

import (
	"os"
	"path/filepath"
)

// ConfigFileName is the name of the config file.
const ConfigFileName = "saju.yaml"

// ConfigFileNameAlt is the alternate name of the config file.
const ConfigFileNameAlt = "saju.yml"

// MaxUpwardSearchLevels limits how many directories FindProjectRoot visits.
const MaxUpwardSearchLevels = 10

// DefaultValues returns the defaults as a flat koanf map.
func DefaultValues() map[string]any {
	return map[string]any{
		"engine.dst":                 DefaultDST,
		"engine.meridian_correction": DefaultMeridianCorrection,
		"engine.late_rat_hour":       DefaultLateRatHour,
		"batch.workers":              DefaultWorkers(),
	}
}

// FindConfigFile finds the config file in the given directory.
// Returns empty string if not found.
func FindConfigFile(dir string) string {
	yamlPath := filepath.Join(dir, ConfigFileName)
	if _, err := os.Stat(yamlPath); err == nil {
		return yamlPath
	}

	ymlPath := filepath.Join(dir, ConfigFileNameAlt)
	if _, err := os.Stat(ymlPath); err == nil {
		return ymlPath
	}

	return ""
}

// FindProjectRoot walks up from the given directory to find a directory
// containing saju.yaml or saju.yml, visiting at most MaxUpwardSearchLevels
// directories.
// Returns empty string if not found.
func FindProjectRoot(startDir string) string {
	dir := startDir
	for i := 0; i < MaxUpwardSearchLevels; i++ {
		if FindConfigFile(dir) != "" {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			break
		}
		dir = parent
	}
	return ""
}
