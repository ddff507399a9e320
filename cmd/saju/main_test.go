// Package main provides tests for the saju CLI.
package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/saju/internal/cli"
	"github.com/leapstack-labs/saju/internal/cli/config"
	"github.com/leapstack-labs/saju/pkg/saju"
)

// run executes the root command in an empty working directory.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	config.ResetConfig()
	t.Cleanup(config.ResetConfig)
	t.Chdir(t.TempDir())

	cmd := cli.NewRootCmd()
	out, errOut := new(bytes.Buffer), new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func fullSaju(t *testing.T, out string) string {
	t.Helper()
	var chart struct {
		FullSaju string `json:"fullSaju"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &chart), out)
	return chart.FullSaju
}

func TestVersionCommand(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "saju v"+cli.Version)
	assert.Contains(t, out, "commit "+cli.GitCommit+", built "+cli.BuildDate)
}

func TestCalc_Flags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"defaults", []string{"calc", "1988-09-18", "20:00", "-o", "json"}, "무진 신유 병자 정유"},
		{"dst off", []string{"calc", "1988-09-18", "20:00", "-o", "json", "--dst=false"}, "무진 신유 병자 무술"},
		{"no corrections", []string{"calc", "1988-09-18", "20:00", "-o", "json", "--dst=false", "--meridian=false"}, "무진 신유 병자 무술"},
		{"23:00 before the meridian edge", []string{"calc", "1971-11-17", "23:00", "-o", "json"}, "신해 기해 병오 기해"},
		{"23:00 on the hour", []string{"calc", "1971-11-17", "23:00", "-o", "json", "--meridian=false"}, "신해 기해 병오 경자"},
		{"late rat split", []string{"calc", "1971-11-17", "23:30", "-o", "json"}, "신해 기해 병오 경자"},
		{"late rat next day", []string{"calc", "1971-11-17", "23:30", "-o", "json", "--late-rat-hour", "next-day"}, "신해 기해 정미 경자"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, fullSaju(t, out))
		})
	}
}

func TestCalc_HelpExplainsMeridianEdges(t *testing.T) {
	out, _, err := run(t, "calc", "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "--meridian=false")
	assert.Contains(t, out, "23:30")
}

func TestCalc_ConfigFile(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("output: json\nengine:\n  dst: false\n"), 0o600))

	out, _, err := run(t, "calc", "1988-09-18", "20:00", "--config", cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "무진 신유 병자 무술", fullSaju(t, out))

	// Flags beat the file.
	out, _, err = run(t, "calc", "1988-09-18", "20:00", "--config", cfgPath, "--dst=true")
	require.NoError(t, err)
	assert.Equal(t, "무진 신유 병자 정유", fullSaju(t, out))
}

func TestRoot_InvalidConfig(t *testing.T) {
	_, _, err := run(t, "calc", "1971-11-17", "--late-rat-hour", "midnight")
	assert.ErrorIs(t, err, saju.ErrUnknownLateRatPolicy)

	_, _, err = run(t, "calc", "1971-11-17", "-o", "html")
	assert.Error(t, err)
}

func TestRoot_VerboseLogsToStderr(t *testing.T) {
	out, errOut, err := run(t, "calc", "1971-11-17", "04:00", "-o", "json", "-v")
	require.NoError(t, err)
	assert.Equal(t, "신해 기해 병오 경인", fullSaju(t, out))
	assert.Contains(t, errOut, "level=DEBUG")
}

func TestCompletionCommand(t *testing.T) {
	out, _, err := run(t, "completion", "bash")
	require.NoError(t, err)
	assert.True(t, strings.Contains(out, "saju"), "bash completion should mention the command name")
}
