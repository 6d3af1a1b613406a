package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExitError_Messages(t *testing.T) {
	assert.Equal(t, "watermap: failed to load datasets", exitError(ExitLoadFailure, "").Error())
	assert.Equal(t, "watermap: error", exitError(ExitInvalidArgs, "").Error())
	assert.Equal(t, "watermap: bad year 3", exitError(ExitInvalidArgs, "watermap: bad year %d", 3).Error())
}

func TestVersion(t *testing.T) {
	isolate(t)
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "watermap dev\n", out)
}

func TestRoot_BadLogFormat(t *testing.T) {
	isolate(t)
	_, err := run(t, "--log-format", "xml", "version")
	ece := requireExitCode(t, err, ExitInvalidArgs)
	assert.Contains(t, ece.Error(), "unknown log format")
}

func TestRoot_RegistersCommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"serve", "render", "summary", "config", "mcp", "version"} {
		assert.True(t, names[want], "missing command %s", want)
	}
}
