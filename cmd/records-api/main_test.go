package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemoCmd(t *testing.T) {
	cmd := newDemoCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"car"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "brake: cannot perform operation: already stopped")
}

func TestDemoCmd_RejectsUnknownScenario(t *testing.T) {
	cmd := newDemoCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"greeting"})

	assert.Error(t, cmd.Execute())
}

func TestServeCmd_MissingConfig(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	cmd := newServeCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	assert.ErrorContains(t, cmd.Execute(), "config path is not set")
}
