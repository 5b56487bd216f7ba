package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_RequiresTerminal(t *testing.T) {
	// go test pipes stdout, so the terminal check fails before anything opens.
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	err = run()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "interactive terminal")
	_, statErr := os.Stat("tusday.log")
	assert.True(t, os.IsNotExist(statErr), "no log file is opened on the early exit")
}
