//go:build e2e && unix

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestApplicationExit(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.CreateTestWorkspace("")
	require.NoError(t, err, "Failed to create test workspace")

	require.NoError(t, tf.StartWithWorkspace(), "Failed to start app")

	// Wait for TUI to initialize and render
	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.SeePlain("Dimensions"), "Should open on the dimensions stage")

	t.Logf("Sending 'q' to quit application...")
	require.NoError(t, tf.Quit())

	if err := tf.WaitExit(1500 * time.Millisecond); err != nil {
		t.Logf("'q' did not exit (%v), using Ctrl+C", err)
		tf.DumpTailOnFail(t, "exit-failure", 4096)
		tf.SendCtrlC()
		require.NoError(t, tf.WaitExit(750*time.Millisecond), "Application did not exit within total timeout")
	}
}

func TestApplicationExitWithCtrlCFromConfirm(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.CreateTestWorkspace("")
	require.NoError(t, err)
	require.NoError(t, tf.StartWithWorkspace())
	require.True(t, tf.Ready(), "Should receive ready signal")

	// Reach the accessories skip confirmation, where 'q' is not a command
	require.NoError(t, tf.Type("3", "]", KeyNext, KeyNext))
	require.True(t, tf.SeePlain("Continue anyway?"), "Should ask to confirm skipping accessories")

	require.NoError(t, tf.SendCtrlC())
	require.NoError(t, tf.WaitExit(2*time.Second))
}
