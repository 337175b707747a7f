//go:build e2e && unix

package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// walkToSummary drives a 3 m wall with 1000 mm modules through every stage
func walkToSummary(t *testing.T, tf *TUITestFramework) {
	t.Helper()

	require.NoError(t, tf.Type("3", "]", "]", "]", "]"))
	require.True(t, tf.SeePlain("Modules"), "Should show the slot count")
	require.NoError(t, tf.Next())
	require.True(t, tf.SeePlain("Shelving"), "Should reach accessories")

	// Skip accessories after confirming
	require.NoError(t, tf.Next())
	require.True(t, tf.SeePlain("No accessories selected. Continue anyway?"))
	require.NoError(t, tf.Type("y"))
	require.True(t, tf.SeePlain("Screens"), "Should reach gaming")

	require.NoError(t, tf.Next())
	require.True(t, tf.SeePlain("Smart speaker"), "Should reach devices")
	require.NoError(t, tf.Select())
	require.NoError(t, tf.Next())
	require.True(t, tf.SeePlain("Panels"), "Should reach styles")

	// pick the first category, then its first panel
	require.NoError(t, tf.Enter())
	require.NoError(t, tf.Enter())
	require.NoError(t, tf.Next())
	require.True(t, tf.SeePlain("Press enter to submit."), "Should reach summary")
}

func TestWalkAndSubmitToOutbox(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	workspace, err := tf.CreateTestWorkspace("")
	require.NoError(t, err)
	require.NoError(t, tf.StartWithWorkspace())
	require.True(t, tf.Ready(), "Should receive ready signal")

	walkToSummary(t, tf)
	require.True(t, tf.SeePlain("Custom modular wall 3.0 × 2.4 m in Traffic White Lacquer"), "Summary should show the title")

	require.NoError(t, tf.Enter())
	if !tf.WaitForStatusMessage("has been sent", 5*time.Second) {
		tf.DumpTailOnFail(t, "submit-failure", 4096)
		t.Fatal("submission should complete")
	}
	require.True(t, tf.SeePlain("start a new configuration"))

	require.NoError(t, tf.SendCtrlC())
	require.NoError(t, tf.WaitExit(2*time.Second))

	info, err := os.Stat(filepath.Join(workspace, "outbox.db"))
	require.NoError(t, err, "outbox should exist")
	require.Greater(t, info.Size(), int64(0))
}

func TestDualScreenNeedsWideWall(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.CreateTestWorkspace("")
	require.NoError(t, err)
	require.NoError(t, tf.StartWithWorkspace())
	require.True(t, tf.Ready())

	require.NoError(t, tf.Type("2", ".", "5", "]", KeyNext, "t", KeyNext, "2"))
	require.True(t, tf.SeePlain("Dual screen layout needs a wall at least 3000 mm wide (current 2500 mm)"))

	// Going back keeps the layout choice
	require.NoError(t, tf.Type(KeyBack, KeyBack))
	require.True(t, tf.SeePlain("Wall width"))

	require.NoError(t, tf.SendCtrlC())
}

func TestFailedDeliveryKeepsSummary(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	// Nothing listens on port 9, so every submission fails
	_, err := tf.CreateTestWorkspace("endpoint = \"http://127.0.0.1:9/submissions\"\ntimeout_seconds = 1\n")
	require.NoError(t, err)
	require.NoError(t, tf.StartWithWorkspace())
	require.True(t, tf.Ready())

	walkToSummary(t, tf)
	require.NoError(t, tf.Enter())
	if !tf.WaitForStatusMessage("Submission failed", 5*time.Second) {
		tf.DumpTailOnFail(t, "delivery-failure", 4096)
		t.Fatal("failure should be shown")
	}
	require.True(t, tf.SeePlain("Press enter to try again."))

	require.NoError(t, tf.SendCtrlC())
}
