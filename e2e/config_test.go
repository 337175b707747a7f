//go:build e2e && unix

package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBrandFromConfig(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	workspace, err := tf.CreateTestWorkspace("")
	require.NoError(t, err)

	// brand must sit above the first table
	content, err := os.ReadFile(tf.config)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(tf.config, append([]byte("brand = \"Wallcraft\"\n"), content...), 0644))

	require.NoError(t, tf.StartWithWorkspace())
	require.True(t, tf.Ready())
	require.True(t, tf.SeePlain("Wallcraft"), "Title should use the configured brand")

	require.NoError(t, tf.Quit())
	require.NoError(t, tf.WaitExit(2*time.Second))

	_, err = os.Stat(filepath.Join(workspace, "modwall.log"))
	require.NoError(t, err, "log file should be created where the config says")
}

func TestCatalogFlag(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	workspace, err := tf.CreateTestWorkspace("")
	require.NoError(t, err)

	catalogPath := filepath.Join(workspace, "catalog.yaml")
	require.NoError(t, os.WriteFile(catalogPath, []byte(`categories:
  - id: glass
    name: Glass
    panels:
      - id: SMOKE
        name: Smoked Glass
        stock_level: 4
devices:
  - id: beacon
    name: Presence beacon
gaming_options: []
`), 0644))

	require.NoError(t, tf.StartWithWorkspace("-catalog", catalogPath))
	require.True(t, tf.Ready())

	require.NoError(t, tf.Type("3", "]", KeyNext, "t", KeyNext, KeyNext))
	require.True(t, tf.SeePlain("Presence beacon"), "Devices should come from the catalog file")
	require.NoError(t, tf.Type(KeySpace, KeyNext))
	require.True(t, tf.SeePlain("Glass"))

	require.NoError(t, tf.SendCtrlC())
}
