//go:build e2e && unix

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWideLayoutShowsSidebar(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t).WithSize(40, 120)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp())
	require.True(t, tf.Ready())
	require.True(t, tf.SeePlain("Brand"), "brand panel should be visible in the sidebar")
	require.True(t, tf.SeePlain("viewed"), "results should show progress")
	require.False(t, strings.Contains(tf.SnapshotPlain(), "[f] Filter & Sort"))
}

func TestNarrowLayoutUsesDrawer(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t).WithSize(30, 80)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp())
	require.True(t, tf.Ready())
	require.True(t, tf.SeePlain("[f] Filter & Sort"))

	tf.SendKeys(KeyDrawer)
	require.True(t, tf.SeePlain("esc to close"), "drawer should open")
	require.True(t, tf.SeePlain("Brand"))

	tf.SendKeys(KeyEsc)
	time.Sleep(100 * time.Millisecond)
	tf.Quit()
}

func TestExpandAllOpensEveryPanel(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t).WithSize(50, 120)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp())
	require.True(t, tf.Ready())
	require.True(t, tf.SeePlain("Brand"))

	// Everything collapses, then everything opens
	tf.SendKeys(KeyExpandAll)
	time.Sleep(300 * time.Millisecond)
	tf.SendKeys(KeyExpandAll)
	require.True(t, tf.SeePlain("★★★★"), "rating panel values should show")
}

func TestConfiguredCategories(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	workspace, err := tf.CreateTestWorkspace()
	require.NoError(t, err)

	configPath := filepath.Join(workspace, "facetgrip.toml")
	require.NoError(t, os.WriteFile(configPath, []byte(`
version = 1

[[categories]]
name = "All"

[[categories.refinements]]
type = "list"
header = "Maker"
attributes = ["brand"]
expanded = true
`), 0644))

	require.NoError(t, tf.StartApp("--config", configPath))
	require.True(t, tf.Ready())
	require.True(t, tf.SeePlain("Maker"), "configured panel header should show")
}
