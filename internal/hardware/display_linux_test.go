//go:build linux

package hardware

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConnector(t *testing.T, root, name, status string, edid []byte) {
	t.Helper()
	dir := filepath.Join(root, name)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "status"), []byte(status+"\n"), 0o644))
	if edid != nil {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "edid"), edid, 0o644))
	}
}

func TestDRMDisplays(t *testing.T) {
	root := t.TempDir()
	writeConnector(t, root, "card0-DP-1", "disconnected", nil)
	writeConnector(t, root, "card0-HDMI-A-1", "connected", edidWithName("DELL U2415"))
	writeConnector(t, root, "card0-eDP-1", "connected", []byte{})
	require.NoError(t, os.WriteFile(filepath.Join(root, "version"), []byte("drm 1.1.0\n"), 0o644))

	got, err := drmDisplays(root)
	require.NoError(t, err)
	require.Equal(t, []string{"DELL U2415", "eDP-1"}, got)
}

func TestDRMDisplays_MissingRoot(t *testing.T) {
	_, err := drmDisplays(filepath.Join(t.TempDir(), "absent"))
	require.Error(t, err)
}
