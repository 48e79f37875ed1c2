//go:build linux

package hardware

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// drmDir is the DRM class directory relative to the filesystem root. ghw
// enumerates graphics cards from the same place.
const drmDir = "sys/class/drm"

func displayNames(ctx context.Context, root string) ([]string, error) {
	return drmDisplays(filepath.Join(root, drmDir))
}

// gpuSourceAvailable reports an error when the DRM class directory is
// missing. ghw returns an empty card list rather than an error in that case.
func gpuSourceAvailable(root string) error {
	dir := filepath.Join(root, drmDir)
	if _, err := os.Stat(dir); err != nil {
		return fmt.Errorf("gpu source unavailable: %w", err)
	}
	return nil
}

// drmDisplays lists connected DRM connectors under dir. Each display is named
// after the monitor name in its EDID when present, otherwise after the
// connector.
func drmDisplays(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", dir, err)
	}
	var names []string
	for _, e := range entries {
		connector := filepath.Join(dir, e.Name())
		status, err := os.ReadFile(filepath.Join(connector, "status"))
		if err != nil || strings.TrimSpace(string(status)) != "connected" {
			continue
		}
		name := drmConnectorName(e.Name())
		if edid, err := os.ReadFile(filepath.Join(connector, "edid")); err == nil {
			if monitor := edidMonitorName(edid); monitor != "" {
				name = monitor
			}
		}
		names = append(names, name)
	}
	return names, nil
}
