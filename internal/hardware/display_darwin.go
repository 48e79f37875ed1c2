//go:build darwin

package hardware

import (
	"context"
	"fmt"
	"os/exec"
)

func displayNames(ctx context.Context, _ string) ([]string, error) {
	out, err := exec.CommandContext(ctx, "system_profiler", "SPDisplaysDataType").Output()
	if err != nil {
		return nil, fmt.Errorf("system_profiler failed: %w", err)
	}
	return parseSystemProfilerDisplays(string(out)), nil
}

// gpuSourceAvailable has nothing to pre-check; ghw reports its own errors here.
func gpuSourceAvailable(string) error { return nil }
