//go:build windows

package hardware

import (
	"context"
	"fmt"
)

func displayNames(ctx context.Context, _ string) ([]string, error) {
	out, err := psQuery(ctx, "Get-CimInstance -ClassName Win32_DesktopMonitor | ForEach-Object { $_.Name }")
	if err != nil {
		return nil, fmt.Errorf("PowerShell Win32_DesktopMonitor query failed: %w", err)
	}
	return nonEmptyLines(out), nil
}

// gpuSourceAvailable has nothing to pre-check; ghw queries WMI and reports
// its own errors.
func gpuSourceAvailable(string) error { return nil }
