//go:build windows

package hardware

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/jaypipes/ghw"
)

// psQuery runs a PowerShell command and returns the trimmed stdout.
// Uses -NoProfile and -NonInteractive for speed and predictability.
// wmic is deprecated/removed on Windows 11; Get-CimInstance is the replacement.
func psQuery(ctx context.Context, command string) (string, error) {
	out, err := exec.CommandContext(ctx,
		"powershell", "-NoProfile", "-NonInteractive", "-Command", command,
	).Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// memoryModules returns "<manufacturer> <part number>" for each DIMM. ghw
// omits part numbers, so CIM is queried directly.
func memoryModules(ctx context.Context, _ []*ghw.WithOption) ([]string, error) {
	out, err := psQuery(ctx, `Get-CimInstance -ClassName Win32_PhysicalMemory | ForEach-Object { "$($_.Manufacturer) $($_.PartNumber)" }`)
	if err != nil {
		return nil, fmt.Errorf("PowerShell Win32_PhysicalMemory query failed: %w", err)
	}
	return nonEmptyLines(out), nil
}
