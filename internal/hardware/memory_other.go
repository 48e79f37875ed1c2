//go:build !windows

package hardware

import (
	"context"
	"strings"

	"github.com/jaypipes/ghw"
)

// memoryModules returns "<vendor> <label>" for each module ghw reports. ghw
// does not expose part numbers outside Windows.
func memoryModules(ctx context.Context, opts []*ghw.WithOption) ([]string, error) {
	info, err := ghw.Memory(opts...)
	if err != nil {
		return nil, err
	}
	modules := make([]string, 0, len(info.Modules))
	for _, m := range info.Modules {
		if m == nil {
			continue
		}
		if desc := strings.TrimSpace(m.Vendor + " " + m.Label); desc != "" {
			modules = append(modules, desc)
		}
	}
	return modules, nil
}
