//go:build !linux && !darwin && !windows

package hardware

import "context"

func displayNames(context.Context, string) ([]string, error) {
	return nil, errUnsupported
}

func gpuSourceAvailable(string) error { return nil }
