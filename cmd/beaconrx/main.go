package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/awnumar/memguard"

	"github.com/tusharlock10/beaconrx-fingerprint/internal/hardware"
)

// version is set at build time via -ldflags "-X main.version=<version>"
var version = "dev"

func main() {
	// Wipe locked buffers if the process is interrupted mid-derivation.
	memguard.CatchInterrupt()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	code := execute(ctx, os.Args[1:], hardware.NewSystemCollector(), os.Stdout, os.Stderr)
	stop()

	memguard.Purge()
	os.Exit(code)
}
