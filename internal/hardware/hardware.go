// Package hardware gathers the machine attributes that make up the hardware
// string. Every query is allowed to fail; Collect replaces failures with fixed
// fallback values so the returned Record is always fully populated.
package hardware

import (
	"context"
	"strconv"

	"github.com/rs/zerolog"
)

// Fallback values substituted when a query fails.
const (
	FallbackCPUModel    = "Unknown"
	FallbackGPU         = "GPU detection failed"
	NoGPUDetected       = "No GPU detected"
	FallbackRAMModule   = "RAM details detection failed"
	FallbackMotherboard = "Unknown"
	FallbackBIOS        = "Unknown"
	FallbackDisplay     = "Display detection failed"
	NoDisplaysDetected  = "No displays detected"
	bytesPerGiB         = 1 << 30
)

type CPU struct {
	Model         string
	PhysicalCores int
	LogicalCores  int
}

type RAM struct {
	Modules []string // one descriptor per installed module
	TotalGB float64  // GiB, rounded to one decimal
}

type StorageDevice struct {
	Device     string
	Mountpoint string
	FSType     string
	TotalGB    float64
}

type Board struct {
	Motherboard string // "<vendor> <product> (v<version>)"
	BIOS        string // "<vendor> <version> (SN: <serial>)"
}

// Record is a snapshot of every hardware category.
type Record struct {
	CPU      CPU
	GPUs     []string
	RAM      RAM
	Storage  []StorageDevice
	Board    Board
	Displays []string
}

// Collector exposes one query per hardware category. Implementations return
// an error on any failure; they never substitute fallbacks themselves. CPU may
// return the fields it did read alongside its error.
type Collector interface {
	CPU(ctx context.Context) (CPU, error)
	GPUs(ctx context.Context) ([]string, error)
	RAM(ctx context.Context) (RAM, error)
	Storage(ctx context.Context) ([]StorageDevice, error)
	Board(ctx context.Context) (Board, error)
	Displays(ctx context.Context) ([]string, error)
}

// Collect runs every query of c in a fixed order and returns the resulting
// record. Failed queries are logged at debug level and replaced by their
// fallback; Collect itself never fails.
func Collect(ctx context.Context, c Collector, logger zerolog.Logger) Record {
	var rec Record

	cpu, err := c.CPU(ctx)
	if err != nil {
		logFallback(logger, "cpu", err)
		if cpu.Model == "" {
			cpu.Model = FallbackCPUModel
		}
	}
	rec.CPU = cpu

	gpus, err := c.GPUs(ctx)
	switch {
	case err != nil:
		logFallback(logger, "gpu", err)
		gpus = []string{FallbackGPU}
	case len(gpus) == 0:
		gpus = []string{NoGPUDetected}
	}
	rec.GPUs = gpus

	ram, err := c.RAM(ctx)
	if err != nil {
		logFallback(logger, "ram", err)
		ram = RAM{Modules: []string{FallbackRAMModule}}
	}
	if ram.Modules == nil {
		ram.Modules = []string{}
	}
	rec.RAM = ram

	storage, err := c.Storage(ctx)
	if err != nil {
		logFallback(logger, "storage", err)
		storage = nil
	}
	if storage == nil {
		storage = []StorageDevice{}
	}
	rec.Storage = storage

	board, err := c.Board(ctx)
	if err != nil {
		logFallback(logger, "board", err)
		board = Board{Motherboard: FallbackMotherboard, BIOS: FallbackBIOS}
	}
	rec.Board = board

	displays, err := c.Displays(ctx)
	switch {
	case err != nil:
		logFallback(logger, "display", err)
		displays = []string{FallbackDisplay}
	case len(displays) == 0:
		displays = []string{NoDisplaysDetected}
	}
	rec.Displays = displays

	return rec
}

func logFallback(logger zerolog.Logger, category string, err error) {
	logger.Debug().
		Str("category", category).
		Err(err).
		Msg("hardware query failed, using fallback value")
}

// RoundGB converts a byte count to GiB rounded to one decimal place. Exact
// ties round to even, so 0.25 GiB becomes 0.2.
func RoundGB(bytes uint64) float64 {
	gb := float64(bytes) / bytesPerGiB
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(gb, 'f', 1, 64), 64)
	if err != nil {
		return gb
	}
	return rounded
}
