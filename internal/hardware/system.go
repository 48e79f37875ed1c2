package hardware

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jaypipes/ghw"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"
)

// errUnsupported is returned by platform queries that have no implementation
// on the running OS.
var errUnsupported = errors.New("not supported on this platform")

// ghwUnknown is the placeholder ghw reports for attributes it could not read.
const ghwUnknown = "unknown"

// SystemCollector queries the local machine. CPU, memory and storage come from
// gopsutil; GPU, memory modules, baseboard and BIOS from ghw; displays from
// platform utilities.
//
// The zero value reads from "/".
type SystemCollector struct {
	// root is the filesystem root ghw and the sysfs readers look under.
	root string
}

// NewSystemCollector returns a Collector for the current machine.
func NewSystemCollector() *SystemCollector {
	return &SystemCollector{root: "/"}
}

func (s SystemCollector) rootDir() string {
	if s.root == "" {
		return "/"
	}
	return s.root
}

func (s SystemCollector) ghwOptions() []*ghw.WithOption {
	return []*ghw.WithOption{ghw.WithDisableWarnings(), ghw.WithChroot(s.rootDir())}
}

// CPU returns every field it could read. When some of them fail the partial
// value is returned together with the joined errors.
func (SystemCollector) CPU(ctx context.Context) (CPU, error) {
	var (
		c    CPU
		errs []error
	)

	infos, err := cpu.InfoWithContext(ctx)
	switch {
	case err != nil:
		errs = append(errs, fmt.Errorf("read cpu info: %w", err))
	case len(infos) == 0:
		errs = append(errs, errors.New("no cpu reported"))
	default:
		c.Model = strings.TrimSpace(infos[0].ModelName)
		if c.Model == "" {
			errs = append(errs, errors.New("cpu model name is empty"))
		}
	}

	if c.PhysicalCores, err = cpu.CountsWithContext(ctx, false); err != nil {
		errs = append(errs, fmt.Errorf("count physical cores: %w", err))
	}
	if c.LogicalCores, err = cpu.CountsWithContext(ctx, true); err != nil {
		errs = append(errs, fmt.Errorf("count logical cores: %w", err))
	}

	return c, errors.Join(errs...)
}

func (s SystemCollector) GPUs(ctx context.Context) ([]string, error) {
	if err := gpuSourceAvailable(s.rootDir()); err != nil {
		return nil, err
	}
	info, err := ghw.GPU(s.ghwOptions()...)
	if err != nil {
		return nil, fmt.Errorf("read gpu info: %w", err)
	}
	names := make([]string, 0, len(info.GraphicsCards))
	for _, card := range info.GraphicsCards {
		if name := graphicsCardName(card); name != "" {
			names = append(names, name)
		}
	}
	return names, nil
}

// graphicsCardName prefers the PCI product name and falls back to the vendor
// name, then the bus address.
func graphicsCardName(card *ghw.GraphicsCard) string {
	if card == nil {
		return ""
	}
	if dev := card.DeviceInfo; dev != nil {
		if dev.Product != nil && dev.Product.Name != "" {
			return dev.Product.Name
		}
		if dev.Vendor != nil && dev.Vendor.Name != "" {
			return dev.Vendor.Name
		}
	}
	return card.Address
}

func (s SystemCollector) RAM(ctx context.Context) (RAM, error) {
	modules, err := memoryModules(ctx, s.ghwOptions())
	if err != nil {
		return RAM{}, fmt.Errorf("read memory modules: %w", err)
	}
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return RAM{}, fmt.Errorf("read virtual memory: %w", err)
	}
	return RAM{Modules: modules, TotalGB: RoundGB(vm.Total)}, nil
}

// Storage lists mounted physical partitions. Partitions whose usage cannot be
// read are skipped.
func (SystemCollector) Storage(ctx context.Context) ([]StorageDevice, error) {
	parts, err := disk.PartitionsWithContext(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("list partitions: %w", err)
	}
	devices := make([]StorageDevice, 0, len(parts))
	for _, p := range parts {
		usage, err := disk.UsageWithContext(ctx, p.Mountpoint)
		if err != nil {
			continue
		}
		devices = append(devices, StorageDevice{
			Device:     p.Device,
			Mountpoint: p.Mountpoint,
			FSType:     p.Fstype,
			TotalGB:    RoundGB(usage.Total),
		})
	}
	return devices, nil
}

func (s SystemCollector) Board(ctx context.Context) (Board, error) {
	opts := s.ghwOptions()
	bb, err := ghw.Baseboard(opts...)
	if err != nil {
		return Board{}, fmt.Errorf("read baseboard info: %w", err)
	}
	bios, err := ghw.BIOS(opts...)
	if err != nil {
		return Board{}, fmt.Errorf("read bios info: %w", err)
	}
	product, err := ghw.Product(opts...)
	if err != nil {
		return Board{}, fmt.Errorf("read product info: %w", err)
	}
	return composeBoard(
		boardIdentity{vendor: bb.Vendor, product: bb.Product, version: bb.Version},
		biosIdentity{vendor: bios.Vendor, version: bios.Version, serial: product.SerialNumber},
	)
}

type boardIdentity struct{ vendor, product, version string }

type biosIdentity struct{ vendor, version, serial string }

// composeBoard builds the Board descriptors. Baseboard vendor and product and
// BIOS vendor and version must be known; ghw reports "unknown" rather than an
// error when the DMI tables are missing.
func composeBoard(bb boardIdentity, bios biosIdentity) (Board, error) {
	if !known(bb.vendor) || !known(bb.product) {
		return Board{}, fmt.Errorf("baseboard identity unavailable (vendor %q, product %q)", bb.vendor, bb.product)
	}
	if !known(bios.vendor) || !known(bios.version) {
		return Board{}, fmt.Errorf("bios identity unavailable (vendor %q, version %q)", bios.vendor, bios.version)
	}
	return Board{
		Motherboard: FormatMotherboard(bb.vendor, bb.product, bb.version),
		BIOS:        FormatBIOS(bios.vendor, bios.version, bios.serial),
	}, nil
}

func known(v string) bool {
	v = strings.TrimSpace(v)
	return v != "" && !strings.EqualFold(v, ghwUnknown)
}

func (s SystemCollector) Displays(ctx context.Context) ([]string, error) {
	names, err := displayNames(ctx, s.rootDir())
	if err != nil {
		return nil, fmt.Errorf("read displays: %w", err)
	}
	return names, nil
}

// FormatMotherboard composes the motherboard descriptor.
func FormatMotherboard(vendor, product, version string) string {
	return fmt.Sprintf("%s %s (v%s)", vendor, product, version)
}

// FormatBIOS composes the BIOS descriptor.
func FormatBIOS(vendor, version, serial string) string {
	return fmt.Sprintf("%s %s (SN: %s)", vendor, version, serial)
}
