// Package fingerprint turns a hardware record and credentials into the
// hardware string and derives the final fingerprint from it.
package fingerprint

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/tusharlock10/beaconrx-fingerprint/internal/config"
	"github.com/tusharlock10/beaconrx-fingerprint/internal/hardware"
)

// Build serializes creds and rec into the hardware string. Tokens are emitted
// in a fixed order with all whitespace removed and joined without a
// separator:
//
//	username passkey cpuModel P<phys>L<logical> gpu... ramModule... T<total>GB
//	(device fstype <total>GB)... motherboard bios display...
//
// Field boundaries are not recoverable from the result, so two different
// records can in principle serialize to the same string.
func Build(creds config.Credentials, rec hardware.Record) string {
	var b strings.Builder

	b.WriteString(creds.Username)
	b.WriteString(creds.Passkey)

	writeToken(&b, rec.CPU.Model)
	b.WriteString("P" + strconv.Itoa(rec.CPU.PhysicalCores) + "L" + strconv.Itoa(rec.CPU.LogicalCores))

	for _, gpu := range rec.GPUs {
		writeToken(&b, gpu)
	}

	for _, module := range rec.RAM.Modules {
		writeToken(&b, module)
	}
	b.WriteString("T" + FormatGB(rec.RAM.TotalGB) + "GB")

	for _, disk := range rec.Storage {
		writeToken(&b, disk.Device)
		writeToken(&b, disk.FSType)
		b.WriteString(FormatGB(disk.TotalGB) + "GB")
	}

	writeToken(&b, rec.Board.Motherboard)
	writeToken(&b, rec.Board.BIOS)

	for _, display := range rec.Displays {
		writeToken(&b, display)
	}

	return b.String()
}

// FormatGB renders a capacity with exactly one fractional digit.
func FormatGB(gb float64) string {
	return strconv.FormatFloat(gb, 'f', 1, 64)
}

func writeToken(b *strings.Builder, s string) {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
}
