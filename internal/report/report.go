// Package report renders the human-readable summary printed on stdout.
package report

import (
	"bytes"
	"fmt"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/tusharlock10/beaconrx-fingerprint/internal/fingerprint"
	"github.com/tusharlock10/beaconrx-fingerprint/internal/hardware"
)

// Write prints the hardware summary, the compact hardware string and the
// fingerprint stages to w, in that order.
func Write(w io.Writer, rec hardware.Record, hw string, res fingerprint.Result) error {
	var buf bytes.Buffer

	buf.WriteString("=== SYSTEM HARDWARE CONFIGURATION ===\n")

	fmt.Fprintf(&buf, "\nCPU: %s\n", rec.CPU.Model)
	fmt.Fprintf(&buf, "Physical cores: %d\n", rec.CPU.PhysicalCores)
	fmt.Fprintf(&buf, "Logical cores: %d\n", rec.CPU.LogicalCores)

	writeList(&buf, "GPU(s):", rec.GPUs)
	writeList(&buf, "DISPLAYS:", rec.Displays)
	writeList(&buf, "RAM MODULES:", rec.RAM.Modules)
	fmt.Fprintf(&buf, "\nTOTAL RAM: %s GB\n", fingerprint.FormatGB(rec.RAM.TotalGB))

	buf.WriteString("\nSTORAGE:\n")
	for _, d := range rec.Storage {
		fmt.Fprintf(&buf, "%s (%s): %s GB\n", d.Device, d.FSType, fingerprint.FormatGB(d.TotalGB))
	}

	buf.WriteString("\nMOTHERBOARD & BIOS:\n")
	fmt.Fprintf(&buf, "Board: %s\n", rec.Board.Motherboard)
	fmt.Fprintf(&buf, "BIOS: %s\n", rec.Board.BIOS)

	buf.WriteString("\nCOMPACT HARDWARE STRING:\n")
	buf.WriteString(hw + "\n")

	iterations := message.NewPrinter(language.English).Sprintf("%d", fingerprint.Iterations)
	switch res.Pipeline {
	case fingerprint.PipelineV1:
		buf.WriteString("\nSECURE FINGERPRINTING STAGES:\n")
		buf.WriteString("1. SHA-256 Hash:\n")
		buf.WriteString(res.Digest + "\n")
		fmt.Fprintf(&buf, "\n2. PBKDF2 Hash (%s iterations):\n", iterations)
		buf.WriteString(res.Fingerprint + "\n")
	default:
		fmt.Fprintf(&buf, "\nHARDWARE FINGERPRINT (PBKDF2-HMAC-SHA256, %s iterations):\n", iterations)
		buf.WriteString(res.Fingerprint + "\n")
	}

	_, err := w.Write(buf.Bytes())
	return err
}

func writeList(buf *bytes.Buffer, title string, items []string) {
	fmt.Fprintf(buf, "\n%s\n", title)
	for i, item := range items {
		fmt.Fprintf(buf, "%d. %s\n", i+1, item)
	}
}
