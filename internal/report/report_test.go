package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tusharlock10/beaconrx-fingerprint/internal/fingerprint"
	"github.com/tusharlock10/beaconrx-fingerprint/internal/hardware"
)

func sampleRecord() hardware.Record {
	return hardware.Record{
		CPU:  hardware.CPU{Model: "Intel(R) Core(TM) i7", PhysicalCores: 4, LogicalCores: 8},
		GPUs: []string{"NVIDIA GeForce GTX 1080"},
		RAM:  hardware.RAM{Modules: []string{"Corsair CMK16", "Corsair CMK16"}, TotalGB: 32},
		Storage: []hardware.StorageDevice{
			{Device: "C:", FSType: "NTFS", TotalGB: 500},
			{Device: "D:", FSType: "exFAT", TotalGB: 931.5},
		},
		Board:    hardware.Board{Motherboard: "ASUS PRIME (v1.0)", BIOS: "AMI v2.1 (SN: 12345)"},
		Displays: []string{"Dell U2415"},
	}
}

func TestWrite_V2(t *testing.T) {
	var buf bytes.Buffer
	res := fingerprint.Result{Pipeline: fingerprint.PipelineV2, Fingerprint: strings.Repeat("ab", 32)}
	require.NoError(t, Write(&buf, sampleRecord(), "HWSTRING", res))

	want := `=== SYSTEM HARDWARE CONFIGURATION ===

CPU: Intel(R) Core(TM) i7
Physical cores: 4
Logical cores: 8

GPU(s):
1. NVIDIA GeForce GTX 1080

DISPLAYS:
1. Dell U2415

RAM MODULES:
1. Corsair CMK16
2. Corsair CMK16

TOTAL RAM: 32.0 GB

STORAGE:
C: (NTFS): 500.0 GB
D: (exFAT): 931.5 GB

MOTHERBOARD & BIOS:
Board: ASUS PRIME (v1.0)
BIOS: AMI v2.1 (SN: 12345)

COMPACT HARDWARE STRING:
HWSTRING

HARDWARE FINGERPRINT (PBKDF2-HMAC-SHA256, 100,000 iterations):
` + strings.Repeat("ab", 32) + "\n"
	require.Equal(t, want, buf.String())
}

func TestWrite_V1ShowsBothStages(t *testing.T) {
	var buf bytes.Buffer
	res := fingerprint.Result{Pipeline: fingerprint.PipelineV1, Digest: "digest", Fingerprint: "final"}
	require.NoError(t, Write(&buf, sampleRecord(), "HW", res))

	out := buf.String()
	assert.True(t, strings.HasSuffix(out,
		"SECURE FINGERPRINTING STAGES:\n1. SHA-256 Hash:\ndigest\n\n2. PBKDF2 Hash (100,000 iterations):\nfinal\n"))
	assert.Less(t, strings.Index(out, "COMPACT HARDWARE STRING"), strings.Index(out, "SECURE FINGERPRINTING"))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed pipe") }

func TestWrite_PropagatesWriterError(t *testing.T) {
	err := Write(failingWriter{}, sampleRecord(), "HW", fingerprint.Result{})
	require.EqualError(t, err, "closed pipe")
}
