package hardware

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNonEmptyLines(t *testing.T) {
	out := "Generic PnP Monitor\r\n\r\n  Dell U2415  \r\n"
	assert.Equal(t, []string{"Generic PnP Monitor", "Dell U2415"}, nonEmptyLines(out))
	assert.Nil(t, nonEmptyLines("   \n\n"))
}

const systemProfilerOutput = `Graphics/Displays:

    Apple M1:

      Chipset Model: Apple M1
      Type: GPU
      Bus: Built-In
      Total Number of Cores: 8
      Vendor: Apple (0x106b)
      Metal Family: Supported, Metal GPUFamily Apple 7
      Displays:
        Color LCD:
          Display Type: Built-In Retina LCD
          Resolution: 2560 x 1600 Retina
          Main Display: Yes
        DELL U2415:
          Resolution: 1920 x 1200 (WUXGA - Widescreen Ultra eXtended Graphics Array)
          UI Looks like: 1920 x 1200 @ 60.00Hz
          Rotation: Supported

    AMD Radeon Pro 5500M:

      Chipset Model: AMD Radeon Pro 5500M
      Displays:
        LG HDR 4K:
          Resolution: 3840 x 2160 (2160p/4K UHD 1 - Ultra High Definition)
`

func TestParseSystemProfilerDisplays(t *testing.T) {
	got := parseSystemProfilerDisplays(systemProfilerOutput)
	assert.Equal(t, []string{"Color LCD", "DELL U2415", "LG HDR 4K"}, got)
}

func TestParseSystemProfilerDisplays_NoDisplaysSection(t *testing.T) {
	out := "Graphics/Displays:\n\n    Apple M1:\n\n      Chipset Model: Apple M1\n"
	assert.Empty(t, parseSystemProfilerDisplays(out))
}

// edidWithName builds a 128-byte EDID whose second descriptor carries name.
func edidWithName(name string) []byte {
	edid := make([]byte, 128)
	d := edid[72:90]
	d[3] = 0xFC
	copy(d[5:], name+"\n")
	for i := 5 + len(name) + 1; i < len(d); i++ {
		d[i] = ' '
	}
	return edid
}

func TestEDIDMonitorName(t *testing.T) {
	assert.Equal(t, "DELL U2415", edidMonitorName(edidWithName("DELL U2415")))
	assert.Equal(t, "", edidMonitorName(make([]byte, 128)))
	assert.Equal(t, "", edidMonitorName([]byte{0x00, 0xFF}))
}

func TestDRMConnectorName(t *testing.T) {
	assert.Equal(t, "HDMI-A-1", drmConnectorName("card0-HDMI-A-1"))
	assert.Equal(t, "eDP-1", drmConnectorName("card1-eDP-1"))
	assert.Equal(t, "version", drmConnectorName("version"))
	assert.Equal(t, "card0", drmConnectorName("card0"))
}
