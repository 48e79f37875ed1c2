package hardware

import (
	"bytes"
	"strings"
)

// nonEmptyLines splits command output into trimmed, non-empty lines.
func nonEmptyLines(out string) []string {
	var lines []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// parseSystemProfilerDisplays extracts display names from the output of
// `system_profiler SPDisplaysDataType`. Displays are the direct children of
// each "Displays:" section, one per GPU.
func parseSystemProfilerDisplays(out string) []string {
	var names []string
	sectionIndent := -1
	childIndent := -1
	for _, line := range strings.Split(out, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		indent := len(line) - len(strings.TrimLeft(line, " \t"))

		if trimmed == "Displays:" {
			sectionIndent = indent
			childIndent = -1
			continue
		}
		if sectionIndent < 0 {
			continue
		}
		if indent <= sectionIndent {
			sectionIndent = -1
			continue
		}
		if childIndent < 0 {
			childIndent = indent
		}
		if indent == childIndent && strings.HasSuffix(trimmed, ":") {
			names = append(names, strings.TrimSuffix(trimmed, ":"))
		}
	}
	return names
}

// edidMonitorName returns the monitor name stored in an EDID descriptor
// block (tag 0xFC), or "" if none is present.
func edidMonitorName(edid []byte) string {
	const (
		firstDescriptor = 54
		descriptorLen   = 18
		descriptorCount = 4
		tagMonitorName  = 0xFC
	)
	if len(edid) < firstDescriptor+descriptorLen*descriptorCount {
		return ""
	}
	for i := 0; i < descriptorCount; i++ {
		d := edid[firstDescriptor+i*descriptorLen : firstDescriptor+(i+1)*descriptorLen]
		if d[0] != 0 || d[1] != 0 || d[2] != 0 || d[3] != tagMonitorName {
			continue
		}
		text := d[5:]
		if n := bytes.IndexByte(text, 0x0A); n >= 0 {
			text = text[:n]
		}
		return strings.TrimSpace(string(text))
	}
	return ""
}

// drmConnectorName strips the "cardN-" prefix from a DRM connector
// directory name, e.g. "card0-HDMI-A-1" becomes "HDMI-A-1".
func drmConnectorName(dir string) string {
	if !strings.HasPrefix(dir, "card") {
		return dir
	}
	if i := strings.IndexByte(dir, '-'); i >= 0 {
		return dir[i+1:]
	}
	return dir
}
