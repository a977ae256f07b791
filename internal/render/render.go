// Package render formats a snapshot and display configuration into the
// terminal banner. It is pure: no probing, no I/O besides the final write.
package render

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/hyperfetch/hyperfetch/internal/config"
	"github.com/hyperfetch/hyperfetch/internal/probe"
)

// ANSI color codes for terminal output formatting
const (
	colorReset = "\033[0m"
	colorBlue  = "\033[34m"
	colorCyan  = "\033[36m"
)

// ansiRegex matches ANSI escape codes for removal/measurement purposes
var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// Lines composes the banner. Field order is fixed; each line is included only
// when its display flag is set and its value is present.
func Lines(s probe.Snapshot, cfg config.Config, logo []string) []string {
	lines := append([]string{}, logo...)
	if len(logo) > 0 {
		lines = append(lines, "")
	}

	if cfg.ShowDatetime && s.Timestamp != "" {
		lines = append(lines, field("Date", s.Timestamp))
	}

	lines = append(lines, field("OS", s.OS))

	if cfg.ShowKernel && s.Kernel != "" {
		lines = append(lines, field("Kernel", s.Kernel))
	}

	userHost := colorize(s.User, colorCyan) + "@" + colorize(s.Host, colorCyan)
	lines = append(lines, userHost, strings.Repeat("-", visibleWidth(userHost)))

	if s.Uptime != "" {
		lines = append(lines, field("Uptime", s.Uptime))
	}
	if s.Shell != "" {
		lines = append(lines, field("Shell", s.Shell))
	}

	if cfg.ShowMemory && s.MemoryTotalGB > 0 {
		mem := fmt.Sprintf("%.2f GB / %.2f GB", s.MemoryAvailableGB, s.MemoryTotalGB)
		lines = append(lines, field("Memory", mem))
	}

	if cfg.ShowIP {
		if s.LocalIP != "" {
			lines = append(lines, field("Local IP", s.LocalIP))
		}
		if s.PublicIP != "" {
			lines = append(lines, field("Public IP", s.PublicIP))
		}
	}

	if cfg.ShowUnixInfo {
		if s.InitSystem != "" {
			lines = append(lines, field("Init", s.InitSystem))
		}
		if s.DesktopEnv != "" {
			lines = append(lines, field("DE", s.DesktopEnv))
		}
		if s.Terminal != "" {
			lines = append(lines, field("Terminal", s.Terminal))
		}
	}

	if cfg.ShowCPU && s.CPU != "" {
		lines = append(lines, field("CPU", s.CPU))
	}

	lines = append(lines, "", colorBar())

	return lines
}

// Fprint writes the banner lines to w.
func Fprint(w io.Writer, lines []string) {
	for _, line := range lines {
		fmt.Fprintln(w, line)
	}
}

func field(label, value string) string {
	return colorize(label, colorBlue) + ": " + value
}

func colorize(text, color string) string {
	return color + text + colorReset
}

// visibleWidth measures display width with ANSI escapes stripped, so colored
// text does not break alignment.
func visibleWidth(s string) int {
	return runewidth.StringWidth(ansiRegex.ReplaceAllString(s, ""))
}

// colorBar renders the 16 basic background colors as a reference strip.
func colorBar() string {
	var b strings.Builder
	for bg := 40; bg <= 47; bg++ {
		fmt.Fprintf(&b, "\033[%dm   ", bg)
	}
	for bg := 100; bg <= 107; bg++ {
		fmt.Fprintf(&b, "\033[%dm   ", bg)
	}
	b.WriteString(colorReset)

	return b.String()
}
