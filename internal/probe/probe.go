// Package probe collects the system facts shown in the banner. Each probe is
// independent, reads its data source once and falls back to a documented
// default when that source is unavailable; no probe surfaces an error to the
// caller.
package probe

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/hyperfetch/hyperfetch/internal/config"
)

const timestampLayout = "2006-01-02 15:04:05"

// Snapshot is the immutable record of one collection run. Optional fields are
// empty (or zero) when the underlying data source was unavailable.
type Snapshot struct {
	OS     string
	Kernel string
	User   string
	Host   string

	MemoryTotalGB     float64
	MemoryAvailableGB float64

	LocalIP  string
	PublicIP string

	CPU string

	InitSystem string
	DesktopEnv string
	Terminal   string

	Uptime string
	Shell  string

	Timestamp string
}

// Collect runs each enabled probe once; a probe whose display flag is off is
// never invoked, so disabling show_ip also suppresses the outbound lookup and
// disabling show_cpu never execs the topology utility. The context bounds the
// single network call (public IP lookup); everything else is a local read.
func Collect(ctx context.Context, cfg config.Config) Snapshot {
	s := Snapshot{
		OS:     osName(),
		User:   userName(),
		Host:   hostName(),
		Uptime: uptime(),
		Shell:  shell(),
	}

	if cfg.ShowKernel {
		s.Kernel = kernel()
	}
	if cfg.ShowMemory {
		s.MemoryTotalGB, s.MemoryAvailableGB = memory()
	}
	if cfg.ShowIP {
		s.LocalIP = localIP()
		s.PublicIP = publicIP(ctx, publicIPURL)
	}
	if cfg.ShowCPU {
		s.CPU = cpuModel()
	}
	if cfg.ShowUnixInfo {
		s.InitSystem, s.DesktopEnv, s.Terminal = unixInfo()
	}
	if cfg.ShowDatetime {
		s.Timestamp = time.Now().UTC().Format(timestampLayout)
	}

	return s
}

func toGB(bytes uint64) float64 {
	return float64(bytes) / (1 << 30)
}

func genericOSName() string {
	if runtime.GOOS == "" {
		return "Unknown"
	}
	return strings.ToUpper(runtime.GOOS[:1]) + runtime.GOOS[1:]
}

func shell() string {
	if sh := os.Getenv("SHELL"); sh != "" {
		return filepath.Base(sh)
	}
	return ""
}

func formatUptime(d time.Duration) string {
	d = d.Round(time.Minute)
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	mins := int(d.Minutes()) % 60

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh %dm", days, hours, mins)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, mins)
	default:
		return fmt.Sprintf("%dm", mins)
	}
}

// charsToString converts a NUL-terminated C char buffer to a Go string.
// It accepts both signed and unsigned byte representations.
func charsToString[T ~int8 | ~uint8](ca []T) string {
	buf := make([]byte, 0, len(ca))

	for _, c := range ca {
		if c == 0 {
			break
		}
		buf = append(buf, byte(c))
	}

	return string(buf)
}
