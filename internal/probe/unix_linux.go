//go:build linux

package probe

import (
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sys/unix"
)

func unixInfo() (initSystem, desktopEnv, terminal string) {
	return detectInitSystem("/"), desktopFromEnv(os.Getenv), os.Getenv("TERM")
}

// detectInitSystem checks the conventional filesystem markers under root:
// the systemd runtime socket directory, then the SysV init binary.
func detectInitSystem(root string) string {
	if _, err := os.Stat(filepath.Join(root, "run", "systemd", "system")); err == nil {
		return "systemd"
	}
	if _, err := os.Stat(filepath.Join(root, "sbin", "init")); err == nil {
		return "sysvinit"
	}

	return "unknown"
}

func desktopFromEnv(getenv func(string) string) string {
	for _, key := range []string{"XDG_CURRENT_DESKTOP", "DESKTOP_SESSION"} {
		if v := getenv(key); v != "" {
			return v
		}
	}

	return ""
}

func uptime() string {
	var si unix.Sysinfo_t
	if err := unix.Sysinfo(&si); err != nil {
		return ""
	}

	return formatUptime(time.Duration(si.Uptime) * time.Second)
}
