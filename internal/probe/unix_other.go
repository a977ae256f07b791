//go:build !linux

package probe

import "os"

func unixInfo() (initSystem, desktopEnv, terminal string) {
	return "", "", os.Getenv("TERM")
}

func uptime() string {
	return ""
}
