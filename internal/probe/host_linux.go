//go:build linux

package probe

import (
	"bufio"
	"io"
	"os"
	"strings"

	"golang.org/x/sys/unix"
)

const osReleasePath = "/etc/os-release"

func osName() string {
	f, err := os.Open(osReleasePath)
	if err != nil {
		return genericOSName()
	}
	defer f.Close()

	if name := osNameFrom(f); name != "" {
		return name
	}
	return genericOSName()
}

// osNameFrom extracts the distribution name from os-release(5) content.
// PRETTY_NAME wins; NAME plus VERSION_ID is the fallback when a distribution
// omits it. Returns "" when neither is present.
func osNameFrom(r io.Reader) string {
	var name, version string
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		line := scanner.Text()

		switch {
		case strings.HasPrefix(line, "PRETTY_NAME="):
			if v := unquote(line[len("PRETTY_NAME="):]); v != "" {
				return v
			}
		case strings.HasPrefix(line, "NAME="):
			name = unquote(line[len("NAME="):])
		case strings.HasPrefix(line, "VERSION_ID="):
			version = unquote(line[len("VERSION_ID="):])
		}
	}

	if name == "" {
		return ""
	}
	return strings.TrimSpace(name + " " + version)
}

func unquote(s string) string {
	return strings.Trim(strings.TrimSpace(s), `"`)
}

func kernel() string {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return ""
	}

	return charsToString(uts.Release[:])
}
