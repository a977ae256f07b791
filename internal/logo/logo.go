// Package logo selects and loads the ASCII art printed above the banner.
package logo

import (
	"bufio"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

const fallbackFile = "unknown.txt"

// builtin is used when no logo file can be read at all.
var builtin = []string{
	`   ______`,
	`  / ____/`,
	` / /___  `,
	`/ ____/  `,
	`\_\      `,
}

// Load returns the logo lines for the configured name. Preference order:
// the configured file name, then "<goos>.txt", then "unknown.txt", then the
// built-in default. Unreadable candidates are skipped silently.
func Load(dir, name string) []string {
	for _, candidate := range candidates(name) {
		if candidate == "" {
			continue
		}

		lines, err := readLines(filepath.Join(dir, candidate))
		if err == nil && len(lines) > 0 {
			return lines
		}
	}

	return builtin
}

func candidates(name string) []string {
	return []string{
		name,
		strings.ToLower(runtime.GOOS) + ".txt",
		fallbackFile,
	}
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	return lines, scanner.Err()
}
