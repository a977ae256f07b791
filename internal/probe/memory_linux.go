//go:build linux

package probe

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/tklauser/go-sysconf"
)

type memRaw struct {
	Total     uint64
	Available uint64
}

func memory() (totalGB, availableGB float64) {
	raw, err := parseMemInfo()
	if err != nil {
		raw = memFromSysconf()
	}

	return toGB(raw.Total), toGB(raw.Available)
}

func parseMemInfo() (memRaw, error) {
	f, err := os.Open("/proc/meminfo")
	if err != nil {
		return memRaw{}, fmt.Errorf("opening /proc/meminfo: %w", err)
	}
	defer f.Close()

	return parseMemInfoFrom(f)
}

func parseMemInfoFrom(r io.Reader) (memRaw, error) {
	var raw memRaw

	targets := map[string]*uint64{
		"MemTotal":     &raw.Total,
		"MemAvailable": &raw.Available,
	}

	found := 0
	scanner := bufio.NewScanner(r)

	for scanner.Scan() && found < len(targets) {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}

		key := strings.TrimSuffix(fields[0], ":")
		target, ok := targets[key]
		if !ok || *target != 0 {
			continue
		}

		value, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			return memRaw{}, fmt.Errorf("parsing %s: %w", key, err)
		}

		// /proc/meminfo reports kB
		*target = value * 1024
		found++
	}

	if err := scanner.Err(); err != nil {
		return memRaw{}, fmt.Errorf("reading /proc/meminfo: %w", err)
	}
	if found < len(targets) {
		return memRaw{}, fmt.Errorf("missing fields in /proc/meminfo: found %d of %d", found, len(targets))
	}

	return raw, nil
}

// memFromSysconf is the fallback when /proc/meminfo is unreadable. AVPHYS
// undercounts reclaimable page cache relative to MemAvailable, which is
// acceptable for a last-resort tier.
func memFromSysconf() memRaw {
	pageSize, err := sysconf.Sysconf(sysconf.SC_PAGE_SIZE)
	if err != nil || pageSize <= 0 {
		return memRaw{}
	}

	var raw memRaw
	if pages, err := sysconf.Sysconf(sysconf.SC_PHYS_PAGES); err == nil && pages > 0 {
		raw.Total = uint64(pages) * uint64(pageSize)
	}
	if pages, err := sysconf.Sysconf(sysconf.SC_AVPHYS_PAGES); err == nil && pages > 0 {
		raw.Available = uint64(pages) * uint64(pageSize)
	}

	return raw
}
