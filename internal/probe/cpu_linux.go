//go:build linux

package probe

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strconv"
	"strings"
)

const cpuFreqPath = "/sys/devices/system/cpu/cpu0/cpufreq/cpuinfo_max_freq"

func cpuTiers() []cpuTier {
	return []cpuTier{
		{name: "lscpu", probe: cpuFromLscpu},
		{name: "cpuinfo", probe: cpuFromProcInfo},
		{name: "synthetic", probe: cpuSynthetic},
	}
}

func cpuFromLscpu() (string, error) {
	out, err := exec.Command("lscpu").Output()
	if err != nil {
		return "", err
	}

	return cpuFromLscpuOutput(bytes.NewReader(out))
}

func cpuFromLscpuOutput(r io.Reader) (string, error) {
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		line := scanner.Text()

		if strings.HasPrefix(line, "Model name:") {
			return strings.TrimSpace(strings.TrimPrefix(line, "Model name:")), nil
		}
	}

	return "", scanner.Err()
}

func cpuFromProcInfo() (string, error) {
	f, err := os.Open("/proc/cpuinfo")
	if err != nil {
		return "", err
	}
	defer f.Close()

	return cpuFromCPUInfo(f)
}

func cpuFromCPUInfo(r io.Reader) (string, error) {
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		line := scanner.Text()

		if strings.HasPrefix(line, "model name") {
			parts := strings.SplitN(line, ":", 2)
			if len(parts) == 2 {
				return strings.TrimSpace(parts[1]), nil
			}
		}
	}

	return "", scanner.Err()
}

// cpuSynthetic builds a description from core count and the cpufreq maximum
// when no model name is available anywhere.
func cpuSynthetic() (string, error) {
	ghz, err := maxFreqGHz(cpuFreqPath)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%d-core CPU @ %.2fGHz", runtime.NumCPU(), ghz), nil
}

func maxFreqGHz(path string) (float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}

	// cpufreq reports kHz
	khz, err := strconv.ParseFloat(strings.TrimSpace(string(data)), 64)
	if err != nil {
		return 0, fmt.Errorf("parsing %s: %w", path, err)
	}

	return khz / 1e6, nil
}
