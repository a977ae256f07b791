package probe

import "runtime"

// cpuTier is one step in the CPU detection chain. Tiers are tried in order
// and later tiers are strictly less precise, so ordering matters.
type cpuTier struct {
	name  string
	probe func() (string, error)
}

func cpuModel() string {
	return cpuModelFrom(cpuTiers())
}

// cpuModelFrom walks the tiers and returns the first non-empty result. A tier
// is skipped only when it errored or matched nothing.
func cpuModelFrom(tiers []cpuTier) string {
	for _, t := range tiers {
		model, err := t.probe()
		if err == nil && model != "" {
			return model
		}
	}

	return genericCPU()
}

func genericCPU() string {
	if runtime.GOARCH != "" {
		return runtime.GOARCH + " Processor"
	}
	return "Unknown Processor"
}
