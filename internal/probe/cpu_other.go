//go:build !linux

package probe

func cpuTiers() []cpuTier {
	return nil
}
