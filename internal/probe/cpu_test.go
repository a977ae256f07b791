package probe

import (
	"errors"
	"testing"
)

func fixedTier(name, result string, err error) cpuTier {
	return cpuTier{
		name: name,
		probe: func() (string, error) {
			return result, err
		},
	}
}

func TestCPUModelFrom_TierOrdering(t *testing.T) {
	errUnavailable := errors.New("unavailable")

	tests := []struct {
		name  string
		tiers []cpuTier
		want  string
	}{
		{
			name: "first tier wins verbatim even when later tiers would succeed",
			tiers: []cpuTier{
				fixedTier("a", "Precise CPU Model", nil),
				fixedTier("b", "Less Precise", nil),
				fixedTier("c", "Even Less", nil),
			},
			want: "Precise CPU Model",
		},
		{
			name: "error advances to the next tier",
			tiers: []cpuTier{
				fixedTier("a", "", errUnavailable),
				fixedTier("b", "Second Choice", nil),
			},
			want: "Second Choice",
		},
		{
			name: "empty result without error also advances",
			tiers: []cpuTier{
				fixedTier("a", "", nil),
				fixedTier("b", "Second Choice", nil),
			},
			want: "Second Choice",
		},
		{
			name: "all tiers fail falls back to generic",
			tiers: []cpuTier{
				fixedTier("a", "", errUnavailable),
				fixedTier("b", "", errUnavailable),
			},
			want: genericCPU(),
		},
		{
			name:  "no tiers at all",
			tiers: nil,
			want:  genericCPU(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cpuModelFrom(tt.tiers)
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCPUModelFrom_StopsAfterFirstHit(t *testing.T) {
	called := false
	tiers := []cpuTier{
		fixedTier("a", "Model A", nil),
		{
			name: "b",
			probe: func() (string, error) {
				called = true
				return "Model B", nil
			},
		},
	}

	if got := cpuModelFrom(tiers); got != "Model A" {
		t.Fatalf("got %q, want %q", got, "Model A")
	}
	if called {
		t.Error("later tier was invoked after an earlier tier succeeded")
	}
}

func TestGenericCPU(t *testing.T) {
	if genericCPU() == "" {
		t.Error("generic CPU description should never be empty")
	}
}
