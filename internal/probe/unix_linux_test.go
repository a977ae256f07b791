//go:build linux

package probe

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDetectInitSystem(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T, root string)
		want  string
	}{
		{
			name: "systemd marker",
			setup: func(t *testing.T, root string) {
				if err := os.MkdirAll(filepath.Join(root, "run", "systemd", "system"), 0o755); err != nil {
					t.Fatal(err)
				}
			},
			want: "systemd",
		},
		{
			name: "sysv init binary",
			setup: func(t *testing.T, root string) {
				if err := os.MkdirAll(filepath.Join(root, "sbin"), 0o755); err != nil {
					t.Fatal(err)
				}
				if err := os.WriteFile(filepath.Join(root, "sbin", "init"), []byte{}, 0o755); err != nil {
					t.Fatal(err)
				}
			},
			want: "sysvinit",
		},
		{
			name: "systemd wins over sysv",
			setup: func(t *testing.T, root string) {
				if err := os.MkdirAll(filepath.Join(root, "run", "systemd", "system"), 0o755); err != nil {
					t.Fatal(err)
				}
				if err := os.MkdirAll(filepath.Join(root, "sbin"), 0o755); err != nil {
					t.Fatal(err)
				}
				if err := os.WriteFile(filepath.Join(root, "sbin", "init"), []byte{}, 0o755); err != nil {
					t.Fatal(err)
				}
			},
			want: "systemd",
		},
		{
			name:  "no markers",
			setup: func(t *testing.T, root string) {},
			want:  "unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			tt.setup(t, root)

			if got := detectInitSystem(root); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDesktopFromEnv(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{
			name: "XDG_CURRENT_DESKTOP preferred",
			env:  map[string]string{"XDG_CURRENT_DESKTOP": "GNOME", "DESKTOP_SESSION": "gnome-classic"},
			want: "GNOME",
		},
		{
			name: "DESKTOP_SESSION fallback",
			env:  map[string]string{"DESKTOP_SESSION": "plasma"},
			want: "plasma",
		},
		{
			name: "neither set",
			env:  map[string]string{},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			getenv := func(key string) string { return tt.env[key] }

			if got := desktopFromEnv(getenv); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
