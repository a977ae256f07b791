// Package config loads the banner display toggles from the per-user
// configuration file. A missing file or key is never an error: every key has
// a default and Load always returns a usable Config.
package config

import (
	"errors"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const section = "HyperFetch"

// Config holds the display toggles and the optional logo file name. All
// toggles default to true; Logo defaults to empty (pick by platform).
type Config struct {
	Logo string

	ShowMemory   bool
	ShowKernel   bool
	ShowIP       bool
	ShowUnixInfo bool
	ShowCPU      bool
	ShowDatetime bool
}

func Default() Config {
	return Config{
		ShowMemory:   true,
		ShowKernel:   true,
		ShowIP:       true,
		ShowUnixInfo: true,
		ShowCPU:      true,
		ShowDatetime: true,
	}
}

// Dir returns the per-user configuration directory ~/.hyperfetch. Logos and
// modules live in subdirectories of it.
func Dir() string {
	home, err := homedir.Dir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".hyperfetch")
}

// Load reads config.ini from the per-user directory.
func Load() Config {
	return LoadDir(Dir())
}

// LoadDir reads config.ini from dir, section [HyperFetch]. It never fails:
// a missing directory, missing file, unparseable file or missing keys all
// resolve to defaults.
func LoadDir(dir string) Config {
	if dir == "" {
		return Default()
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("ini")
	v.AddConfigPath(dir)

	v.SetDefault(section+".logo", "")
	v.SetDefault(section+".show_memory", true)
	v.SetDefault(section+".show_kernel", true)
	v.SetDefault(section+".show_ip", true)
	v.SetDefault(section+".show_unix_info", true)
	v.SetDefault(section+".show_cpu", true)
	v.SetDefault(section+".show_datetime", true)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Warnf("config: unreadable %s, using defaults: %v", filepath.Join(dir, "config.ini"), err)
			return Default()
		}
	}

	return Config{
		Logo:         v.GetString(section + ".logo"),
		ShowMemory:   v.GetBool(section + ".show_memory"),
		ShowKernel:   v.GetBool(section + ".show_kernel"),
		ShowIP:       v.GetBool(section + ".show_ip"),
		ShowUnixInfo: v.GetBool(section + ".show_unix_info"),
		ShowCPU:      v.GetBool(section + ".show_cpu"),
		ShowDatetime: v.GetBool(section + ".show_datetime"),
	}
}
