// Package modules loads and runs user extension modules. A module is a Go
// plugin (a .so built with -buildmode=plugin) exposing func Run(). Module
// failures never abort the process: a module that cannot be loaded or that
// panics while running is logged and skipped.
package modules

import (
	"fmt"
	"os"
	"path/filepath"
	"plugin"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Module is one loaded extension: a name and a zero-argument entry point.
type Module struct {
	Name string
	run  func()
}

// Load scans dir for plugin files and returns the ones exposing a valid Run
// entry point, ordered lexicographically by file name (os.ReadDir contract),
// so execution order is deterministic. A missing directory yields no modules.
func Load(dir string) []Module {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var mods []Module
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".so" {
			continue
		}

		m, err := open(filepath.Join(dir, entry.Name()))
		if err != nil {
			log.Warnf("modules: skipping %s: %v", entry.Name(), err)
			continue
		}
		mods = append(mods, m)
	}

	return mods
}

func open(path string) (Module, error) {
	p, err := plugin.Open(path)
	if err != nil {
		return Module{}, fmt.Errorf("opening plugin: %w", err)
	}

	sym, err := p.Lookup("Run")
	if err != nil {
		return Module{}, fmt.Errorf("no Run entry point: %w", err)
	}

	run, ok := sym.(func())
	if !ok {
		return Module{}, fmt.Errorf("Run has type %T, want func()", sym)
	}

	return Module{
		Name: strings.TrimSuffix(filepath.Base(path), ".so"),
		run:  run,
	}, nil
}

// RunAll invokes each module's entry point once, in order. A failing module
// is logged with its name; later modules still run.
func RunAll(mods []Module) {
	for _, m := range mods {
		runOne(m)
	}
}

func runOne(m Module) {
	defer func() {
		if r := recover(); r != nil {
			log.Warnf("modules: %s failed: %v", m.Name, r)
		}
	}()

	if m.run != nil {
		m.run()
	}
}
