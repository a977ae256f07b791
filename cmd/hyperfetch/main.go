// Command hyperfetch prints a decorated banner of local system information
// and then runs any user extension modules. It takes no flags and always
// exits 0; every failure degrades to an omitted field or a logged warning.
package main

import (
	"context"
	"os"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/hyperfetch/hyperfetch/internal/config"
	"github.com/hyperfetch/hyperfetch/internal/logo"
	"github.com/hyperfetch/hyperfetch/internal/modules"
	"github.com/hyperfetch/hyperfetch/internal/probe"
	"github.com/hyperfetch/hyperfetch/internal/render"
)

func main() {
	// Warnings are part of the banner output, so they go to stdout.
	log.SetOutput(os.Stdout)
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cfg := config.Load()
	snap := probe.Collect(ctx, cfg)

	dir := config.Dir()
	art := logo.Load(filepath.Join(dir, "logos"), cfg.Logo)
	render.Fprint(os.Stdout, render.Lines(snap, cfg, art))

	modules.RunAll(modules.Load(filepath.Join(dir, "modules")))
}
