// Package main generates the Android launcher icons for every density bucket.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"

	appiconcmd "github.com/npz/appicon/internal/cmd/appicon"
	"github.com/npz/appicon/internal/platform/config"
)

func main() {
	cfg, err := appiconcmd.ParseConfig(flag.CommandLine, os.Args[1:], projectDir())
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := appiconcmd.Run(ctx, cfg, os.Stdout); err != nil {
		stop()
		config.Exitf("generate icons: %v", err)
	}
}

// projectDir returns the directory two levels above this command's source
// directory, which is the repository root.
func projectDir() string {
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		config.Exitf("failed to resolve runtime caller")
	}
	return filepath.Dir(filepath.Dir(filepath.Dir(filename)))
}
