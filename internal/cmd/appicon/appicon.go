// Package appicon parses launcher icon generator settings and runs the
// generator.
package appicon

import (
	"context"
	"flag"
	"io"
	"path/filepath"

	entrypoint "github.com/npz/appicon/internal/platform/cmd"
	"github.com/npz/appicon/internal/tools/iconset"
)

// Config holds appicon command configuration.
type Config struct {
	ProjectDir string `env:"PROJECT_DIR"`
	Locale     string `env:"LOCALE" envDefault:"en-US"`
}

// ParseConfig parses environment and flags into Config. defaultProjectDir is
// used when neither APPICON_PROJECT_DIR nor -project-dir is set.
func ParseConfig(fs *flag.FlagSet, args []string, defaultProjectDir string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.ProjectDir == "" {
		cfg.ProjectDir = defaultProjectDir
	}
	fs.StringVar(&cfg.ProjectDir, "project-dir", cfg.ProjectDir, "project root containing the android/ tree")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "console message locale (en-US, zh-CN)")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ResDir returns the Android resource directory under the project.
func ResDir(cfg Config) string {
	return filepath.Join(cfg.ProjectDir, "android", "app", "src", "main", "res")
}

// Run generates the launcher icon set, reporting progress to out.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceAppIcon, func(ctx context.Context) error {
		return iconset.Run(ctx, iconset.Config{
			ResDir: ResDir(cfg),
			Locale: cfg.Locale,
		}, out)
	})
}
