// Package iconset writes the launcher icon set into an Android resource
// directory.
package iconset

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/text/message"

	"github.com/npz/appicon/internal/platform/i18n/catalog"
	"github.com/npz/appicon/internal/platform/icons"
)

const tracerName = "github.com/npz/appicon/internal/tools/iconset"

// ErrResourceDirMissing reports that the Android resource directory does
// not exist. Nothing is written when it is returned.
var ErrResourceDirMissing = errors.New("android resource directory does not exist")

// Config holds icon set generation settings.
type Config struct {
	// ResDir is the Android res directory that receives mipmap-* folders.
	ResDir string
	// Locale selects the console message catalog.
	Locale string
}

// Run renders every density and variant into cfg.ResDir, reporting progress
// to out.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if ctx == nil {
		ctx = context.Background()
	}
	p := catalog.Default().Printer(cfg.Locale)

	printLine(p, out, "appicon.res_dir", cfg.ResDir)
	if _, err := os.Stat(cfg.ResDir); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("stat %s: %w", cfg.ResDir, err)
		}
		printLine(p, out, "appicon.res_dir_missing", cfg.ResDir)
		return fmt.Errorf("%w: %s", ErrResourceDirMissing, cfg.ResDir)
	}

	printLine(p, out, "appicon.start")

	tracer := otel.Tracer(tracerName)
	for _, density := range icons.Densities() {
		dir := filepath.Join(cfg.ResDir, density.Dir())
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
		for _, variant := range icons.Variants() {
			if err := ctx.Err(); err != nil {
				return err
			}
			path := filepath.Join(dir, variant.File)
			if err := writeIcon(ctx, tracer, density, variant, path); err != nil {
				return fmt.Errorf("%s %s: %w", density.Name, variant.Name, err)
			}
			reportWritten(p, out, density, variant, path)
		}
	}

	printLine(p, out, "appicon.done")
	return nil
}

func writeIcon(ctx context.Context, tracer trace.Tracer, density icons.Density, variant icons.Variant, path string) error {
	_, span := tracer.Start(ctx, "iconset.render", trace.WithAttributes(
		attribute.String("icon.density", density.Name),
		attribute.String("icon.variant", variant.Name),
		attribute.Int("icon.size", density.Size),
		attribute.String("icon.path", path),
	))
	defer span.End()

	if err := icons.WriteBook(density.Size, path); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "render icon")
		return err
	}
	return nil
}

func reportWritten(p *message.Printer, out io.Writer, density icons.Density, variant icons.Variant, path string) {
	key := "appicon.generated.launcher"
	if variant == icons.VariantRound {
		key = "appicon.generated.round"
	}
	printLine(p, out, key, density.Name, path)
}

// printLine formats a catalog message and terminates it with a newline.
func printLine(p *message.Printer, out io.Writer, key string, args ...any) {
	p.Fprintf(out, key, args...)
	fmt.Fprintln(out)
}
