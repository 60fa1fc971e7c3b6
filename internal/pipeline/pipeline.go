// Package pipeline wires acquisition and rendering into the end-to-end
// run: populate the dataset cache idempotently, then render each
// configured sweep session in sequence.
package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/floodline/searise/internal/config"
	"github.com/floodline/searise/internal/fetch"
	"github.com/floodline/searise/internal/http"
	ioutils "github.com/floodline/searise/internal/io"
	"github.com/floodline/searise/internal/log"
	"github.com/floodline/searise/internal/raster"
	"github.com/floodline/searise/internal/registry"
	"github.com/floodline/searise/internal/render"
)

// Fetch runs the acquisition step: every dataset group whose marker
// directory is absent is materialized into the cache. Per-resource and
// per-group failures are reported and recovered; re-running retries only
// what is still missing.
func Fetch(ctx context.Context, settings *config.Settings, onProgress func(fetch.ProgressEvent)) []fetch.Outcome {
	client := http.NewClient(time.Duration(settings.FetchTimeoutSeconds) * time.Second)
	reg := registry.NewRegistry(registry.NewGitHubLister(client))
	manager := fetch.NewManager(settings, onProgress)

	outcomes := manager.FetchGroups(ctx, reg.Groups())
	for _, o := range fetch.Failed(outcomes) {
		if o.Spec.URL != "" {
			log.Warnf("fetch failed: %s: %v", o.Spec.URL, o.Err)
		} else {
			log.Warnf("group %s failed: %v", o.Group, o.Err)
		}
	}
	return outcomes
}

// Render runs every configured sweep session in sequence. A raster read
// failure is fatal and aborts before any frame is produced; a session
// failure (including encoder failure) aborts that session only, and the
// remaining sessions still run.
func Render(settings *config.Settings) error {
	log.Infof("reading raster %s", settings.RasterFile)

	src, err := raster.Open(filepath.Join(settings.DataDir, settings.RasterFile),
		settings.RasterRows, settings.RasterCols)
	if err != nil {
		return err
	}

	grid, err := raster.Resample(src, settings.ResampleFactor)
	if err != nil {
		return err
	}
	rows, cols := grid.Dims()
	log.Infof("resampled to %dx%d, elevation range [%.0f, %.0f]", rows, cols, grid.Min(), grid.Max())

	if _, err := ioutils.EnsureDir(settings.OutputDir); err != nil {
		return err
	}

	palette := render.NewPalette(render.Terrain(), settings.ToPaletteSpec())

	var failed int
	sweeps := settings.ToSweeps()
	for _, sweep := range sweeps {
		if err := renderSession(settings, grid, palette, sweep); err != nil {
			log.Errorf("session %s: %v", sweep.Name(), err)
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d sweep sessions failed", failed, len(sweeps))
	}
	return nil
}

func renderSession(settings *config.Settings, grid *raster.Grid, palette *render.Palette, sweep render.Sweep) error {
	session, err := render.NewSession(grid, palette, settings.ToSessionOptions())
	if err != nil {
		return err
	}

	outPath := filepath.Join(settings.OutputDir, sweep.Name()+"."+settings.Container)
	enc, err := render.NewFFmpegEncoder(settings.FFmpegPath, outPath, sweep.FPS)
	if err != nil {
		return err
	}

	log.Infof("animating %d frames to %s at %.0f DPI", sweep.Count(), outPath, session.DPI())
	if err := session.Render(sweep, enc, nil); err != nil {
		enc.Close()
		return err
	}
	return enc.Close()
}

// Run executes the full pipeline: acquisition, then every sweep session.
// Acquisition failures are best-effort (logged, not fatal); rendering
// failures surface in the returned error.
func Run(ctx context.Context, settings *config.Settings, onProgress func(fetch.ProgressEvent)) error {
	Fetch(ctx, settings, onProgress)
	return Render(settings)
}
