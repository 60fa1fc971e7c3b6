package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/floodline/searise/internal/render"
)

// SweepConfig describes one animation session: an arithmetic progression
// of sea-level offsets from Start (inclusive) to Stop (exclusive) by Step.
type SweepConfig struct {
	Start  float64 `json:"start"`
	Stop   float64 `json:"stop"`
	Step   float64 `json:"step"`
	Digits int     `json:"digits"`
	FPS    int     `json:"fps"`
}

// Settings holds all configuration options.
type Settings struct {
	// Acquisition settings
	DataDir              string `json:"data_dir"`
	MaxConcurrentFetches int    `json:"max_concurrent_fetches"`
	FetchTimeoutSeconds  int    `json:"fetch_timeout_seconds"`

	// Raster settings
	RasterFile     string  `json:"raster_file"`
	RasterRows     int     `json:"raster_rows"`
	RasterCols     int     `json:"raster_cols"`
	ResampleFactor float64 `json:"resample_factor"`

	// Color model settings
	PivotFraction   float64 `json:"pivot_fraction"`
	UnderseaSamples int     `json:"undersea_samples"`
	UnderseaMax     float64 `json:"undersea_max"`
	LandSamples     int     `json:"land_samples"`
	LandMin         float64 `json:"land_min"`

	// Render settings
	OutputDir          string        `json:"output_dir"`
	TargetHeightPx     int           `json:"target_height_px"`
	FigureHeightInches float64       `json:"figure_height_inches"`
	LabelUnit          string        `json:"label_unit"`
	FFmpegPath         string        `json:"ffmpeg_path"`
	Container          string        `json:"container"`
	Sweeps             []SweepConfig `json:"sweeps"`
}

// DefaultSettings returns settings with default values: the global ETOPO
// bed raster at 1/16 resolution and two sweeps, a fine-grained near-term
// session and a coarse long-range one.
func DefaultSettings() *Settings {
	return &Settings{
		DataDir:              "./data",
		MaxConcurrentFetches: 0, // 0 = available parallelism
		FetchTimeoutSeconds:  0, // 0 = no timeout

		RasterFile:     filepath.Join("ETOPO", "ETOPO_2022_v1_60s_N90W180_bed.tif"),
		RasterRows:     10800,
		RasterCols:     21600,
		ResampleFactor: 1.0 / 16,

		PivotFraction:   0.21875,
		UnderseaSamples: 56,
		UnderseaMax:     0.17,
		LandSamples:     200,
		LandMin:         0.25,

		OutputDir:          "./out",
		TargetHeightPx:     1080,
		FigureHeightInches: 4.8,
		LabelUnit:          "m",
		FFmpegPath:         "ffmpeg",
		Container:          "mp4",
		Sweeps: []SweepConfig{
			{Start: 0, Stop: 101.1, Step: 0.1, Digits: 1, FPS: 60},
			{Start: 0, Stop: 6021, Step: 4, Digits: 0, FPS: 24},
		},
	}
}

// Load reads settings from a JSON file. A missing file yields defaults.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ToPaletteSpec converts settings to a render.PaletteSpec.
func (s *Settings) ToPaletteSpec() render.PaletteSpec {
	return render.PaletteSpec{
		UnderseaSamples: s.UnderseaSamples,
		UnderseaMax:     s.UnderseaMax,
		LandSamples:     s.LandSamples,
		LandMin:         s.LandMin,
	}
}

// ToSessionOptions converts settings to render.SessionOptions.
func (s *Settings) ToSessionOptions() render.SessionOptions {
	return render.SessionOptions{
		PivotFraction:      s.PivotFraction,
		TargetHeightPx:     s.TargetHeightPx,
		FigureHeightInches: s.FigureHeightInches,
		LabelUnit:          s.LabelUnit,
	}
}

// ToSweeps converts the configured sweep sessions to render.Sweep values.
func (s *Settings) ToSweeps() []render.Sweep {
	sweeps := make([]render.Sweep, len(s.Sweeps))
	for i, sc := range s.Sweeps {
		sweeps[i] = render.Sweep{
			Start:  sc.Start,
			Stop:   sc.Stop,
			Step:   sc.Step,
			Digits: sc.Digits,
			FPS:    sc.FPS,
		}
	}
	return sweeps
}
