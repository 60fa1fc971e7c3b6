// Package config provides configuration management for searise.
//
// This package handles:
//   - Loading and saving settings from JSON files
//   - Default configuration values
//   - Conversion to render package option types
//
// # Default Settings
//
// Use DefaultSettings() to get sensible defaults:
//
//	settings := config.DefaultSettings()
//	// Caches datasets under ./data
//	// Renders the global ETOPO bed raster at 1/16 resolution
//	// Two sweep sessions: (0, 101.1, 0.1) at 60fps and (0, 6021, 4) at 24fps
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/config.json")
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//
// # Configuration Options
//
// Settings includes options for:
//   - Cache and output directories
//   - Fetch concurrency and timeout
//   - Raster selection and decimation factor
//   - Sea-level color model anchoring and palette sub-ranges
//   - Frame size, label unit, and sweep sessions
//   - Encoder binary and container format
package config
