// Package render turns a decimated elevation grid into an animated
// sequence of inundation frames.
//
// # Color model
//
// ColorModel is a two-segment piecewise-linear normalization anchoring a
// configurable pivot ("current sea level") to a fixed palette fraction:
//
//	model := render.NewColorModel(grid.Min(), grid.Max(), offset, 0.21875)
//	t := model.Normalize(elevation) // color-lookup fraction in [0,1]
//
// The Palette is assembled once per session from two sub-ranges of a base
// perceptual colormap (undersea and land) and never changes; only the
// normalization moves between frames.
//
// # Session
//
// Session owns the canvas and all per-frame drawing state. One frame per
// sweep offset, strictly in order, single-threaded:
//
//	session, _ := render.NewSession(grid, palette, render.DefaultSessionOptions())
//	err := session.Render(sweep, encoder, nil)
//
// # Encoding
//
// Frames stream to an Encoder; FFmpegEncoder pipes PNG frames into an
// external ffmpeg process. Output files are named start_stop_step_fps
// after the sweep that produced them.
package render
