// Package http provides the HTTP client used for dataset acquisition.
//
// The Client in this package handles:
//   - User-Agent headers (some data mirrors reject Go's default)
//   - Streaming file downloads with progress tracking
//   - JSON decoding for directory-listing endpoints
//
// # Basic Usage
//
//	client := http.NewClient(0)
//
//	// Download a raster with progress callback
//	n, err := client.DownloadFile(ctx, tifURL, "/data/ETOPO/bed.tif", func(written, total int64) {
//	    fmt.Printf("%.1f%%\n", float64(written)/float64(total)*100)
//	})
//
//	// Decode a listing endpoint
//	var entries []struct{ Name string `json:"name"` }
//	err = client.GetJSON(ctx, listingURL, &entries)
package http
