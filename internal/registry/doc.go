// Package registry declares the dataset groups the acquisition step
// materializes into the local cache.
//
// # Groups
//
// A Group is a named batch of remote resources sharing a destination
// subdirectory and an existence marker:
//
//	reg := registry.NewRegistry(lister)
//	for _, g := range reg.Groups() {
//	    if g.Materialized(cacheRoot) {
//	        continue // directory-level idempotence
//	    }
//	    specs, err := g.Resolve(ctx)
//	    ...
//	}
//
// # Resources
//
// Each ResourceSpec lands at cacheRoot/Subdir/Filename. Filenames default
// to the URL's last path segment with the query string stripped
// (FilenameFromURL); endpoints that encode everything in the query string
// set Filename explicitly.
//
// # Dynamic groups
//
// The Natural Earth groups enumerate their members at fetch time through
// the DirectoryLister interface, filtered by name prefix. The GitHub
// contents API implementation is the default; swap in a static manifest
// where that endpoint is unreachable.
package registry
