package registry

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// ResourceSpec identifies one remote resource and where it lands in the
// local cache: cacheRoot/Subdir/Filename.
type ResourceSpec struct {
	// URL is the source locator.
	URL string

	// Filename is the destination file name. Derived from the URL's last
	// path segment unless set explicitly (query-driven endpoints produce
	// useless last segments).
	Filename string

	// Subdir is the destination subdirectory under the cache root.
	// Empty means the cache root itself.
	Subdir string
}

// DestPath returns the resource's destination path under cacheRoot.
func (r ResourceSpec) DestPath(cacheRoot string) string {
	return filepath.Join(cacheRoot, r.Subdir, r.Filename)
}

// FilenameFromURL derives a destination file name from a URL: the last
// path segment with any query string stripped.
func FilenameFromURL(raw string) string {
	if u, err := url.Parse(raw); err == nil {
		return path.Base(u.Path)
	}
	s := raw
	if i := strings.IndexByte(s, '?'); i >= 0 {
		s = s[:i]
	}
	return path.Base(s)
}

// GroupSource resolves a group's resource list at fetch time. Static
// groups don't need one; groups built from a remote directory listing do.
type GroupSource interface {
	Resolve(ctx context.Context) ([]ResourceSpec, error)
}

// Group is a named batch of remote resources sharing a destination
// subdirectory and an existence check.
type Group struct {
	// Name identifies the group in logs and reports.
	Name string

	// Subdir is the destination subdirectory for the group's resources.
	Subdir string

	// Marker is the directory (relative to the cache root) whose presence
	// means the group is already materialized and fetching is skipped.
	// This is directory-level idempotence: a present but incomplete
	// marker still skips the group.
	Marker string

	// Resources is the static resource list. Ignored when Source is set.
	Resources []ResourceSpec

	// Source, when non-nil, resolves the resource list at fetch time.
	Source GroupSource
}

// Resolve returns the group's resource list, consulting the Source for
// dynamic groups. A Source failure fails the whole group.
func (g Group) Resolve(ctx context.Context) ([]ResourceSpec, error) {
	if g.Source == nil {
		return g.Resources, nil
	}
	specs, err := g.Source.Resolve(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolve group %s: %w", g.Name, err)
	}
	return specs, nil
}

// Materialized reports whether the group's marker directory exists under
// cacheRoot. It is evaluated lazily, immediately before scheduling the
// group's fetches.
func (g Group) Materialized(cacheRoot string) bool {
	info, err := os.Stat(filepath.Join(cacheRoot, g.Marker))
	return err == nil && info.IsDir()
}
