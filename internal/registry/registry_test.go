package registry

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFilenameFromURL(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://eoimages.gsfc.nasa.gov/images/imagerecords/57000/57752/land_shallow_topo_2048.jpg", "land_shallow_topo_2048.jpg"},
		{"https://www.ngdc.noaa.gov/mgg/shorelines/data/gshhg/latest/gshhg-shp-2.3.7.zip", "gshhg-shp-2.3.7.zip"},
		{"https://example.com/file.tif?bbox=1,2,3,4&format=tiff", "file.tif"},
		{"https://example.com/a/b/c", "c"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FilenameFromURL(tt.url); got != tt.want {
				t.Errorf("FilenameFromURL(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}

func TestResourceSpec_DestPath(t *testing.T) {
	spec := ResourceSpec{URL: "https://example.com/x.tif", Filename: "x.tif", Subdir: "ETOPO"}
	if got, want := spec.DestPath("/cache"), filepath.Join("/cache", "ETOPO", "x.tif"); got != want {
		t.Errorf("DestPath = %q, want %q", got, want)
	}

	root := ResourceSpec{URL: "https://example.com/y.zip", Filename: "y.zip"}
	if got, want := root.DestPath("/cache"), filepath.Join("/cache", "y.zip"); got != want {
		t.Errorf("DestPath = %q, want %q", got, want)
	}
}

func TestGroup_Materialized(t *testing.T) {
	cacheRoot := t.TempDir()
	g := Group{Name: "ETOPO", Subdir: "ETOPO", Marker: "ETOPO"}

	if g.Materialized(cacheRoot) {
		t.Error("Materialized() = true before marker exists")
	}

	if err := os.MkdirAll(filepath.Join(cacheRoot, "ETOPO"), 0755); err != nil {
		t.Fatal(err)
	}
	if !g.Materialized(cacheRoot) {
		t.Error("Materialized() = false after marker created")
	}
}

func TestGroup_MaterializedIgnoresFiles(t *testing.T) {
	cacheRoot := t.TempDir()
	g := Group{Name: "gshhg", Marker: "gshhg-shp-2.3.7"}

	// A plain file at the marker path is not a materialized group.
	if err := os.WriteFile(filepath.Join(cacheRoot, "gshhg-shp-2.3.7"), nil, 0644); err != nil {
		t.Fatal(err)
	}
	if g.Materialized(cacheRoot) {
		t.Error("Materialized() = true for a non-directory marker")
	}
}

// fakeLister serves a canned directory listing.
type fakeLister struct {
	entries []DirEntry
	err     error
}

func (l fakeLister) ListDirectory(ctx context.Context, url string) ([]DirEntry, error) {
	return l.entries, l.err
}

func TestGroup_ResolveStatic(t *testing.T) {
	g := Group{
		Name:      "blue-marble",
		Resources: []ResourceSpec{{URL: "https://example.com/a.png", Filename: "a.png"}},
	}

	specs, err := g.Resolve(context.Background())
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(specs) != 1 || specs[0].Filename != "a.png" {
		t.Errorf("Resolve = %v, want the static resource list", specs)
	}
}

func TestGroup_ResolveListed(t *testing.T) {
	lister := fakeLister{entries: []DirEntry{
		{Name: "ne_10m_land.shp", DownloadURL: "https://example.com/ne_10m_land.shp"},
		{Name: "ne_10m_land.dbf", DownloadURL: "https://example.com/ne_10m_land.dbf"},
		{Name: "ne_10m_lakes.shp", DownloadURL: "https://example.com/ne_10m_lakes.shp"},
	}}

	g := Group{
		Name:   "ne_10m_land",
		Source: listedGroup{Lister: lister, URL: "https://api.example.com/contents", Prefix: "ne_10m_land.", Subdir: "ne_10m_land"},
	}

	specs, err := g.Resolve(context.Background())
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(specs) != 2 {
		t.Fatalf("Resolve returned %d specs, want 2 (prefix-filtered)", len(specs))
	}
	for _, spec := range specs {
		if spec.Subdir != "ne_10m_land" {
			t.Errorf("spec %s has Subdir %q, want ne_10m_land", spec.Filename, spec.Subdir)
		}
	}
}

func TestGroup_ResolveListedFailure(t *testing.T) {
	g := Group{
		Name:   "ne_110m_land",
		Source: listedGroup{Lister: fakeLister{err: errors.New("rate limited")}, Prefix: "ne_110m_land."},
	}

	if _, err := g.Resolve(context.Background()); err == nil {
		t.Error("Resolve succeeded despite lister failure")
	}
}

func TestRegistry_Groups(t *testing.T) {
	reg := NewRegistry(fakeLister{})
	groups := reg.Groups()

	if len(groups) != 5 {
		t.Fatalf("Groups() returned %d groups, want 5", len(groups))
	}

	byName := make(map[string]Group, len(groups))
	for _, g := range groups {
		byName[g.Name] = g
	}

	etopo, ok := byName["ETOPO"]
	if !ok {
		t.Fatal("missing ETOPO group")
	}
	if len(etopo.Resources) != 4 {
		t.Errorf("ETOPO has %d resources, want 4", len(etopo.Resources))
	}
	// The image-server export keeps its explicit filename.
	last := etopo.Resources[len(etopo.Resources)-1]
	if last.Filename != "ETOPO_2022_v1_15s_N43W124_bed.tiff" {
		t.Errorf("export resource filename = %q", last.Filename)
	}

	gshhg, ok := byName["gshhg"]
	if !ok {
		t.Fatal("missing gshhg group")
	}
	if gshhg.Marker != "gshhg-shp-2.3.7" {
		t.Errorf("gshhg marker = %q, want the extracted archive stem", gshhg.Marker)
	}
	if gshhg.Subdir != "" {
		t.Errorf("gshhg subdir = %q, want cache root", gshhg.Subdir)
	}

	for _, name := range []string{"ne_10m_land", "ne_110m_land"} {
		g, ok := byName[name]
		if !ok {
			t.Fatalf("missing %s group", name)
		}
		if g.Source == nil {
			t.Errorf("%s should resolve dynamically", name)
		}
	}
}
