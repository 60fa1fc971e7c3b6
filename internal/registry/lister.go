package registry

import (
	"context"
	"strings"
)

// DirEntry is one entry returned by a remote directory listing.
type DirEntry struct {
	Name        string `json:"name"`
	DownloadURL string `json:"download_url"`
}

// DirectoryLister enumerates the entries of a remote directory. It exists
// as an interface so environments without the listing endpoint can swap in
// a static manifest.
type DirectoryLister interface {
	ListDirectory(ctx context.Context, url string) ([]DirEntry, error)
}

// jsonGetter is the slice of the HTTP client the GitHub lister needs.
type jsonGetter interface {
	GetJSON(ctx context.Context, url string, v interface{}) error
}

// GitHubLister lists a repository directory through the GitHub contents
// API, which returns a JSON array of {name, download_url} objects.
type GitHubLister struct {
	client jsonGetter
}

// NewGitHubLister creates a lister backed by the given JSON client.
func NewGitHubLister(client jsonGetter) *GitHubLister {
	return &GitHubLister{client: client}
}

// ListDirectory fetches and decodes a contents-API directory listing.
func (l *GitHubLister) ListDirectory(ctx context.Context, url string) ([]DirEntry, error) {
	var entries []DirEntry
	if err := l.client.GetJSON(ctx, url, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// listedGroup resolves a group's resources from a directory listing,
// keeping only entries whose name starts with Prefix.
type listedGroup struct {
	Lister DirectoryLister
	URL    string
	Prefix string
	Subdir string
}

// Resolve lists the remote directory and converts matching entries to
// resource specs.
func (s listedGroup) Resolve(ctx context.Context) ([]ResourceSpec, error) {
	entries, err := s.Lister.ListDirectory(ctx, s.URL)
	if err != nil {
		return nil, err
	}

	var specs []ResourceSpec
	for _, e := range entries {
		if !strings.HasPrefix(e.Name, s.Prefix) {
			continue
		}
		specs = append(specs, ResourceSpec{
			URL:      e.DownloadURL,
			Filename: e.Name,
			Subdir:   s.Subdir,
		})
	}
	return specs, nil
}
