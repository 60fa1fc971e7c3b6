package fetch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/floodline/searise/internal/config"
	"github.com/floodline/searise/internal/http"
	ioutils "github.com/floodline/searise/internal/io"
	"github.com/floodline/searise/internal/registry"
	"golang.org/x/sync/errgroup"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents an acquisition progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// Outcome is the per-resource result of one fetch task.
type Outcome struct {
	// Group names the dataset group the resource belongs to.
	Group string

	// Spec is the fetched resource.
	Spec registry.ResourceSpec

	// Bytes is the number of bytes written on success.
	Bytes int64

	// Err is the failure cause, nil on success.
	Err error
}

// Manager coordinates dataset acquisition.
type Manager struct {
	settings   *config.Settings
	client     *http.Client
	onProgress func(ProgressEvent)

	totalFiles   int32
	fetchedFiles int32
}

// NewManager creates a new acquisition Manager.
func NewManager(settings *config.Settings, onProgress func(ProgressEvent)) *Manager {
	return &Manager{
		settings:   settings,
		client:     http.NewClient(time.Duration(settings.FetchTimeoutSeconds) * time.Second),
		onProgress: onProgress,
	}
}

// Progress returns the number of completed and scheduled fetch tasks.
func (m *Manager) Progress() (fetched, total int32) {
	return atomic.LoadInt32(&m.fetchedFiles), atomic.LoadInt32(&m.totalFiles)
}

// FetchGroups materializes every non-materialized group into the cache and
// returns one Outcome per scheduled resource plus one per group that
// failed to resolve. It blocks until every scheduled task has finished;
// a task failure is recorded in its Outcome and never aborts siblings.
//
// Re-running after a complete prior run schedules nothing: each group's
// marker directory check happens here, immediately before scheduling.
func (m *Manager) FetchGroups(ctx context.Context, groups []registry.Group) []Outcome {
	if _, err := ioutils.EnsureDir(m.settings.DataDir); err != nil {
		return []Outcome{{Group: "cache", Err: err}}
	}

	m.progress(ProgressEvent{Message: "Downloading data... This might take a while.", Level: LevelInfo})

	type task struct {
		group string
		spec  registry.ResourceSpec
	}
	var tasks []task
	var outcomes []Outcome

	for _, group := range groups {
		if group.Materialized(m.settings.DataDir) {
			m.progress(ProgressEvent{Message: fmt.Sprintf("Skipping %s: already present", group.Name), Level: LevelVerbose})
			continue
		}

		specs, err := group.Resolve(ctx)
		if err != nil {
			// Group-granular recovery: report and move on to the next group.
			outcomes = append(outcomes, Outcome{Group: group.Name, Err: err})
			m.progress(ProgressEvent{Message: err.Error(), Level: LevelError})
			continue
		}

		if group.Subdir != "" {
			if _, err := ioutils.EnsureDir(filepath.Join(m.settings.DataDir, group.Subdir)); err != nil {
				outcomes = append(outcomes, Outcome{Group: group.Name, Err: err})
				m.progress(ProgressEvent{Message: fmt.Sprintf("Error creating directory for %s: %v", group.Name, err), Level: LevelError})
				continue
			}
		}

		for _, spec := range specs {
			tasks = append(tasks, task{group: group.Name, spec: spec})
		}
	}

	atomic.StoreInt32(&m.totalFiles, int32(len(tasks)))

	results := make([]Outcome, len(tasks))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(m.parallelism())

	for i, t := range tasks {
		i, t := i, t // capture
		g.Go(func() error {
			bytes, err := m.fetchResource(ctx, t.spec)
			results[i] = Outcome{Group: t.group, Spec: t.spec, Bytes: bytes, Err: err}
			atomic.AddInt32(&m.fetchedFiles, 1)
			if err != nil {
				m.progress(ProgressEvent{Message: fmt.Sprintf("Error fetching %s: %v", t.spec.URL, err), Level: LevelError})
				return nil // Continue with other resources
			}
			m.progress(ProgressEvent{Message: t.spec.DestPath(m.settings.DataDir), Level: LevelVerbose})
			return nil
		})
	}

	g.Wait()
	outcomes = append(outcomes, results...)

	if failed := Failed(outcomes); len(failed) > 0 {
		m.progress(ProgressEvent{Message: fmt.Sprintf("%d of %d fetches failed; re-run to retry", len(failed), len(outcomes)), Level: LevelWarning})
	} else {
		m.progress(ProgressEvent{Message: "All datasets present", Level: LevelSuccess})
	}

	return outcomes
}

// Failed filters outcomes down to the failures.
func Failed(outcomes []Outcome) []Outcome {
	var failed []Outcome
	for _, o := range outcomes {
		if o.Err != nil {
			failed = append(failed, o)
		}
	}
	return failed
}

func (m *Manager) parallelism() int {
	if m.settings.MaxConcurrentFetches > 0 {
		return m.settings.MaxConcurrentFetches
	}
	return runtime.GOMAXPROCS(0)
}

// fetchResource downloads one resource to its destination, expanding it in
// place when the destination filename indicates an archive.
func (m *Manager) fetchResource(ctx context.Context, spec registry.ResourceSpec) (int64, error) {
	dest := spec.DestPath(m.settings.DataDir)

	bytes, err := m.client.DownloadFile(ctx, spec.URL, dest, nil)
	if err != nil {
		return 0, err
	}

	if ioutils.IsArchive(spec.Filename) {
		if err := ioutils.ExtractZip(dest, ioutils.ArchiveStem(dest)); err != nil {
			return bytes, err
		}
		if err := os.Remove(dest); err != nil {
			return bytes, err
		}
	}

	return bytes, nil
}

func (m *Manager) progress(event ProgressEvent) {
	if m.onProgress != nil {
		m.onProgress(event)
	}
}
