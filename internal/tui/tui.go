// Package tui provides a Bubble Tea terminal user interface for searise.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/floodline/searise/internal/config"
	"github.com/floodline/searise/internal/fetch"
	"github.com/floodline/searise/internal/http"
	"github.com/floodline/searise/internal/pipeline"
	"github.com/floodline/searise/internal/registry"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#4ECDC4")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#74B3CE"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)
)

// State represents the current UI state.
type State int

const (
	StateIdle State = iota
	StateFetching
	StateRendering
	StateComplete
	StateError
)

// LogEntry represents a log message in the UI.
type LogEntry struct {
	Message string
	Level   fetch.ProgressLevel
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state    State
	spinner  spinner.Model
	progress progress.Model
	settings *config.Settings
	logs     []LogEntry
	err      error

	ctx    context.Context
	cancel context.CancelFunc

	// Acquisition manager, polled for progress
	manager *fetch.Manager

	fetchedFiles int32
	totalFiles   int32
	failedCount  int

	// Options
	skipFetch  bool
	skipRender bool
	verbose    bool

	width  int
	height int
}

// NewModel creates a new TUI model.
func NewModel(settings *config.Settings) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ECDC4"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 50

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		state:    StateIdle,
		spinner:  sp,
		progress: prog,
		settings: settings,
		logs:     make([]LogEntry, 0),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Message types
type (
	// ProgressMsg is sent when an acquisition progress event arrives.
	ProgressMsg struct {
		Event fetch.ProgressEvent
	}

	// FetchDoneMsg is sent when acquisition completes.
	FetchDoneMsg struct {
		Failed int
	}

	// RenderDoneMsg is sent when all sweep sessions finish.
	RenderDoneMsg struct {
		Err error
	}

	// TickMsg is for periodic progress updates.
	TickMsg struct{}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = msg.Width - 20
		if m.progress.Width > 80 {
			m.progress.Width = 80
		}
		if m.progress.Width < 20 {
			m.progress.Width = 20
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.cancel()
			return m, tea.Quit

		case "esc":
			if m.state == StateIdle {
				return m, tea.Quit
			}
			if m.state == StateFetching || m.state == StateRendering {
				m.cancel()
				m.state = StateError
				m.err = fmt.Errorf("cancelled by user")
			}

		case "enter":
			if m.state == StateIdle {
				if m.skipFetch {
					m.state = StateRendering
					return m, tea.Batch(m.startRender(), m.spinner.Tick)
				}
				m.state = StateFetching
				return m, tea.Batch(m.startFetch(), m.tickProgress(), m.spinner.Tick)
			}

		case "f":
			if m.state == StateIdle {
				m.skipRender = !m.skipRender
			}

		case "r":
			if m.state == StateIdle {
				m.skipFetch = !m.skipFetch
			}

		case "v":
			if m.state == StateIdle {
				m.verbose = !m.verbose
			}

		case "q":
			if m.state == StateComplete || m.state == StateError {
				return m, tea.Quit
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case ProgressMsg:
		// Filter verbose messages if not in verbose mode
		if msg.Event.Level == fetch.LevelVerbose && !m.verbose {
			return m, nil
		}
		m.logs = append(m.logs, LogEntry{
			Message: msg.Event.Message,
			Level:   msg.Event.Level,
		})
		// Keep only last 10 logs
		if len(m.logs) > 10 {
			m.logs = m.logs[len(m.logs)-10:]
		}

	case FetchDoneMsg:
		m.failedCount = msg.Failed
		if m.ctx.Err() != nil {
			m.state = StateError
			m.err = fmt.Errorf("cancelled by user")
		} else if m.skipRender {
			m.state = StateComplete
		} else {
			m.state = StateRendering
			cmds = append(cmds, m.startRender())
		}

	case RenderDoneMsg:
		if msg.Err != nil {
			m.state = StateError
			m.err = msg.Err
		} else {
			m.state = StateComplete
		}

	case TickMsg:
		if m.manager != nil && m.state == StateFetching {
			fetched, total := m.manager.Progress()
			m.fetchedFiles = fetched
			m.totalFiles = total

			var percent float64
			if total > 0 {
				percent = float64(fetched) / float64(total)
			}
			cmds = append(cmds, m.progress.SetPercent(percent), m.tickProgress())
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// tickProgress returns a command to tick progress updates.
func (m Model) tickProgress() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

// startFetch runs acquisition in the background, keeping a manager
// reference so TickMsg can poll task counts.
func (m *Model) startFetch() tea.Cmd {
	client := http.NewClient(time.Duration(m.settings.FetchTimeoutSeconds) * time.Second)
	reg := registry.NewRegistry(registry.NewGitHubLister(client))
	manager := fetch.NewManager(m.settings, nil)
	m.manager = manager

	ctx := m.ctx
	groups := reg.Groups()
	return func() tea.Msg {
		outcomes := manager.FetchGroups(ctx, groups)
		return FetchDoneMsg{Failed: len(fetch.Failed(outcomes))}
	}
}

// startRender runs every sweep session in the background.
func (m *Model) startRender() tea.Cmd {
	settings := m.settings
	return func() tea.Msg {
		return RenderDoneMsg{Err: pipeline.Render(settings)}
	}
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("searise"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Coastal inundation animation pipeline"))
	b.WriteString("\n\n")

	switch m.state {
	case StateIdle:
		b.WriteString(m.viewIdle())
	case StateFetching:
		b.WriteString(m.viewFetching())
	case StateRendering:
		b.WriteString(m.viewRendering())
	case StateComplete:
		b.WriteString(m.viewComplete())
	case StateError:
		b.WriteString(m.viewError())
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewIdle() string {
	var b strings.Builder

	renderOnlyCheck := "[ ]"
	if m.skipFetch {
		renderOnlyCheck = "[x]"
	}
	fetchOnlyCheck := "[ ]"
	if m.skipRender {
		fetchOnlyCheck = "[x]"
	}
	verboseCheck := "[ ]"
	if m.verbose {
		verboseCheck = "[x]"
	}

	b.WriteString(infoStyle.Render("Options:"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s Fetch only, skip rendering (f)\n", fetchOnlyCheck))
	b.WriteString(fmt.Sprintf("  %s Render only, skip acquisition (r)\n", renderOnlyCheck))
	b.WriteString(fmt.Sprintf("  %s Verbose output (v)\n", verboseCheck))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Cache: %s", m.settings.DataDir)))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Output: %s (%d sweep sessions)", m.settings.OutputDir, len(m.settings.Sweeps))))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewFetching() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render("Downloading datasets..."))
	b.WriteString("\n\n")

	var percent float64
	if m.totalFiles > 0 {
		percent = float64(m.fetchedFiles) / float64(m.totalFiles)
	}
	b.WriteString(m.progress.ViewAs(percent))
	b.WriteString("\n")
	b.WriteString(infoStyle.Render(fmt.Sprintf("Resources: %d/%d", m.fetchedFiles, m.totalFiles)))
	b.WriteString("\n\n")

	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewRendering() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render("Rendering sweep sessions..."))
	b.WriteString("\n\n")
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewComplete() string {
	summary := "Done!"
	if m.failedCount > 0 {
		summary = fmt.Sprintf("Done, %d fetches failed (re-run to retry)", m.failedCount)
	}
	return boxStyle.Render(fmt.Sprintf("%s\n\nOutput: %s", summary, m.settings.OutputDir))
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("Error occurred:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
	}

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, entry := range m.logs {
		var style lipgloss.Style
		prefix := "-"
		switch entry.Level {
		case fetch.LevelError:
			style = errorStyle
			prefix = "x"
		case fetch.LevelWarning:
			style = warningStyle
			prefix = "!"
		case fetch.LevelSuccess:
			style = successStyle
			prefix = "+"
		case fetch.LevelInfo:
			style = infoStyle
			prefix = ">"
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(prefix + " " + entry.Message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateIdle:
		return "enter: start | f: fetch only | r: render only | v: verbose | esc: quit"
	case StateFetching, StateRendering:
		return "esc: cancel"
	case StateComplete, StateError:
		return "q: quit"
	}
	return ""
}

// Run starts the TUI application.
func Run(settings *config.Settings) error {
	p := tea.NewProgram(NewModel(settings), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
