package monitor

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"arcwatch/internal/arcstats"
	"arcwatch/internal/config"
	"arcwatch/internal/logger"
)

// ViewMode defines the current display mode of the dashboard.
type ViewMode int

const (
	// ViewTable shows the full statistics table with filtering.
	ViewTable ViewMode = iota
	// ViewChart shows hit/miss/ratio history graphs.
	ViewChart
)

// Model is the Bubble Tea model for the ARC statistics dashboard.
//
// All state lives here and is mutated only inside Update. Fetches run as
// commands off the render loop and hand their result back as a single
// message, so a poll either swaps the whole snapshot in or leaves the
// previous one untouched.
type Model struct {
	cfg    *config.Config
	source arcstats.Source
	log    logger.Logger

	snapshot   *arcstats.Snapshot
	metrics    arcstats.Metrics
	history    *arcstats.History
	lastUpdate time.Time
	fetchErr   error

	human    bool
	viewMode ViewMode
	showHelp bool

	filterInput textinput.Model
	filtering   bool

	tableViewport viewport.Model
	viewportReady bool

	// fetching guards against overlapping polls: a tick that fires while
	// a fetch is still in flight re-arms the timer without starting
	// another fetch.
	fetching bool

	quitting bool
	width    int
	height   int
}

// tickMsg signals a periodic refresh.
type tickMsg time.Time

// statsMsg carries the raw output of a successful fetch.
type statsMsg struct {
	raw string
	at  time.Time
}

// statsErrMsg carries a failed fetch. The previous snapshot stays on screen.
type statsErrMsg struct {
	err error
}

// NewModel creates a dashboard model polling the given source.
func NewModel(cfg *config.Config, source arcstats.Source) Model {
	filter := textinput.New()
	filter.Placeholder = "filter keys"
	filter.Prompt = "/ "
	filter.CharLimit = 64

	return Model{
		cfg:         cfg,
		source:      source,
		log:         logger.NewEnvLogger("[monitor]"),
		history:     arcstats.NewHistory(cfg.HistoryCapacity),
		human:       cfg.HumanReadable,
		filterInput: filter,
		// Init fires the first fetch immediately.
		fetching: true,
	}
}

// Init starts the tick timer and triggers an initial fetch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.tickCmd(),
		m.fetchCmd(),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// While the filter prompt is focused, most keys belong to it
		if m.filtering {
			return m.updateFilter(msg)
		}
		handled, cmd := m.HandleKeyMsg(msg)
		if handled {
			return m, cmd
		}
		// Unhandled keys scroll the table
		if m.viewMode == ViewTable && m.viewportReady {
			var cmd tea.Cmd
			m.tableViewport, cmd = m.tableViewport.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeViewport()
		m.refreshTable()

	case tickMsg:
		cmds := []tea.Cmd{m.tickCmd()}
		if !m.fetching {
			m.fetching = true
			cmds = append(cmds, m.fetchCmd())
		} else {
			m.log.Debug("poll still in flight, skipping this tick")
		}
		return m, tea.Batch(cmds...)

	case statsMsg:
		m.fetching = false
		m.applySnapshot(msg.raw, msg.at)

	case statsErrMsg:
		m.fetching = false
		m.fetchErr = msg.err
		m.log.Debug("refresh failed: %v", msg.err)
	}

	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.renderDashboard()
}

// tickCmd returns a command that sends a tick after the refresh interval.
func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.cfg.RefreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// fetchCmd returns a command that fetches statistics off the render loop.
// The fetch is bounded by the refresh interval so a wedged source command
// surfaces as a failed poll rather than a frozen dashboard.
func (m Model) fetchCmd() tea.Cmd {
	source := m.source
	timeout := m.cfg.RefreshInterval

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		raw, err := source.Fetch(ctx)
		if err != nil {
			return statsErrMsg{err: err}
		}
		return statsMsg{raw: raw, at: time.Now()}
	}
}

// applySnapshot replaces the displayed state with a freshly parsed poll.
// The swap is wholesale: entries, derived metrics, and history all advance
// together, and any earlier fetch error is cleared.
func (m *Model) applySnapshot(raw string, at time.Time) {
	snap := arcstats.Parse(raw)
	snap.CapturedAt = at

	m.snapshot = snap
	m.metrics = arcstats.Aggregate(snap, m.cfg.LowRatioThreshold)
	m.history.Record(m.metrics)
	m.lastUpdate = at
	m.fetchErr = nil

	m.refreshTable()
}

// updateFilter routes keys to the filter prompt while it is focused.
func (m Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		// Cancel: drop the filter entirely
		m.filtering = false
		m.filterInput.Blur()
		m.filterInput.SetValue("")
		m.refreshTable()
		return m, nil

	case "enter":
		// Commit: keep the filter, return focus to the table
		m.filtering = false
		m.filterInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	m.refreshTable()
	return m, cmd
}

// Filter returns the active filter text.
func (m Model) Filter() string {
	return m.filterInput.Value()
}

// FilteredEntries returns the snapshot entries whose keys contain the
// filter text (case-insensitive). An empty filter passes everything.
func (m Model) FilteredEntries() []arcstats.StatLine {
	if m.snapshot == nil {
		return nil
	}
	return filterEntries(m.snapshot.Entries, m.filterInput.Value())
}

// SecondsSinceUpdate returns how many seconds have passed since the last
// successful poll.
func (m Model) SecondsSinceUpdate() int {
	if m.lastUpdate.IsZero() {
		return 0
	}
	return int(time.Since(m.lastUpdate).Seconds())
}

// resizeViewport sizes the table viewport to the space between header and
// footer chrome.
func (m *Model) resizeViewport() {
	headerHeight := 2 // title bar + filter line
	footerHeight := 3 // summary + sparkline + key hints

	viewportHeight := m.height - headerHeight - footerHeight
	if viewportHeight < 1 {
		viewportHeight = 1
	}

	if !m.viewportReady {
		m.tableViewport = viewport.New(m.width, viewportHeight)
		m.tableViewport.YPosition = headerHeight
		m.viewportReady = true
	} else {
		m.tableViewport.Width = m.width
		m.tableViewport.Height = viewportHeight
	}
}

// refreshTable re-renders the table viewport content from current state.
func (m *Model) refreshTable() {
	if !m.viewportReady {
		return
	}
	m.tableViewport.SetContent(m.renderTableRows())
}
