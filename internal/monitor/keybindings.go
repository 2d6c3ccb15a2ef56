package monitor

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Key bindings as constants for consistency.
const (
	KeyQuit         = "q"
	KeyQuitAlt      = "ctrl+c"
	KeyRefresh      = "r"
	KeyToggleUnits  = "u"
	KeySwitchView   = "tab"
	KeyViewTable    = "1"
	KeyViewChart    = "2"
	KeyFilter       = "/"
	KeyClose        = "esc"
	KeyToggleHelp   = "?"
	KeyScrollTop    = "home"
	KeyScrollBottom = "end"
)

// HandleKeyMsg processes keyboard input and returns updated model state and command.
// Returns true if the key was handled, false otherwise.
func (m *Model) HandleKeyMsg(msg tea.KeyMsg) (bool, tea.Cmd) {
	key := msg.String()

	// Help toggle takes priority
	if key == KeyToggleHelp {
		m.showHelp = !m.showHelp
		return true, nil
	}

	// If help is showing, Esc closes it
	if m.showHelp && key == KeyClose {
		m.showHelp = false
		return true, nil
	}

	switch key {
	case KeyQuit, KeyQuitAlt:
		m.quitting = true
		return true, tea.Quit

	case KeyRefresh:
		// Manual refresh obeys the same in-flight guard as the timer
		if !m.fetching {
			m.fetching = true
			return true, m.fetchCmd()
		}
		return true, nil

	case KeyToggleUnits:
		// Re-renders from the current snapshot; no refetch
		m.human = !m.human
		m.refreshTable()
		return true, nil

	case KeySwitchView:
		if m.viewMode == ViewTable {
			m.viewMode = ViewChart
		} else {
			m.viewMode = ViewTable
		}
		return true, nil

	case KeyViewTable:
		m.viewMode = ViewTable
		return true, nil

	case KeyViewChart:
		m.viewMode = ViewChart
		return true, nil

	case KeyFilter:
		if m.viewMode == ViewTable {
			m.filtering = true
			m.filterInput.Focus()
			return true, textinput.Blink
		}
		return true, nil

	case KeyClose:
		// Esc clears a committed filter, or drops back to the table view
		if m.filterInput.Value() != "" {
			m.filterInput.SetValue("")
			m.refreshTable()
			return true, nil
		}
		m.viewMode = ViewTable
		return true, nil

	case KeyScrollTop:
		if m.viewportReady {
			m.tableViewport.GotoTop()
		}
		return true, nil

	case KeyScrollBottom:
		if m.viewportReady {
			m.tableViewport.GotoBottom()
		}
		return true, nil
	}

	return false, nil
}
