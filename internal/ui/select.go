// Package ui implements the interactive terminal views.
package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/appsweep/appsweep/internal/scanner"
	"github.com/appsweep/appsweep/pkg/bytefmt"
)

// SelectModel lets the user pick which found entries to remove.
type SelectModel struct {
	app     scanner.App
	entries []scanner.Entry
	cursor  int
	offset  int
	width   int
	height  int

	confirmed bool
	aborted   bool
}

// NewSelectModel creates the selection view. Entries start selected.
func NewSelectModel(app scanner.App, entries []scanner.Entry) *SelectModel {
	items := make([]scanner.Entry, len(entries))
	copy(items, entries)
	for i := range items {
		items[i].Selected = true
	}
	return &SelectModel{
		app:     app,
		entries: items,
		width:   80,
		height:  24,
	}
}

// Entries returns the entries with their current selection state.
func (m *SelectModel) Entries() []scanner.Entry {
	return m.entries
}

// Confirmed reports whether the user accepted the selection.
func (m *SelectModel) Confirmed() bool {
	return m.confirmed
}

// Aborted reports whether the user quit without confirming.
func (m *SelectModel) Aborted() bool {
	return m.aborted
}

// Init initializes the selection view.
func (m *SelectModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m *SelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.entries)-1 {
				m.cursor++
			}
		case "g":
			m.cursor = 0
		case "G":
			if len(m.entries) > 0 {
				m.cursor = len(m.entries) - 1
			}
		case "space", " ":
			if m.cursor < len(m.entries) {
				m.entries[m.cursor].Selected = !m.entries[m.cursor].Selected
			}
		case "x":
			if m.cursor < len(m.entries) {
				m.entries[m.cursor].Selected = !m.entries[m.cursor].Selected
				if m.cursor < len(m.entries)-1 {
					m.cursor++
				}
			}
		case "a":
			for i := range m.entries {
				m.entries[i].Selected = true
			}
		case "n":
			for i := range m.entries {
				m.entries[i].Selected = false
			}
		case "enter":
			m.confirmed = true
			return m, tea.Quit
		case "q", "esc", "ctrl+c":
			m.aborted = true
			return m, tea.Quit
		}
		m.scrollToCursor()
	}

	return m, nil
}

func (m *SelectModel) scrollToCursor() {
	visible := m.visibleRows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+visible {
		m.offset = m.cursor - visible + 1
	}
}

func (m *SelectModel) visibleRows() int {
	// Title, help, summary and margins take up the rest.
	rows := m.height - 7
	if rows < 1 {
		rows = 1
	}
	return rows
}

// View renders the selection view.
func (m *SelectModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("Leftovers of %s (%s)", m.app.Name, m.app.BundleID)))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓:navigate  space:toggle  x:toggle+down  a:all  n:none  enter:confirm  q:quit"))
	b.WriteString("\n\n")

	visible := m.visibleRows()
	end := m.offset + visible
	if end > len(m.entries) {
		end = len(m.entries)
	}
	for i := m.offset; i < end; i++ {
		entry := m.entries[i]

		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("→ ")
		}
		checkbox := uncheckedStyle.Render("[ ]")
		if entry.Selected {
			checkbox = checkedStyle.Render("[✓]")
		}
		kind := ""
		if entry.IsDir {
			kind = "/"
		}

		b.WriteString(fmt.Sprintf("%s%s %s%s %s\n",
			cursor,
			checkbox,
			pathStyle.Render(truncatePath(entry.Path, m.width-24)),
			kind,
			sizeStyle.Render(bytefmt.Format(entry.Size)),
		))
	}
	if end < len(m.entries) {
		b.WriteString(dimStyle.Render(fmt.Sprintf("  … %d more below\n", len(m.entries)-end)))
	}

	var selected int
	var selectedSize int64
	for _, entry := range m.entries {
		if entry.Selected {
			selected++
			selectedSize += entry.Size
		}
	}
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Selected %d of %d entries, %s\n",
		selected, len(m.entries), bytefmt.Format(selectedSize)))

	return b.String()
}

func truncatePath(path string, max int) string {
	if max < 8 {
		max = 8
	}
	if len(path) <= max {
		return path
	}
	return "…" + path[len(path)-max+1:]
}

// SelectEntries runs the selection view and returns the chosen entries.
// The second result is false when the user quit without confirming.
func SelectEntries(app scanner.App, entries []scanner.Entry) ([]scanner.Entry, bool, error) {
	model := NewSelectModel(app, entries)
	program := tea.NewProgram(model, tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		return nil, false, fmt.Errorf("error running selection view: %w", err)
	}
	m, ok := final.(*SelectModel)
	if !ok || m.Aborted() {
		return nil, false, nil
	}
	return m.Entries(), m.Confirmed(), nil
}
