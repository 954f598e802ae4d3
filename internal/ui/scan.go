package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/appsweep/appsweep/internal/progress"
	"github.com/appsweep/appsweep/internal/scanner"
)

// ScanDoneMsg ends the scan view.
type ScanDoneMsg struct {
	Err error
}

// ScanModel shows live progress while the filesystem walk runs.
type ScanModel struct {
	app     scanner.App
	spinner spinner.Model
	update  progress.ScanUpdate
	done    bool
	err     error
}

// NewScanModel creates the scan progress view.
func NewScanModel(app scanner.App) *ScanModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = cursorStyle
	return &ScanModel{
		app:     app,
		spinner: s,
		update:  progress.ScanUpdate{Phase: progress.PhaseScanning, StartTime: time.Now()},
	}
}

// Err returns the error the scan finished with, if any.
func (m *ScanModel) Err() error {
	return m.err
}

// Init starts the spinner.
func (m *ScanModel) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update handles messages.
func (m *ScanModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case progress.ScanUpdate:
		// Path-only updates carry no timing or totals; keep the last known.
		if msg.StartTime.IsZero() {
			msg.StartTime = m.update.StartTime
		}
		if msg.RootsTotal == 0 {
			msg.RootsTotal = m.update.RootsTotal
			msg.RootsDone = m.update.RootsDone
		}
		if msg.CurrentPath == "" {
			msg.CurrentPath = m.update.CurrentPath
		}
		m.update = msg
		return m, nil

	case ScanDoneMsg:
		m.done = true
		m.err = msg.Err
		return m, tea.Quit

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.err = fmt.Errorf("scan interrupted")
			return m, tea.Quit
		}
	}

	return m, nil
}

// View renders the scan progress view.
func (m *ScanModel) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Scanning for %s leftovers", m.app.Name)))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s roots %d/%d, %d entries found\n",
		m.spinner.View(), m.update.RootsDone, m.update.RootsTotal, m.update.EntriesFound))
	if m.update.CurrentPath != "" {
		b.WriteString(dimStyle.Render(truncatePath(m.update.CurrentPath, 76)))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render(fmt.Sprintf("elapsed %s",
		time.Since(m.update.StartTime).Round(time.Second))))
	b.WriteString("\n")
	return b.String()
}
