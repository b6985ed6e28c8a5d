package reportview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rowanmc/mccore/internal/diagnose"
	"github.com/rowanmc/mccore/internal/fetch"
)

// RepairProgressMsg carries one fetch.Progress tick into the model.
type RepairProgressMsg struct{ Progress fetch.Progress }

// RepairDoneMsg signals the repair pass finished (successfully or not).
type RepairDoneMsg struct {
	Result *fetch.Result
	Err    error
}

type stepStatus string

const (
	stepPending stepStatus = "pending"
	stepRunning stepStatus = "running"
	stepDone    stepStatus = "done"
	stepError   stepStatus = "error"
)

type step struct {
	role   diagnose.IssueRole
	status stepStatus
}

// RepairModel drives a Bubble Tea progress bar over an internal/fetch
// repair pass, one step per distinct issue role the report flagged.
type RepairModel struct {
	report *diagnose.Report

	progress progress.Model
	steps    []step
	width    int

	done   bool
	err    error
	result *fetch.Result
}

// NewRepairModel builds a RepairModel with one pending step per issue
// role present in report.
func NewRepairModel(report *diagnose.Report) *RepairModel {
	p := progress.New(progress.WithDefaultGradient(), progress.WithWidth(50))

	seen := make(map[diagnose.IssueRole]bool)
	var steps []step
	for _, issue := range report.Issues {
		if seen[issue.Role] {
			continue
		}
		seen[issue.Role] = true
		steps = append(steps, step{role: issue.Role, status: stepPending})
	}

	return &RepairModel{report: report, progress: p, steps: steps}
}

// SetWidth resizes the progress bar to fit a terminal width.
func (m *RepairModel) SetWidth(width int) {
	m.width = width
	if width > 10 {
		m.progress.Width = width - 10
	}
}

func (m *RepairModel) Init() tea.Cmd { return nil }

func (m *RepairModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case RepairProgressMsg:
		m.markRunning(msg.Progress.CurrentItem)
		var percent float64
		if msg.Progress.TotalItems > 0 {
			percent = float64(msg.Progress.CompletedItems) / float64(msg.Progress.TotalItems)
		}
		return m, m.progress.SetPercent(percent)

	case RepairDoneMsg:
		m.done = true
		m.err = msg.Err
		m.result = msg.Result
		for i := range m.steps {
			if m.err != nil {
				m.steps[i].status = stepError
			} else {
				m.steps[i].status = stepDone
			}
		}
		return m, nil

	case progress.FrameMsg:
		updated, cmd := m.progress.Update(msg)
		m.progress = updated.(progress.Model)
		return m, cmd

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.done && (msg.String() == "enter" || msg.String() == "q") {
			return m, tea.Quit
		}
	}
	return m, nil
}

// markRunning marks the running step done and the next pending step (in
// report order) running, once per progress tick that names a current item;
// fetch's Item has no role, so the step shown is not matched to the file
// being fetched. A tick with an empty CurrentItem changes nothing.
func (m *RepairModel) markRunning(currentItem string) {
	if currentItem == "" {
		return
	}
	for i := range m.steps {
		if m.steps[i].status == stepRunning {
			m.steps[i].status = stepDone
		}
	}
	if len(m.steps) > 0 {
		for i := range m.steps {
			if m.steps[i].status == stepPending {
				m.steps[i].status = stepRunning
				break
			}
		}
	}
}

func (m *RepairModel) View() string {
	header := titleStyle.Render(fmt.Sprintf("Repairing: %s", m.report.VersionID))

	var stepsView strings.Builder
	for _, s := range m.steps {
		icon, style := stepGlyph(s.status)
		stepsView.WriteString(style.Render(fmt.Sprintf("%s %s", icon, roleLabel(s.role))))
		stepsView.WriteString("\n")
	}

	var footer string
	switch {
	case m.done && m.err != nil:
		footer = errorStyle.Render(fmt.Sprintf("\n✗ Repair failed: %v\n\n[Enter] Close", m.err))
	case m.done:
		footer = successStyle.Render(fmt.Sprintf("\n✓ Fixed %d file(s). [Enter] Close", m.result.Completed))
	default:
		footer = mutedStyle.Render("\n[Ctrl+C] Cancel")
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		"",
		m.progress.View(),
		"",
		stepsView.String(),
		footer,
	)
}

func stepGlyph(status stepStatus) (string, lipgloss.Style) {
	switch status {
	case stepDone:
		return "✓", successStyle
	case stepRunning:
		return "◐", warnStyle
	case stepError:
		return "✗", errorStyle
	default:
		return "○", mutedStyle
	}
}
