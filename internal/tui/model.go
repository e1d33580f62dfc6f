// Package tui implements the --tui dashboard: a live table of the benchmark
// phases with a spinner on the running phase and a host CPU sparkline. It
// exits by itself when the run completes.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/mandelarea/internal/format"
	"github.com/agbru/mandelarea/internal/orchestration"
	"github.com/agbru/mandelarea/internal/sysmon"
)

// ErrInterrupted is returned by Run when the user quits before the run
// completes.
var ErrInterrupted = errors.New("dashboard closed before the run completed")

// sampleInterval is the period of host sampling.
const sampleInterval = 500 * time.Millisecond

// historyLength is the number of CPU samples kept for the sparkline.
const historyLength = 40

type phaseState int

const (
	phasePending phaseState = iota
	phaseRunning
	phaseDone
	phaseFailed
)

type phaseRow struct {
	name     string
	state    phaseState
	duration time.Duration
	outside  int
	err      error
}

// RunFunc executes the benchmark, reporting phases to reporter.
type RunFunc func(reporter orchestration.PhaseReporter) (orchestration.Report, error)

// Model is the root bubbletea model of the dashboard.
type Model struct {
	header  HeaderModel
	rows    []phaseRow
	spinner spinner.Model
	keymap  KeyMap
	cpu     *history
	mem     float64

	report orchestration.Report
	err    error
	done   bool

	run RunFunc
	ref *programRef
}

// NewModel creates a dashboard for the given phase names.
func NewModel(phases []string, version string, run RunFunc) Model {
	rows := make([]phaseRow, len(phases))
	for i, name := range phases {
		rows[i] = phaseRow{name: name}
	}
	sp := spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(phaseNameStyle))
	return Model{
		header:  NewHeaderModel(version),
		rows:    rows,
		spinner: sp,
		keymap:  DefaultKeyMap(),
		cpu:     newHistory(historyLength),
		run:     run,
		ref:     &programRef{},
	}
}

// Init starts the spinner, the sampler and the run.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, tickCmd(), startRunCmd(m.ref, m.run))
}

// Update handles incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keymap.Quit) {
			return m, tea.Quit
		}
		return m, nil

	case PhaseStartedMsg:
		if i := msg.Info.Index; i >= 0 && i < len(m.rows) {
			m.rows[i].state = phaseRunning
		}
		return m, nil

	case PhaseFinishedMsg:
		r := msg.Result
		if i := r.Index; i >= 0 && i < len(m.rows) {
			m.rows[i].duration = r.Duration
			m.rows[i].outside = r.Outside
			m.rows[i].err = r.Err
			m.rows[i].state = phaseDone
			if r.Err != nil {
				m.rows[i].state = phaseFailed
			}
		}
		return m, nil

	case RunCompleteMsg:
		m.done = true
		m.report = msg.Report
		m.err = msg.Err
		m.header.SetDone()
		return m, tea.Quit

	case TickMsg:
		if m.done {
			return m, nil
		}
		return m, tea.Batch(sampleSysStatsCmd(), tickCmd())

	case SysStatsMsg:
		m.cpu.Push(msg.CPUPercent)
		m.mem = msg.MemPercent
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	var b strings.Builder
	for _, row := range m.rows {
		b.WriteString(m.renderRow(row))
		b.WriteByte('\n')
	}

	if m.done && m.err == nil {
		fmt.Fprintf(&b, "\nArea %s\n", resultValueStyle.Render(format.FormatArea(m.report.Area, m.report.ErrorBound)))
	}
	if m.err != nil {
		fmt.Fprintf(&b, "\n%s\n", errorStyle.Render(m.err.Error()))
	}

	host := fmt.Sprintf("cpu %s %5.1f%%  mem %5.1f%%",
		cpuSparkStyle.Render(m.cpu.Sparkline()), m.cpu.Last(), m.mem)

	footer := footerKeyStyle.Render(m.keymap.Quit.Help().Key) + dimStyle.Render(" "+m.keymap.Quit.Help().Desc)
	return lipgloss.JoinVertical(lipgloss.Left,
		m.header.View(),
		panelStyle.Render(strings.TrimRight(b.String(), "\n")),
		dimStyle.Render(host),
		footer,
	)
}

func (m Model) renderRow(row phaseRow) string {
	name := phaseNameStyle.Render(fmt.Sprintf("%-16s", row.name))
	switch row.state {
	case phaseRunning:
		return fmt.Sprintf("%s %s running", m.spinner.View(), name)
	case phaseDone:
		return fmt.Sprintf("%s %s %s  %d outside", successStyle.Render("✓"), name,
			durationStyle.Render(format.FormatExecutionDuration(row.duration)), row.outside)
	case phaseFailed:
		return fmt.Sprintf("%s %s %s", errorStyle.Render("✗"), name, errorStyle.Render(row.err.Error()))
	default:
		return fmt.Sprintf("%s %s pending", dimStyle.Render("·"), name)
	}
}

// Run shows the dashboard while run executes and returns its outcome. If the
// user closes the dashboard first, Run returns ErrInterrupted; the scan
// itself is not interrupted.
func Run(ctx context.Context, phases []string, version string, run RunFunc) (orchestration.Report, error) {
	initTUIStyles()

	model := NewModel(phases, version, run)
	p := tea.NewProgram(model, tea.WithContext(ctx))
	model.ref.SetProgram(p)

	final, err := p.Run()
	if err != nil {
		return orchestration.Report{}, err
	}
	m, ok := final.(Model)
	if !ok || !m.done {
		return orchestration.Report{}, ErrInterrupted
	}
	return m.report, m.err
}

// startRunCmd runs the benchmark on the command goroutine.
func startRunCmd(ref *programRef, run RunFunc) tea.Cmd {
	return func() tea.Msg {
		report, err := run(&TUIPhaseReporter{ref: ref})
		return RunCompleteMsg{Report: report, Err: err}
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(sampleInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func sampleSysStatsCmd() tea.Cmd {
	return func() tea.Msg {
		s := sysmon.Sample()
		return SysStatsMsg{CPUPercent: s.CPUPercent, MemPercent: s.MemPercent}
	}
}
