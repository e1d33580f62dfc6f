package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/mandelarea/internal/orchestration"
)

// programRef is a shared reference to the tea.Program. bubbletea copies the
// model on every Update, so the reporter needs a pointer that survives the
// copies in order to send messages from the driver goroutine.
type programRef struct {
	mu      sync.RWMutex
	program *tea.Program
}

// SetProgram sets the tea.Program reference.
func (r *programRef) SetProgram(p *tea.Program) {
	r.mu.Lock()
	r.program = p
	r.mu.Unlock()
}

// Send forwards msg to the program. It is a no-op before SetProgram.
func (r *programRef) Send(msg tea.Msg) {
	r.mu.RLock()
	p := r.program
	r.mu.RUnlock()
	if p != nil {
		p.Send(msg)
	}
}

// TUIPhaseReporter implements orchestration.PhaseReporter by turning phase
// notifications into bubbletea messages.
type TUIPhaseReporter struct {
	ref *programRef
}

var _ orchestration.PhaseReporter = (*TUIPhaseReporter)(nil)

// PhaseStarted sends a PhaseStartedMsg.
func (t *TUIPhaseReporter) PhaseStarted(info orchestration.PhaseInfo) {
	t.ref.Send(PhaseStartedMsg{Info: info})
}

// PhaseFinished sends a PhaseFinishedMsg.
func (t *TUIPhaseReporter) PhaseFinished(result orchestration.PhaseResult) {
	t.ref.Send(PhaseFinishedMsg{Result: result})
}
