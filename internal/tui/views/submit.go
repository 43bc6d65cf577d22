package views

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
)

// Phase is where a view is in the submit cycle.
type Phase int

const (
	PhaseIdle      Phase = iota // nothing submitted yet
	PhaseComputing              // result computed, busy window running
	PhaseResult                 // result on screen
	PhaseError                  // last submission was rejected
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseComputing:
		return "computing"
	case PhaseResult:
		return "result"
	case PhaseError:
		return "error"
	default:
		return "unknown"
	}
}

// RevealMsg ends the busy window of the submission numbered Seq.
type RevealMsg struct {
	Owner string
	Seq   int
}

type clearCopiedMsg struct {
	owner string
}

// pacer holds a view in PhaseComputing for a fixed delay. Each submission
// gets a sequence number so a late reveal for an older one is ignored.
type pacer struct {
	owner   string
	delay   time.Duration
	seq     int
	spinner spinner.Model
}

func newPacer(owner string, delay time.Duration) pacer {
	s := spinner.New()
	s.Spinner = spinner.Moon
	s.Style = loadingStyle
	return pacer{owner: owner, delay: delay, spinner: s}
}

// start begins a busy window. It returns nil when the delay is disabled.
func (p *pacer) start() tea.Cmd {
	p.seq++
	if p.delay <= 0 {
		return nil
	}
	owner, seq := p.owner, p.seq
	reveal := tea.Tick(p.delay, func(time.Time) tea.Msg {
		return RevealMsg{Owner: owner, Seq: seq}
	})
	return tea.Batch(p.spinner.Tick, reveal)
}

// current reports whether msg belongs to the latest submission.
func (p *pacer) current(msg RevealMsg) bool {
	return msg.Owner == p.owner && msg.Seq == p.seq
}

func (p *pacer) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	p.spinner, cmd = p.spinner.Update(msg)
	return cmd
}

func clearCopiedAfter(owner string, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearCopiedMsg{owner: owner}
	})
}

// row renders "label  value" with labels padded to a common display width.
func row(label, value string, width int) string {
	pad := width - runewidth.StringWidth(label)
	if pad < 0 {
		pad = 0
	}
	return labelStyle.Render(label+runewidth.FillRight("", pad)) + "  " + value
}
