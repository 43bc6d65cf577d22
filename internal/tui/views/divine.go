package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/shenshu/internal/clipboard"
	"github.com/f3rmion/shenshu/internal/config"
	"github.com/f3rmion/shenshu/internal/pinyin"
	"github.com/f3rmion/shenshu/internal/shenshu"
	"github.com/f3rmion/shenshu/internal/signs"
	"github.com/f3rmion/shenshu/internal/tui/bigchar"
	"github.com/mattn/go-runewidth"
)

const divineOwner = "divine"

// DivineModel is the 巧連神數 name divination view.
type DivineModel struct {
	input   textinput.Model
	diviner *shenshu.Diviner
	reader  *pinyin.Annotator
	pacer   pacer

	phase   Phase
	pending *shenshu.Result
	result  *shenshu.Result
	err     error

	copied  bool
	copyErr error

	width  int
	height int
}

// NewDivineModel creates the divination view.
func NewDivineModel(d *shenshu.Diviner, cfg *config.Config) DivineModel {
	ti := textinput.New()
	ti.Placeholder = "输入姓名，最多三个字"
	ti.Focus()
	ti.CharLimit = 12
	ti.Width = 24
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ecdc4"))
	ti.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffe66d"))

	return DivineModel{
		input:   ti,
		diviner: d,
		reader:  pinyin.NewAnnotator(),
		pacer:   newPacer(divineOwner, cfg.Delay),
	}
}

// SetSize updates the view dimensions.
func (m *DivineModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Focus gives the name input keyboard focus.
func (m *DivineModel) Focus() tea.Cmd { return m.input.Focus() }

// Blur removes keyboard focus from the name input.
func (m *DivineModel) Blur() { m.input.Blur() }

// Phase returns the current submit phase.
func (m DivineModel) Phase() Phase { return m.phase }

// Result returns the reading on screen, if any.
func (m DivineModel) Result() *shenshu.Result { return m.result }

// Err returns the last validation error.
func (m DivineModel) Err() error { return m.err }

// Update handles messages.
func (m DivineModel) Update(msg tea.Msg) (DivineModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if m.phase == PhaseComputing {
				return m, nil
			}
			return m.submit()
		case "ctrl+y":
			return m.copy()
		}

	case RevealMsg:
		if m.phase == PhaseComputing && m.pacer.current(msg) {
			m.result, m.pending = m.pending, nil
			m.phase = PhaseResult
		}
		return m, nil

	case clearCopiedMsg:
		if msg.owner == divineOwner {
			m.copied = false
			m.copyErr = nil
		}
		return m, nil

	default:
		if m.phase == PhaseComputing {
			if cmd := m.pacer.update(msg); cmd != nil {
				return m, cmd
			}
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit validates and computes synchronously. A rejected name leaves the
// previous reading in place; an accepted one replaces it after the busy window.
func (m DivineModel) submit() (DivineModel, tea.Cmd) {
	res, err := m.diviner.Divine(m.input.Value())
	if err != nil {
		m.err = err
		m.phase = PhaseError
		return m, nil
	}

	m.err = nil
	cmd := m.pacer.start()
	if cmd == nil {
		m.result = res
		m.phase = PhaseResult
		return m, nil
	}
	m.pending = res
	m.phase = PhaseComputing
	return m, cmd
}

func (m DivineModel) copy() (DivineModel, tea.Cmd) {
	if m.result == nil || m.phase == PhaseComputing {
		return m, nil
	}
	if err := clipboard.Write(m.result.Summary()); err != nil {
		m.copyErr = err
	} else {
		m.copied = true
	}
	return m, clearCopiedAfter(divineOwner, 2*time.Second)
}

// View renders the divination view.
func (m DivineModel) View() string {
	var b strings.Builder

	b.WriteString(m.input.View())
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}

	if m.phase == PhaseComputing {
		b.WriteString("\n")
		b.WriteString(m.pacer.spinner.View())
		b.WriteString(" ")
		b.WriteString(loadingStyle.Render("起課中..."))
		b.WriteString("\n")
	} else if m.result != nil {
		b.WriteString("\n")
		b.WriteString(m.renderResult(m.result))
	}

	b.WriteString("\n")
	switch {
	case m.copied:
		b.WriteString(copiedStyle.Render("已复制到剪贴板"))
	case m.copyErr != nil:
		b.WriteString(errorStyle.Render(m.copyErr.Error()))
	case m.result != nil:
		b.WriteString(helpStyle.Render("enter: 起課 • ctrl+y: 复制结果"))
	default:
		b.WriteString(helpStyle.Render("输入姓名后按 Enter 起課"))
	}

	return b.String()
}

func (m DivineModel) renderResult(r *shenshu.Result) string {
	var b strings.Builder

	// Banner
	if banner := bigchar.Render(r.Traditional, 16, 8); banner != "" {
		b.WriteString(bannerStyle.Render(banner))
	} else {
		b.WriteString(bigCharStyle.Render(r.Traditional))
	}
	b.WriteString("\n\n")

	const w = 8
	b.WriteString(row("简体字", valueStyle.Render(r.Input), w))
	b.WriteString("\n")
	b.WriteString(row("繁体字", valueStyle.Render(r.Traditional), w))
	b.WriteString("\n")

	readings := m.reader.Annotate(r.Input)
	for i, s := range r.Strokes {
		var reading string
		if i < len(readings) {
			reading = readings[i]
		}
		line := fmt.Sprintf("%s %s %s",
			valueStyle.Render(s.Char),
			pinyinStyle.Render(runewidth.FillRight(reading, 6)),
			strokeStyle.Render(fmt.Sprintf("%d", s.Count)))
		label := ""
		if i == 0 {
			label = "笔画数"
		}
		b.WriteString(row(label, line, w))
		b.WriteString("\n")
	}

	b.WriteString(row("课数", valueStyle.Render(r.Formula()), w))
	b.WriteString("\n")
	b.WriteString(row("卦象", signStyle.Render(r.Sign.Name), w))
	b.WriteString("\n")

	if p := r.Sign.Paraphrase; p != nil {
		content := lipgloss.JoinVertical(lipgloss.Left,
			subtitleStyle.Render("解签"),
			"",
			row("描述", valueStyle.Render(p.Explain), 6),
			row("解释", valueStyle.Render(p.Description), 6),
			row("禁忌", valueStyle.Render(p.Avoid), 6),
		)
		box := boxStyle
		if m.width > 20 {
			box = box.MaxWidth(m.width - 4)
		}
		b.WriteString("\n")
		b.WriteString(box.Render(content))
		b.WriteString("\n")
	}
	if r.Sign.Placeholder {
		b.WriteString(helpStyle.Render("注: " + signs.PlaceholderNote))
		b.WriteString("\n")
	}

	return b.String()
}
