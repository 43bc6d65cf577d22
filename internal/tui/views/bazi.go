package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/shenshu/internal/bazi"
	"github.com/f3rmion/shenshu/internal/config"
	"github.com/mattn/go-runewidth"
)

const baziOwner = "bazi"

// BaziModel is the 八字排盘 birth chart view.
type BaziModel struct {
	input textinput.Model
	pacer pacer

	phase   Phase
	pending *bazi.Chart
	chart   *bazi.Chart
	err     error

	width  int
	height int
}

// NewBaziModel creates the birth chart view.
func NewBaziModel(cfg *config.Config) BaziModel {
	ti := textinput.New()
	ti.Placeholder = "YYYY-MM-DD HH:MM"
	ti.CharLimit = 19
	ti.Width = 24
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ecdc4"))
	ti.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffe66d"))

	return BaziModel{
		input: ti,
		pacer: newPacer(baziOwner, cfg.Delay),
	}
}

// SetSize updates the view dimensions.
func (m *BaziModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Focus gives the date input keyboard focus.
func (m *BaziModel) Focus() tea.Cmd { return m.input.Focus() }

// Blur removes keyboard focus from the date input.
func (m *BaziModel) Blur() { m.input.Blur() }

// Phase returns the current submit phase.
func (m BaziModel) Phase() Phase { return m.phase }

// Chart returns the chart on screen, if any.
func (m BaziModel) Chart() *bazi.Chart { return m.chart }

// Err returns the last input error.
func (m BaziModel) Err() error { return m.err }

// Update handles messages.
func (m BaziModel) Update(msg tea.Msg) (BaziModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "enter" {
			if m.phase == PhaseComputing {
				return m, nil
			}
			return m.submit()
		}

	case RevealMsg:
		if m.phase == PhaseComputing && m.pacer.current(msg) {
			m.chart, m.pending = m.pending, nil
			m.phase = PhaseResult
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

func (m BaziModel) submit() (BaziModel, tea.Cmd) {
	t, err := bazi.Parse(m.input.Value())
	if err == nil {
		m.pending, err = bazi.Calculate(t)
	}
	if err != nil {
		m.err = err
		m.pending = nil
		m.phase = PhaseError
		return m, nil
	}

	m.err = nil
	cmd := m.pacer.start()
	if cmd == nil {
		m.chart, m.pending = m.pending, nil
		m.phase = PhaseResult
		return m, nil
	}
	m.phase = PhaseComputing
	return m, cmd
}

// View renders the birth chart view.
func (m BaziModel) View() string {
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
		b.WriteString(loadingStyle.Render("排盘中..."))
		b.WriteString("\n")
	} else if m.chart != nil {
		b.WriteString("\n")
		b.WriteString(renderChart(m.chart))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("输入公历日期时间，如 2016-09-18 10:00，按 Enter 排盘"))

	return b.String()
}

func renderChart(c *bazi.Chart) string {
	var b strings.Builder

	const w = 8
	lunar := c.Lunar.Year + "年" + c.Lunar.Month + "月" + c.Lunar.Day + " " + c.Lunar.Hour + "时"
	b.WriteString(row("公历", valueStyle.Render(c.Solar.Format("2006-01-02 15:04")), w))
	b.WriteString("\n")
	b.WriteString(row("农历", valueStyle.Render(lunar), w))
	b.WriteString("\n")
	b.WriteString(row("生肖", valueStyle.Render(c.Animal), w))
	b.WriteString("\n")
	b.WriteString(row("星座", valueStyle.Render(c.StarSign+"座"), w))
	b.WriteString("\n")
	b.WriteString(row("日主", elementStyle.Render(c.DayMaster()), w))
	b.WriteString("\n\n")

	b.WriteString(boxStyle.Render(pillarTable(c)))
	b.WriteString("\n")
	return b.String()
}

// pillarTable lays the four pillars out as columns.
func pillarTable(c *bazi.Chart) string {
	header := []string{"", "年柱", "月柱", "日柱", "时柱"}
	rows := [][]string{
		append([]string{"八字"}, c.GanZhi.Slice()...),
		append([]string{"五行"}, c.WuXing.Slice()...),
		append([]string{"纳音"}, c.NaYin.Slice()...),
		append([]string{"生肖"}, c.ShengXiao.Slice()...),
	}

	const cell = 8
	var lines []string
	lines = append(lines, subtitleStyle.Render(joinCells(header, cell)))
	for _, r := range rows {
		label := labelStyle.Render(runewidth.FillRight(r[0], cell))
		lines = append(lines, label+valueStyle.Render(joinCells(r[1:], cell)))
	}
	return strings.Join(lines, "\n")
}

func joinCells(cells []string, width int) string {
	var b strings.Builder
	for _, c := range cells {
		b.WriteString(runewidth.FillRight(c, width))
	}
	return b.String()
}
