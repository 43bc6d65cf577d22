// Package tui provides the interactive terminal UI for shenshu.
package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/shenshu/internal/config"
	"github.com/f3rmion/shenshu/internal/shenshu"
	"github.com/f3rmion/shenshu/internal/tui/views"
)

// ViewType represents the current active view
type ViewType int

const (
	ViewDivine ViewType = iota
	ViewBazi
)

// MenuItem represents a sidebar menu entry
type MenuItem struct {
	Label    string
	View     ViewType
	Shortcut string
}

// AppModel is the main TUI model
type AppModel struct {
	config *config.Config

	// Layout state
	width        int
	height       int
	sidebarWidth int
	ready        bool

	// Navigation
	currentView   ViewType
	menuItems     []MenuItem
	selectedMenu  int
	sidebarActive bool

	// Sub-models (views)
	divineView views.DivineModel
	baziView   views.BaziModel

	// Help overlay
	showHelp bool
}

// NewApp creates the TUI application.
func NewApp(d *shenshu.Diviner, cfg *config.Config) AppModel {
	if cfg == nil {
		cfg = config.Default()
	}

	return AppModel{
		config:       cfg,
		sidebarWidth: 18,
		currentView:  ViewDivine,
		menuItems: []MenuItem{
			{Label: "巧連神數", View: ViewDivine, Shortcut: "1"},
			{Label: "八字排盘", View: ViewBazi, Shortcut: "2"},
		},
		divineView: views.NewDivineModel(d, cfg),
		baziView:   views.NewBaziModel(cfg),
	}
}

// Init initializes the model
func (m AppModel) Init() tea.Cmd {
	return textinput.Blink
}

// CurrentView returns the view shown in the content area.
func (m AppModel) CurrentView() ViewType { return m.currentView }

// SidebarActive reports whether keys go to the sidebar.
func (m AppModel) SidebarActive() bool { return m.sidebarActive }

// Divine returns the divination view.
func (m AppModel) Divine() views.DivineModel { return m.divineView }

// Bazi returns the birth chart view.
func (m AppModel) Bazi() views.BaziModel { return m.baziView }

// Update handles messages
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Help overlay - any key closes it
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}

		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "tab":
			m.sidebarActive = !m.sidebarActive
			return m, nil
		case "esc":
			if m.sidebarActive {
				return m, tea.Quit
			}
			m.sidebarActive = true
			return m, nil
		}

		// Single-letter shortcuts only apply in the sidebar; the content
		// area passes them to the text inputs.
		if m.sidebarActive {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "?":
				m.showHelp = true
				return m, nil
			case "1":
				return m.switchTo(ViewDivine)
			case "2":
				return m.switchTo(ViewBazi)
			case "j", "down":
				if m.selectedMenu < len(m.menuItems)-1 {
					m.selectedMenu++
				}
				return m, nil
			case "k", "up":
				if m.selectedMenu > 0 {
					m.selectedMenu--
				}
				return m, nil
			case "enter", "l", "right":
				return m.switchTo(m.menuItems[m.selectedMenu].View)
			}
			return m, nil
		}

		var cmd tea.Cmd
		switch m.currentView {
		case ViewDivine:
			m.divineView, cmd = m.divineView.Update(msg)
		case ViewBazi:
			m.baziView, cmd = m.baziView.Update(msg)
		}
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		contentWidth := m.width - m.sidebarWidth - 4
		contentHeight := m.height - 2
		m.divineView.SetSize(contentWidth, contentHeight)
		m.baziView.SetSize(contentWidth, contentHeight)
		return m, nil
	}

	// Timers and spinner ticks reach both views so a busy window finishes
	// even after the user switches away.
	var dcmd, bcmd tea.Cmd
	m.divineView, dcmd = m.divineView.Update(msg)
	m.baziView, bcmd = m.baziView.Update(msg)
	return m, tea.Batch(dcmd, bcmd)
}

func (m AppModel) switchTo(v ViewType) (AppModel, tea.Cmd) {
	m.currentView = v
	m.sidebarActive = false
	for i, item := range m.menuItems {
		if item.View == v {
			m.selectedMenu = i
			break
		}
	}

	switch v {
	case ViewBazi:
		m.divineView.Blur()
		return m, m.baziView.Focus()
	default:
		m.baziView.Blur()
		return m, m.divineView.Focus()
	}
}

// View renders the UI
func (m AppModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	sidebar := m.renderSidebar()

	var content string
	switch m.currentView {
	case ViewDivine:
		content = m.divineView.View()
	case ViewBazi:
		content = m.baziView.View()
	}

	title := TitleStyle.Render(m.menuItems[m.selectedMenu].Label)
	contentWidth := m.width - m.sidebarWidth - 4
	mainContent := ContentStyle.
		Width(contentWidth).
		Height(m.height - 2).
		Render(title + "\n\n" + content)

	return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, mainContent)
}

// renderSidebar renders the sidebar navigation
func (m AppModel) renderSidebar() string {
	var items []string

	items = append(items, SidebarTitleStyle.Render(" 神數 "))
	items = append(items, "")

	for i, item := range m.menuItems {
		label := item.Shortcut + ". " + item.Label

		style := SidebarItemStyle
		if i == m.selectedMenu {
			if m.sidebarActive {
				style = SidebarItemActiveStyle
			} else {
				style = SidebarItemStyle.Bold(true).Foreground(ColorSecondary)
			}
		}
		items = append(items, style.Render(label))
	}

	usedHeight := len(items) + 4
	if m.height > usedHeight {
		for i := 0; i < m.height-usedHeight-2; i++ {
			items = append(items, "")
		}
	}

	help := "tab 菜单"
	if m.sidebarActive {
		help = "? 帮助  q 退出"
	}
	items = append(items, SidebarHelpStyle.Render(help))

	content := lipgloss.JoinVertical(lipgloss.Left, items...)

	return SidebarStyle.
		Width(m.sidebarWidth).
		Height(m.height - 2).
		Render(content)
}

// renderHelp renders the help overlay
func (m AppModel) renderHelp() string {
	section := func(s string) string { return HelpSectionStyle.Render(s) + "\n" }
	key := func(k, desc string) string {
		return HelpKeyStyle.Render(k) + ValueStyle.Render(desc) + "\n"
	}

	helpText := HelpTitleStyle.Render("巧連神數 · 八字排盘") + "\n\n"

	helpText += section("全局")
	helpText += key("tab", "切换菜单焦点")
	helpText += key("esc", "返回菜单 / 退出")
	helpText += key("ctrl+c", "退出")

	helpText += section("菜单")
	helpText += key("1-2", "切换视图")
	helpText += key("j/k ↑/↓", "选择")
	helpText += key("enter", "打开")
	helpText += key("?", "帮助")
	helpText += key("q", "退出")

	helpText += section("巧連神數")
	helpText += key("enter", "起課")
	helpText += key("ctrl+y", "复制结果")

	helpText += section("八字排盘")
	helpText += key("enter", "排盘")

	helpText += "\n" + HelpStyle.Italic(true).Render("按任意键关闭")

	helpBox := HelpBoxStyle.Render(helpText)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, helpBox)
}
