package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/f3rmion/shenshu/internal/config"
	"github.com/f3rmion/shenshu/internal/shenshu"
	"github.com/f3rmion/shenshu/internal/tui/views"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp() AppModel {
	m := NewApp(shenshu.NewDiviner(), &config.Config{})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return next.(AppModel)
}

func send(t *testing.T, m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	app, ok := next.(AppModel)
	require.True(t, ok)
	return app, cmd
}

func key(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestAppStartsOnDivine(t *testing.T) {
	m := newTestApp()
	assert.Equal(t, ViewDivine, m.CurrentView())
	assert.False(t, m.SidebarActive())
	assert.Contains(t, m.View(), "巧連神數")
}

func TestAppDigitsReachInput(t *testing.T) {
	m := newTestApp()
	m, _ = send(t, m, key("tab"))
	m, _ = send(t, m, key("2"))
	require.Equal(t, ViewBazi, m.CurrentView())
	require.False(t, m.SidebarActive())

	m, _ = send(t, m, key("2016-09-18 10:00"))
	m, _ = send(t, m, key("1"))
	assert.Equal(t, ViewBazi, m.CurrentView())
}

func TestAppDivineFlow(t *testing.T) {
	m := newTestApp()
	m, _ = send(t, m, key("王"))
	m, _ = send(t, m, key("enter"))

	require.NotNil(t, m.Divine().Result())
	assert.Equal(t, views.PhaseResult, m.Divine().Phase())
	assert.Equal(t, 185, m.Divine().Result().Course)
}

func TestAppBaziFlow(t *testing.T) {
	m := newTestApp()
	m, _ = send(t, m, key("tab"))
	m, _ = send(t, m, key("j"))
	m, _ = send(t, m, key("enter"))
	require.Equal(t, ViewBazi, m.CurrentView())

	m, _ = send(t, m, key("2016-09-18 10:00"))
	m, _ = send(t, m, key("enter"))
	require.NotNil(t, m.Bazi().Chart())
	assert.Equal(t, "丙申", m.Bazi().Chart().GanZhi.Year)
}

func TestAppRevealReachesHiddenView(t *testing.T) {
	m := NewApp(shenshu.NewDiviner(), &config.Config{Delay: time.Second})
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	m, _ = send(t, m, key("王"))
	m, cmd := send(t, m, key("enter"))
	require.NotNil(t, cmd)
	assert.Equal(t, views.PhaseComputing, m.Divine().Phase())

	m, _ = send(t, m, key("tab"))
	m, _ = send(t, m, key("2"))
	m, _ = send(t, m, views.RevealMsg{Owner: "divine", Seq: 1})
	assert.Equal(t, views.PhaseResult, m.Divine().Phase())
}

func TestAppHelpAndQuit(t *testing.T) {
	m := newTestApp()

	// q is text while the content area has focus.
	m, _ = send(t, m, key("q"))
	assert.False(t, m.SidebarActive())

	m, _ = send(t, m, key("tab"))
	m, _ = send(t, m, key("?"))
	assert.Contains(t, m.View(), "按任意键关闭")
	m, _ = send(t, m, key("x"))
	assert.NotContains(t, m.View(), "按任意键关闭")

	_, cmd := send(t, m, key("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
