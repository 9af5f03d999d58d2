package tui_test

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dohaquest/questlinks/content"
	"github.com/dohaquest/questlinks/model"
	"github.com/dohaquest/questlinks/overlay"
	"github.com/dohaquest/questlinks/tui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	escape = tea.KeyMsg{Type: tea.KeyEsc}
	down   = tea.KeyMsg{Type: tea.KeyDown}
	up     = tea.KeyMsg{Type: tea.KeyUp}
)

func newModel(t *testing.T) *tui.Model {
	t.Helper()

	m := tui.New(tui.Options{
		GlamourStyle: "notty",
		Now:          func() time.Time { return time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC) },
	})
	send(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	return m
}

func send(t *testing.T, m *tui.Model, msg tea.Msg) tea.Cmd {
	t.Helper()

	next, cmd := m.Update(msg)
	require.Same(t, m, next)

	return cmd
}

func assertClosed(t *testing.T, m *tui.Model) {
	t.Helper()

	assert.Equal(t, overlay.Closed(), m.State())
	assert.False(t, m.Document().ScrollLocked())
	assert.Equal(t, 0, m.Document().Listeners())
}

func assertOpen(t *testing.T, m *tui.Model, id model.ModalID) {
	t.Helper()

	assert.Equal(t, overlay.Open(id), m.State())
	assert.True(t, m.Document().ScrollLocked())
	assert.Equal(t, 1, m.Document().Listeners())
}

func TestInitialView(t *testing.T) {
	m := newModel(t)

	assertClosed(t, m)
	assert.Nil(t, m.Init())

	view := m.View()
	assert.Contains(t, view, content.Hero().Brand)
	assert.Contains(t, view, content.Links()[0].Title)
	assert.Contains(t, view, "2026")

	for _, tr := range content.Triggers() {
		assert.Contains(t, view, tr.Label)
	}
}

func TestOpenKeys(t *testing.T) {
	tests := []struct {
		key string
		id  model.ModalID
	}{
		{"a", model.ModalAbout},
		{"p", model.ModalPrivacy},
		{"s", model.ModalSecurity},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			m := newModel(t)

			send(t, m, runes(tt.key))
			assertOpen(t, m, tt.id)

			c, ok := content.Modal(tt.id)
			require.True(t, ok)

			view := m.View()
			assert.Contains(t, view, c.Title)
			assert.Contains(t, view, content.Hero().CloseLabel)
			assert.NotContains(t, view, content.Links()[0].Destination)
			assert.NoError(t, m.Err())
		})
	}
}

func TestDismiss(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
	}{
		{"close control", runes("x")},
		{"cancel key", escape},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newModel(t)

			send(t, m, runes("s"))
			send(t, m, tt.msg)

			assertClosed(t, m)
		})
	}
}

func TestSwitchKeepsLease(t *testing.T) {
	m := newModel(t)

	send(t, m, runes("a"))
	send(t, m, runes("p"))
	assertOpen(t, m, model.ModalPrivacy)

	send(t, m, escape)
	assertClosed(t, m)
}

func TestKeysInsidePanelDoNotClose(t *testing.T) {
	m := newModel(t)

	send(t, m, runes("a"))

	for _, msg := range []tea.KeyMsg{runes("z"), down, up, {Type: tea.KeyEnter}} {
		send(t, m, msg)
		assertOpen(t, m, model.ModalAbout)
	}

	assert.Equal(t, 0, m.Cursor())
}

func TestClosedKeysAreNoops(t *testing.T) {
	m := newModel(t)

	send(t, m, escape)
	assertClosed(t, m)

	send(t, m, runes("x"))
	assertClosed(t, m)
}

func TestCursor(t *testing.T) {
	m := newModel(t)
	last := len(content.Links()) - 1

	for range last + 3 {
		send(t, m, down)
	}

	assert.Equal(t, last, m.Cursor())

	for range last + 3 {
		send(t, m, up)
	}

	assert.Equal(t, 0, m.Cursor())
}

func TestRepeatedOpenCloseDoesNotLeak(t *testing.T) {
	m := newModel(t)

	for i := range 50 {
		send(t, m, runes([]string{"a", "p", "s"}[i%3]))
		assert.Equal(t, 1, m.Document().Listeners())
		send(t, m, escape)
		assertClosed(t, m)
	}
}

func TestQuitUnmounts(t *testing.T) {
	m := newModel(t)

	send(t, m, runes("a"))

	cmd := send(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	assertClosed(t, m)

	send(t, m, runes("a"))
	assertClosed(t, m)
	assert.ErrorIs(t, m.Err(), overlay.ErrNotMounted)
}

func TestModalMarkdown(t *testing.T) {
	c, ok := content.Modal(model.ModalSecurity)
	require.True(t, ok)

	md := tui.ModalMarkdown(c)

	var items int

	for _, line := range strings.Split(md, "\n") {
		if strings.HasPrefix(line, "- ") {
			items++
		}
	}

	assert.Equal(t, 5, items)
	assert.NotContains(t, md, c.Title)

	md = tui.ModalMarkdown(model.ModalContent{Blocks: []model.Block{
		{Kind: model.BlockHeading, Text: "h"},
		{Kind: model.BlockParagraph, Text: "p"},
	}})
	assert.Equal(t, "#### h\n\np\n\n", md)
}

func TestGlyph(t *testing.T) {
	assert.Equal(t, "✉", tui.Glyph(model.IconMail))
	assert.Equal(t, " ", tui.Glyph("rocket"))
}
