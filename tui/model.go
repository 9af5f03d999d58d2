// Package tui previews the landing page in a terminal. It drives the same
// overlay controller as the web page against a terminal document.
package tui

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dohaquest/questlinks/content"
	"github.com/dohaquest/questlinks/model"
	"github.com/dohaquest/questlinks/overlay"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	rowHeight     = 3
	// hero (badge with border, brand, intro, blank) plus footer lines
	chromeHeight = 11
)

type Options struct {
	// GlamourStyle names a glamour standard style. Empty means "dark".
	GlamourStyle string
	Now          func() time.Time
}

type Model struct {
	ctrl *overlay.Controller
	doc  *Document

	keys     keyMap
	help     help.Model
	viewport viewport.Model
	markdown markdownRenderer

	hero     model.Hero
	links    []model.LinkEntry
	socials  []model.SocialEntry
	triggers []model.Trigger
	year     int

	cursor int
	width  int
	height int

	modalBody string
	err       error
}

func New(opts Options) *Model {
	style := opts.GlamourStyle
	if style == "" {
		style = "dark"
	}

	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}

	m := &Model{
		doc:      NewDocument(),
		keys:     newKeyMap(),
		help:     help.New(),
		viewport: viewport.New(defaultWidth, defaultHeight-chromeHeight),
		markdown: markdownRenderer{style: style},
		hero:     content.Hero(),
		links:    content.Links(),
		socials:  content.Socials(),
		triggers: content.Triggers(),
		year:     now().Year(),
		width:    defaultWidth,
		height:   defaultHeight,
	}

	m.ctrl = overlay.New(m.doc, overlay.WithObserver(func(prev, next overlay.State) {
		slog.Debug("Overlay transition", "from", prev, "to", next)
	}))
	m.ctrl.Mount()
	m.keys.setOverlay(false)
	m.refreshLinks()

	return m
}

func (m *Model) Init() tea.Cmd {
	return nil
}

// State is the current overlay state.
func (m *Model) State() overlay.State {
	return m.ctrl.State()
}

// Cursor is the index of the selected link.
func (m *Model) Cursor() int {
	return m.cursor
}

func (m *Model) Document() *Document {
	return m.doc
}

// Err is the last rendering error, if any.
func (m *Model) Err() error {
	return m.err
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-chromeHeight, rowHeight)
		m.help.Width = msg.Width
		m.refreshLinks()
		m.refreshModal()

		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.doc.ScrollLocked() {
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)

	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var err error

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.ctrl.Unmount()

		return m, tea.Quit
	case key.Matches(msg, m.keys.About):
		err = m.ctrl.Dispatch(overlay.OpenEvent(model.ModalAbout))
	case key.Matches(msg, m.keys.Privacy):
		err = m.ctrl.Dispatch(overlay.OpenEvent(model.ModalPrivacy))
	case key.Matches(msg, m.keys.Security):
		err = m.ctrl.Dispatch(overlay.OpenEvent(model.ModalSecurity))
	case key.Matches(msg, m.keys.Close):
		err = m.ctrl.Dispatch(overlay.Event{Kind: overlay.EventCloseControl})
	case key.Matches(msg, m.keys.Cancel):
		m.doc.Cancel()
	case key.Matches(msg, m.keys.Up):
		m.move(-1)
	case key.Matches(msg, m.keys.Down):
		m.move(1)
	default:
		if m.ctrl.State().IsOpen() {
			// Keys typed into the open panel stay inside it.
			err = m.ctrl.Dispatch(overlay.Event{Kind: overlay.EventContentClick})
		}
	}

	if err != nil {
		slog.Error("Overlay event failed", "key", msg.String(), "error", err)
		m.err = err
	}

	m.keys.setOverlay(m.ctrl.State().IsOpen())
	m.refreshModal()

	return m, nil
}

func (m *Model) move(delta int) {
	if m.doc.ScrollLocked() || len(m.links) == 0 {
		return
	}

	m.cursor = min(max(m.cursor+delta, 0), len(m.links)-1)
	m.refreshLinks()

	top := m.cursor * rowHeight
	if top < m.viewport.YOffset {
		m.viewport.SetYOffset(top)
	} else if bottom := top + rowHeight; bottom > m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(bottom - m.viewport.Height)
	}
}

func (m *Model) refreshLinks() {
	rows := make([]string, 0, len(m.links))

	for i, l := range m.links {
		marker := "  "
		title := titleStyle.Render(l.Title)

		if i == m.cursor {
			marker = selectedStyle.Render("▌ ")
			title = selectedStyle.Render(l.Title)
		}

		rows = append(rows, lipgloss.JoinVertical(lipgloss.Left,
			marker+Glyph(l.Icon)+" "+title+" "+Glyph(model.IconArrowUpLeft),
			"    "+subtitleStyle.Render(l.Subtitle),
			"    "+destStyle.Render(l.Destination),
		))
	}

	m.viewport.SetContent(strings.Join(rows, "\n"))
}

func (m *Model) refreshModal() {
	id, ok := m.ctrl.State().Modal()
	if !ok {
		m.modalBody = ""

		return
	}

	c, found := content.Modal(id)
	if !found {
		m.modalBody = ""

		return
	}

	body, err := m.markdown.render(ModalMarkdown(c), m.width)
	if err != nil {
		slog.Error("Could not render modal body", "modal", id, "error", err)
		m.err = err
		body = ModalMarkdown(c)
	}

	m.modalBody = body
}

func (m *Model) View() string {
	if id, ok := m.ctrl.State().Modal(); ok {
		return m.modalView(id)
	}

	header := lipgloss.JoinVertical(lipgloss.Left,
		badgeStyle.Render(Glyph(model.IconShieldCheck)+" "+m.hero.Badge),
		brandStyle.Render(m.hero.Brand),
		introStyle.Render(m.hero.Intro),
		"",
	)

	socials := make([]string, 0, len(m.socials))
	for _, s := range m.socials {
		socials = append(socials, Glyph(s.Icon)+" "+s.Label)
	}

	triggers := make([]string, 0, len(m.triggers))
	for _, t := range m.triggers {
		triggers = append(triggers, fmt.Sprintf("[%s] %s", m.keys.forModal(t.Modal).Help().Key, triggerStyle.Render(t.Label)))
	}

	footer := lipgloss.JoinVertical(lipgloss.Left,
		"",
		footerStyle.Render(strings.Join(socials, "   ")),
		strings.Join(triggers, "   "),
		footerStyle.Render("© "+strconv.Itoa(m.year)+" "+m.hero.Copyright),
		m.help.View(m.keys),
	)

	return lipgloss.JoinVertical(lipgloss.Left, header, m.viewport.View(), footer)
}

func (m *Model) modalView(id model.ModalID) string {
	c, _ := content.Modal(id)

	panel := panelStyle.Width(min(m.width-4, maxWrap+6)).Render(lipgloss.JoinVertical(lipgloss.Left,
		Glyph(model.IconClose)+" "+m.hero.CloseLabel,
		panelTitleStyle.Render(c.Title),
		m.modalBody,
	))

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.Place(m.width, max(m.height-1, lipgloss.Height(panel)), lipgloss.Center, lipgloss.Center, panel),
		m.help.View(m.keys),
	)
}
