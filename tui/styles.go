package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/dohaquest/questlinks/model"
)

var (
	accent = lipgloss.AdaptiveColor{Light: "#0E7490", Dark: "#22D3EE"}
	muted  = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}

	brandStyle    = lipgloss.NewStyle().Bold(true).Foreground(accent)
	badgeStyle    = lipgloss.NewStyle().Foreground(accent).Border(lipgloss.RoundedBorder()).Padding(0, 1)
	introStyle    = lipgloss.NewStyle().Foreground(muted)
	titleStyle    = lipgloss.NewStyle().Bold(true)
	subtitleStyle = lipgloss.NewStyle().Foreground(muted)
	destStyle     = lipgloss.NewStyle().Foreground(muted).Faint(true)
	selectedStyle = lipgloss.NewStyle().Foreground(accent).Bold(true)
	footerStyle   = lipgloss.NewStyle().Foreground(muted)
	triggerStyle  = lipgloss.NewStyle().Underline(true)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 2)
	panelTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(accent).MarginBottom(1)
)

var glyphs = map[model.IconRef]string{
	model.IconSparkles:    "✦",
	model.IconCalendar:    "▦",
	model.IconMapPin:      "⌖",
	model.IconMail:        "✉",
	model.IconInstagram:   "◎",
	model.IconTwitter:     "✕",
	model.IconFacebook:    "ƒ",
	model.IconCamera:      "◉",
	model.IconShieldCheck: "⛨",
	model.IconArrowUpLeft: "↖",
	model.IconClose:       "×",
}

// Glyph maps an icon to a single terminal cell. Unknown icons leave the
// slot blank.
func Glyph(ref model.IconRef) string {
	if g, ok := glyphs[ref]; ok {
		return g
	}

	return " "
}
