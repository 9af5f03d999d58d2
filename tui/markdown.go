package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/dohaquest/questlinks/model"
)

const (
	minWrap = 20
	maxWrap = 100
)

// ModalMarkdown converts modal blocks to markdown. The title is drawn by the
// panel, not here.
func ModalMarkdown(c model.ModalContent) string {
	var sb strings.Builder

	for _, b := range c.Blocks {
		switch b.Kind {
		case model.BlockHeading:
			fmt.Fprintf(&sb, "#### %s\n\n", b.Text)
		case model.BlockList:
			for _, item := range b.Items {
				fmt.Fprintf(&sb, "- %s\n", item)
			}

			sb.WriteString("\n")
		default:
			fmt.Fprintf(&sb, "%s\n\n", b.Text)
		}
	}

	return sb.String()
}

func wrapWidth(width int) int {
	w := width - 10
	if w > maxWrap {
		w = maxWrap
	}

	if w < minWrap {
		w = minWrap
	}

	return w
}

type markdownRenderer struct {
	style    string
	width    int
	renderer *glamour.TermRenderer
}

func (r *markdownRenderer) render(md string, width int) (string, error) {
	w := wrapWidth(width)

	if r.renderer == nil || r.width != w {
		tr, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(r.style),
			glamour.WithWordWrap(w),
		)
		if err != nil {
			return "", fmt.Errorf("could not create markdown renderer: %w", err)
		}

		r.renderer = tr
		r.width = w
	}

	out, err := r.renderer.Render(md)
	if err != nil {
		return "", fmt.Errorf("could not render markdown: %w", err)
	}

	return strings.TrimRight(out, "\n"), nil
}
