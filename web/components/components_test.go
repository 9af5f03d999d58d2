package components_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/dohaquest/questlinks/content"
	"github.com/dohaquest/questlinks/model"
	"github.com/dohaquest/questlinks/web/components"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIcon(t *testing.T) {
	for _, ref := range []model.IconRef{
		model.IconSparkles, model.IconCalendar, model.IconMapPin, model.IconMail,
		model.IconInstagram, model.IconTwitter, model.IconFacebook, model.IconCamera,
		model.IconShieldCheck, model.IconArrowUpLeft, model.IconClose,
	} {
		t.Run(string(ref), func(t *testing.T) {
			assert.True(t, components.HasIcon(ref))

			svg := components.Icon(ref, 22, "icon")
			assert.True(t, strings.HasPrefix(svg, "<svg"))
			assert.Contains(t, svg, `width="22" height="22"`)
			assert.Contains(t, svg, `data-icon="`+string(ref)+`"`)
			assert.Contains(t, svg, `aria-hidden="true"`)
		})
	}

	t.Run("unknown", func(t *testing.T) {
		assert.False(t, components.HasIcon("rocket"))
		assert.Empty(t, components.Icon("rocket", 24, "icon"))
	})
}

func TestFormatDelay(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "0.00s"},
		{450 * time.Millisecond, "0.45s"},
		{1150 * time.Millisecond, "1.15s"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, components.FormatDelay(tt.in))
	}
}

func TestModalHref(t *testing.T) {
	assert.Equal(t, "/?modal=about", components.ModalHref(model.ModalAbout))
	assert.Equal(t, "/?modal=privacy", components.ModalHref(model.ModalPrivacy))
	assert.Equal(t, "/?modal=security", components.ModalHref(model.ModalSecurity))
}

func TestNewLinkRow(t *testing.T) {
	row := components.NewLinkRow(model.LinkEntry{
		Destination: "https://example.com",
		Icon:        model.IconMapPin,
		Title:       "Map",
		RevealDelay: 650 * time.Millisecond,
	})

	assert.Equal(t, "https://example.com", row.Href)
	assert.Equal(t, "https://example.com", row.Key)
	assert.Equal(t, "0.65s", row.Delay)
	assert.Contains(t, row.Icon, `width="24"`)
	assert.Contains(t, row.Arrow, `data-icon="arrow-up-left"`)

	t.Run("unknown icon renders empty slot", func(t *testing.T) {
		row := components.NewLinkRow(model.LinkEntry{Destination: "https://example.com", Icon: "rocket", Title: "x"})
		assert.Empty(t, row.Icon)
	})
}

func TestNewSocialBadge(t *testing.T) {
	badge := components.NewSocialBadge(model.SocialEntry{
		Destination: "https://instagram.com/x",
		Icon:        model.IconInstagram,
		Label:       "Instagram",
	})

	assert.Equal(t, "Instagram", badge.Label)
	assert.Contains(t, badge.Icon, `width="22"`)
}

func render(t *testing.T, rc *components.RenderContext) *goquery.Document {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, components.Page(rc).Render(context.Background(), &buf))

	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)

	return doc
}

func TestPageRender(t *testing.T) {
	c, ok := content.Modal(model.ModalSecurity)
	require.True(t, ok)

	rc := &components.RenderContext{
		Lang:        "ar",
		Dir:         "rtl",
		AssetPrefix: "/assets",
		Year:        2026,
		Hero:        content.Hero(),
		Links: []components.LinkRow{
			components.NewLinkRow(model.LinkEntry{Destination: "https://example.com/?a=1&b=2", Icon: model.IconMail, Title: "<b>x</b>"}),
		},
		Modal:        components.NewModalView(c, components.ClosedHref, "close"),
		ScrollLocked: true,
		CancelHref:   components.ClosedHref,
	}

	doc := render(t, rc)

	assert.Equal(t, "/assets/page.css", doc.Find(`link[rel="stylesheet"]`).AttrOr("href", ""))
	assert.Equal(t, "/assets/overlay.js", doc.Find("script").AttrOr("src", ""))

	row := doc.Find("a.link-row")
	assert.Equal(t, "https://example.com/?a=1&b=2", row.AttrOr("href", ""))
	// Titles are text, never markup.
	assert.Equal(t, "<b>x</b>", row.Find("h3").Text())
	assert.Equal(t, 0, row.Find("b").Length())

	dialog := doc.Find(`[role="dialog"]`)
	assert.Equal(t, c.Title, dialog.AttrOr("aria-label", ""))
	assert.Equal(t, "security", doc.Find(".overlay").AttrOr("data-modal", ""))
	assert.Equal(t, 5, dialog.Find(".modal-body ul li").Length())
	assert.Equal(t, "close", dialog.Find(".modal-close").AttrOr("aria-label", ""))
	assert.Equal(t, 1, dialog.Find(`.modal-close svg[data-icon="x"]`).Length())
}

func TestPageRenderClosed(t *testing.T) {
	doc := render(t, &components.RenderContext{Lang: "ar", Dir: "rtl", Hero: content.Hero()})

	assert.Equal(t, 0, doc.Find(".overlay").Length())
	assert.Equal(t, 0, doc.Find("img").Length())
	assert.Equal(t, content.Hero().Brand, doc.Find("h1").Text())
	assert.Equal(t, content.Hero().Brand, doc.Find("title").Text())
}
