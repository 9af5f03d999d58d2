package routes_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/dohaquest/questlinks/content"
	"github.com/dohaquest/questlinks/model"
	"github.com/dohaquest/questlinks/overlay"
	"github.com/dohaquest/questlinks/web/routes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const closeLabel = "إغلاق النافذة"

func newHandler(files fstest.MapFS, images routes.Images) routes.ServerHandler {
	return routes.ServerHandler{
		Assets:      files,
		AssetPrefix: "/assets",
		Images:      images,
		Now:         func() time.Time { return time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC) },
	}
}

func get(t *testing.T, handler routes.ServerHandler, target string) *goquery.Document {
	t.Helper()

	recorder := httptest.NewRecorder()
	handler.PageHandle(recorder, httptest.NewRequest(http.MethodGet, target, nil))

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "text/html; charset=UTF-8", recorder.Header().Get("Content-Type"))

	doc, err := goquery.NewDocumentFromReader(recorder.Body)
	require.NoError(t, err)

	return doc
}

func TestPageClosed(t *testing.T) {
	doc := get(t, newHandler(fstest.MapFS{}, routes.Images{}), "/")

	html := doc.Find("html")
	assert.Equal(t, "rtl", html.AttrOr("dir", ""))
	assert.Equal(t, "ar", html.AttrOr("lang", ""))
	assert.Equal(t, 1, doc.Find(`meta[name="color-scheme"][content="dark"]`).Length())

	assert.Equal(t, 0, doc.Find(`[role="dialog"]`).Length())

	body := doc.Find("body")
	_, locked := body.Attr("data-scroll-lock")
	assert.False(t, locked)

	_, listening := body.Attr("data-cancel-href")
	assert.False(t, listening)

	assert.Contains(t, doc.Find(".copyright").Text(), "2026")
}

func TestPageOpen(t *testing.T) {
	tests := []struct {
		query string
		title string
	}{
		{"about", "من نحن - كويست الدوحة"},
		{"privacy", "سياسة الخصوصية"},
		{"security", "قواعد الأمن والسلامة"},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			doc := get(t, newHandler(fstest.MapFS{}, routes.Images{}), "/?modal="+tt.query)

			dialogs := doc.Find(`[role="dialog"]`)
			require.Equal(t, 1, dialogs.Length())
			assert.Equal(t, tt.title, dialogs.AttrOr("aria-label", ""))
			assert.Equal(t, "true", dialogs.AttrOr("aria-modal", ""))
			assert.Equal(t, tt.title, dialogs.Find("h2").Text())

			body := doc.Find("body")
			assert.Equal(t, "true", body.AttrOr("data-scroll-lock", ""))
			assert.Equal(t, "/", body.AttrOr("data-cancel-href", ""))

			closeControl := dialogs.Find(".modal-close")
			assert.Equal(t, closeLabel, closeControl.AttrOr("aria-label", ""))
			assert.Equal(t, "/", closeControl.AttrOr("href", ""))

			// The backdrop is a sibling of the panel, never its ancestor.
			backdrop := doc.Find(".overlay-backdrop")
			require.Equal(t, 1, backdrop.Length())
			assert.Equal(t, "/", backdrop.AttrOr("href", ""))
			assert.Equal(t, 0, backdrop.Find(`[role="dialog"]`).Length())
		})
	}
}

func TestPageUnknownModal(t *testing.T) {
	doc := get(t, newHandler(fstest.MapFS{}, routes.Images{}), "/?modal=careers")

	assert.Equal(t, 0, doc.Find(`[role="dialog"]`).Length())

	_, locked := doc.Find("body").Attr("data-scroll-lock")
	assert.False(t, locked)
}

func TestPageLinks(t *testing.T) {
	doc := get(t, newHandler(fstest.MapFS{}, routes.Images{}), "/")

	links := content.Links()
	rows := doc.Find("main a.link-row")
	require.Equal(t, len(links), rows.Length())

	rows.Each(func(i int, row *goquery.Selection) {
		assert.Equal(t, links[i].Destination, row.AttrOr("href", ""))
		assert.Equal(t, "_blank", row.AttrOr("target", ""))
		assert.Equal(t, "noopener noreferrer", row.AttrOr("rel", ""))
		assert.Equal(t, links[i].Title, row.AttrOr("aria-label", ""))
		assert.Equal(t, links[i].Title, row.Find("h3").Text())
	})

	assert.Equal(t, 1, doc.Find(`a.link-row[href="mailto:info@dohaquest.com"]`).Length())
}

func TestPageSocials(t *testing.T) {
	doc := get(t, newHandler(fstest.MapFS{}, routes.Images{}), "/")

	socials := content.Socials()
	badges := doc.Find("footer a.social")
	require.Equal(t, len(socials), badges.Length())

	badges.Each(func(i int, badge *goquery.Selection) {
		assert.Equal(t, socials[i].Destination, badge.AttrOr("href", ""))
		assert.Equal(t, socials[i].Label, badge.AttrOr("aria-label", ""))
		assert.Equal(t, "noopener noreferrer", badge.AttrOr("rel", ""))
		assert.Equal(t, "22", badge.Find("svg").AttrOr("width", ""))
		assert.Empty(t, badge.Text())
	})
}

func TestPageTriggers(t *testing.T) {
	doc := get(t, newHandler(fstest.MapFS{}, routes.Images{}), "/")

	triggers := doc.Find("nav.triggers a")
	require.Equal(t, 3, triggers.Length())

	assert.Equal(t, "/?modal=about", triggers.Eq(0).AttrOr("href", ""))
	assert.Equal(t, "/?modal=privacy", triggers.Eq(1).AttrOr("href", ""))
	assert.Equal(t, "/?modal=security", triggers.Eq(2).AttrOr("href", ""))
}

func TestPageImages(t *testing.T) {
	withLogo := fstest.MapFS{"logo.png": &fstest.MapFile{Data: []byte("png")}}

	t.Run("missing local image is omitted", func(t *testing.T) {
		doc := get(t, newHandler(fstest.MapFS{}, routes.Images{
			Logo:       "/assets/logo.png",
			Background: "/assets/logo.png",
		}), "/")

		assert.Equal(t, 0, doc.Find("img").Length())
		assert.Equal(t, 0, doc.Find(".backdrop-image").Length())
		// Everything else still renders.
		assert.Equal(t, len(content.Links()), doc.Find("a.link-row").Length())
	})

	t.Run("present local image is rendered", func(t *testing.T) {
		doc := get(t, newHandler(withLogo, routes.Images{
			Logo:       "/assets/logo.png",
			Background: "/assets/logo.png",
		}), "/")

		assert.Equal(t, 2, doc.Find("img.media").Length())
		assert.Equal(t, "Quest Doha Logo", doc.Find(".logo img").AttrOr("alt", ""))
		assert.Equal(t, "Quest Doha Interior", doc.Find(".backdrop-image img").AttrOr("alt", ""))
	})

	t.Run("remote logo keeps local fallback", func(t *testing.T) {
		doc := get(t, newHandler(withLogo, routes.Images{
			Logo:         "https://cdn.example.com/logo.png",
			LogoFallback: "/assets/logo.png",
		}), "/")

		img := doc.Find(".logo img")
		assert.Equal(t, "https://cdn.example.com/logo.png", img.AttrOr("src", ""))
		assert.Equal(t, "/assets/logo.png", img.AttrOr("data-fallback-src", ""))
	})

	t.Run("missing fallback is dropped", func(t *testing.T) {
		doc := get(t, newHandler(fstest.MapFS{}, routes.Images{
			Logo:         "https://cdn.example.com/logo.png",
			LogoFallback: "/assets/missing.png",
		}), "/")

		_, ok := doc.Find(".logo img").Attr("data-fallback-src")
		assert.False(t, ok)
	})

	t.Run("unsupported scheme is omitted", func(t *testing.T) {
		doc := get(t, newHandler(fstest.MapFS{}, routes.Images{Logo: "javascript:alert(1)"}), "/")

		assert.Equal(t, 0, doc.Find("img").Length())
	})
}

func TestBuildPageRenderContext(t *testing.T) {
	handler := newHandler(fstest.MapFS{}, routes.Images{})

	t.Run("closed", func(t *testing.T) {
		rc := handler.BuildPageRenderContext(context.Background(), overlay.Closed(), &routes.PageDocument{})

		assert.Nil(t, rc.Modal)
		assert.False(t, rc.ScrollLocked)
		assert.Empty(t, rc.CancelHref)
		assert.Len(t, rc.Links, len(content.Links()))
		assert.Len(t, rc.Socials, len(content.Socials()))
		assert.Equal(t, 2026, rc.Year)
	})

	t.Run("open through controller", func(t *testing.T) {
		doc := &routes.PageDocument{}
		ctrl := overlay.New(doc)
		ctrl.Mount()
		require.NoError(t, ctrl.RequestOpen(model.ModalPrivacy))

		rc := handler.BuildPageRenderContext(context.Background(), ctrl.State(), doc)

		require.NotNil(t, rc.Modal)
		assert.Equal(t, "privacy", rc.Modal.ID)
		assert.True(t, rc.ScrollLocked)
		assert.Equal(t, "/", rc.CancelHref)

		ctrl.Unmount()
		assert.False(t, doc.ScrollLocked())
		assert.Equal(t, 0, doc.CancelListeners())
	})
}
