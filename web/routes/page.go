package routes

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/dohaquest/questlinks/content"
	"github.com/dohaquest/questlinks/model"
	"github.com/dohaquest/questlinks/overlay"
	"github.com/dohaquest/questlinks/web/assets"
	cs "github.com/dohaquest/questlinks/web/components"
)

const (
	pageLang = "ar"
	pageDir  = "rtl"
)

// BuildPageRenderContext builds the render context for the landing page in
// the given overlay state. doc supplies the resources the state holds.
func (s *ServerHandler) BuildPageRenderContext(ctx context.Context, state overlay.State, doc *PageDocument) cs.RenderContext {
	hero := content.Hero()

	rc := cs.RenderContext{
		Lang:        pageLang,
		Dir:         pageDir,
		AssetPrefix: s.AssetPrefix,
		Year:        s.now().Year(),
		Hero:        hero,
		BadgeIcon:   cs.BadgeIconMarkup(),
		Logo:        s.image(ctx, s.Images.Logo, hero.LogoAlt, s.Images.LogoFallback),
		Background:  s.image(ctx, s.Images.Background, hero.BackgroundAlt, ""),
	}

	for _, l := range content.Links() {
		rc.Links = append(rc.Links, cs.NewLinkRow(l))
	}

	for _, sc := range content.Socials() {
		rc.Socials = append(rc.Socials, cs.NewSocialBadge(sc))
	}

	for _, t := range content.Triggers() {
		rc.Triggers = append(rc.Triggers, cs.NewTrigger(t))
	}

	if id, ok := state.Modal(); ok {
		if c, found := content.Modal(id); found {
			rc.Modal = cs.NewModalView(c, cs.ClosedHref, hero.CloseLabel)
		}
	}

	rc.ScrollLocked = doc.ScrollLocked()
	if doc.CancelListeners() > 0 {
		rc.CancelHref = cs.ClosedHref
	}

	return rc
}

// image resolves a configured source. Local paths under the asset prefix that
// are missing from the asset tree are dropped so no broken image is emitted.
func (s *ServerHandler) image(ctx context.Context, src, alt, fallback string) *cs.Image {
	if !s.imageAvailable(ctx, src) {
		return nil
	}

	if !s.imageAvailable(ctx, fallback) {
		fallback = ""
	}

	return &cs.Image{Src: src, Alt: alt, FallbackSrc: fallback}
}

func (s *ServerHandler) imageAvailable(ctx context.Context, src string) bool {
	if src == "" {
		return false
	}

	u, err := url.Parse(src)
	if err != nil {
		slog.WarnContext(ctx, "Ignoring unparsable image source", "src", src, "error", err)

		return false
	}

	if u.IsAbs() {
		return u.Scheme == "http" || u.Scheme == "https"
	}

	if s.Assets == nil || !strings.HasPrefix(u.Path, s.AssetPrefix+"/") {
		// Served by someone else, let the client fallback handle it.
		return true
	}

	if !assets.Exists(s.Assets, s.AssetPrefix, u.Path) {
		slog.DebugContext(ctx, "Image not found in assets, omitting", "src", src)

		return false
	}

	return true
}

// PageHandle renders the landing page. The modal query parameter selects the
// open dialog.
func (s *ServerHandler) PageHandle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	doc := &PageDocument{}
	ctrl := overlay.New(doc, overlay.WithObserver(func(prev, next overlay.State) {
		slog.DebugContext(ctx, "Overlay transition", "from", prev, "to", next)
	}))

	ctrl.Mount()
	defer ctrl.Unmount()

	if param := r.URL.Query().Get(cs.ModalQueryParam); param != "" {
		id, ok := model.ParseModalID(param)
		if !ok {
			slog.DebugContext(ctx, "Unknown modal requested, rendering closed page", "modal", param)
		} else if err := ctrl.Dispatch(overlay.OpenEvent(id)); err != nil {
			slog.ErrorContext(ctx, "Failed to open modal", "modal", param, "error", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)

			return
		}
	}

	slog.InfoContext(ctx, "Handling page request", "state", ctrl.State())

	renderContext := s.BuildPageRenderContext(ctx, ctrl.State(), doc)

	err := SafeRenderTemplateContext(ctx, cs.Page(&renderContext), w)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to render page", "error", err)

		if errors.Is(err, ErrRender) {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}
}
