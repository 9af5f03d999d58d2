package components

import (
	"fmt"
	"time"

	"github.com/dohaquest/questlinks/model"
)

const (
	linkIconSize   = 24
	arrowIconSize  = 16
	socialIconSize = 22
	badgeIconSize  = 16
	closeIconSize  = 22
)

// LinkRow is the view of one link entry.
type LinkRow struct {
	Key      string
	Href     string
	Title    string
	Subtitle string
	Icon     string
	Arrow    string
	Delay    string
}

// SocialBadge is the view of one social entry. The icon is always drawn at
// socialIconSize.
type SocialBadge struct {
	Key   string
	Href  string
	Label string
	Icon  string
	Delay string
}

type Image struct {
	Src         string
	Alt         string
	FallbackSrc string
}

type Trigger struct {
	Modal string
	Label string
	Href  string
}

type ModalView struct {
	ID         string
	Title      string
	Blocks     []model.Block
	CloseHref  string
	CloseLabel string
	CloseIcon  string
}

type RenderContext struct {
	Lang        string
	Dir         string
	AssetPrefix string
	Year        int
	Hero        model.Hero
	BadgeIcon   string
	Logo        *Image
	Background  *Image
	Links       []LinkRow
	Socials     []SocialBadge
	Triggers    []Trigger
	Modal       *ModalView
	// ScrollLocked mirrors the document scroll lock held by an open dialog.
	ScrollLocked bool
	// CancelHref is set while a cancel-key listener is registered.
	CancelHref string
}

func NewLinkRow(e model.LinkEntry) LinkRow {
	return LinkRow{
		Key:      e.Destination,
		Href:     e.Destination,
		Title:    e.Title,
		Subtitle: e.Subtitle,
		Icon:     Icon(e.Icon, linkIconSize, "icon"),
		Arrow:    Icon(model.IconArrowUpLeft, arrowIconSize, "arrow"),
		Delay:    FormatDelay(e.RevealDelay),
	}
}

func NewSocialBadge(e model.SocialEntry) SocialBadge {
	return SocialBadge{
		Key:   e.Destination,
		Href:  e.Destination,
		Label: e.Label,
		Icon:  Icon(e.Icon, socialIconSize, "icon"),
		Delay: FormatDelay(e.RevealDelay),
	}
}

func NewModalView(c model.ModalContent, closeHref, closeLabel string) *ModalView {
	return &ModalView{
		ID:         c.ID.String(),
		Title:      c.Title,
		Blocks:     c.Blocks,
		CloseHref:  closeHref,
		CloseLabel: closeLabel,
		CloseIcon:  Icon(model.IconClose, closeIconSize, "icon"),
	}
}

func NewTrigger(t model.Trigger) Trigger {
	return Trigger{
		Modal: t.Modal.String(),
		Label: t.Label,
		Href:  ModalHref(t.Modal),
	}
}

// BadgeIconMarkup is the shield shown next to the hero badge.
func BadgeIconMarkup() string {
	return Icon(model.IconShieldCheck, badgeIconSize, "icon")
}

// FormatDelay renders d as a CSS time value.
func FormatDelay(d time.Duration) string {
	return fmt.Sprintf("%.2fs", d.Seconds())
}
