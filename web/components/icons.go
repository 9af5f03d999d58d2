package components

import (
	"fmt"
	"html"

	"github.com/dohaquest/questlinks/model"
)

// iconPaths holds the inner SVG markup of each glyph on a 24x24 grid.
var iconPaths = map[model.IconRef]string{
	model.IconSparkles: `<path d="M9.937 15.5A2 2 0 0 0 8.5 14.063l-6.135-1.582a.5.5 0 0 1 0-.962L8.5 9.936A2 2 0 0 0 9.937 8.5l1.582-6.135a.5.5 0 0 1 .963 0L14.063 8.5A2 2 0 0 0 15.5 9.937l6.135 1.581a.5.5 0 0 1 0 .964L15.5 14.063a2 2 0 0 0-1.437 1.437l-1.582 6.135a.5.5 0 0 1-.963 0z"/>`,
	model.IconCalendar: `<path d="M8 2v4"/><path d="M16 2v4"/><rect width="18" height="18" x="3" y="4" rx="2"/><path d="M3 10h18"/>`,
	model.IconMapPin:   `<path d="M20 10c0 4.993-5.539 10.193-7.399 11.799a1 1 0 0 1-1.202 0C9.539 20.193 4 14.993 4 10a8 8 0 0 1 16 0"/><circle cx="12" cy="10" r="3"/>`,
	model.IconMail:     `<rect width="20" height="16" x="2" y="4" rx="2"/><path d="m22 7-8.97 5.7a1.94 1.94 0 0 1-2.06 0L2 7"/>`,
	model.IconInstagram: `<rect width="20" height="20" x="2" y="2" rx="5" ry="5"/>` +
		`<path d="M16 11.37A4 4 0 1 1 12.63 8 4 4 0 0 1 16 11.37z"/><line x1="17.5" x2="17.51" y1="6.5" y2="6.5"/>`,
	model.IconTwitter:  `<path d="M22 4s-.7 2.1-2 3.4c1.6 10-9.4 17.3-18 11.6 2.2.1 4.4-.6 6-2C3 15.5.5 9.6 3 5c2.2 2.6 5.6 4.1 9 4-.9-4.2 4-6.6 7-3.8 1.1 0 3-1.2 3-1.2z"/>`,
	model.IconFacebook: `<path d="M18 2h-3a5 5 0 0 0-5 5v3H7v4h3v8h4v-8h3l1-4h-4V7a1 1 0 0 1 1-1h3z"/>`,
	model.IconCamera:   `<path d="M14.5 4h-5L7 7H4a2 2 0 0 0-2 2v9a2 2 0 0 0 2 2h16a2 2 0 0 0 2-2V9a2 2 0 0 0-2-2h-3l-2.5-3z"/><circle cx="12" cy="13" r="3"/>`,
	model.IconShieldCheck: `<path d="M20 13c0 5-3.5 7.5-7.66 8.95a1 1 0 0 1-.67-.01C7.5 20.5 4 18 4 13V6a1 1 0 0 1 1-1c2 0 4.5-1.2 6.24-2.72a1.17 1.17 0 0 1 1.52 0C14.51 3.81 17 5 19 5a1 1 0 0 1 1 1z"/>` +
		`<path d="m9 12 2 2 4-4"/>`,
	model.IconArrowUpLeft: `<path d="M7 17V7h10"/><path d="M17 17 7 7"/>`,
	model.IconClose:       `<path d="M18 6 6 18"/><path d="m6 6 12 12"/>`,
}

// Icon returns inline SVG for ref drawn at size pixels. Unknown refs render
// nothing.
func Icon(ref model.IconRef, size int, class string) string {
	paths, ok := iconPaths[ref]
	if !ok {
		return ""
	}

	return fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round" class="%s" aria-hidden="true" data-icon="%s">%s</svg>`,
		size, size, html.EscapeString(class), html.EscapeString(string(ref)), paths)
}

// HasIcon reports whether ref resolves to a glyph.
func HasIcon(ref model.IconRef) bool {
	_, ok := iconPaths[ref]

	return ok
}
