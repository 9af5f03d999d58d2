package components

import (
	"net/url"

	"github.com/dohaquest/questlinks/model"
)

// ModalQueryParam carries the open dialog in page URLs.
const ModalQueryParam = "modal"

// ClosedHref is where every dismissal gesture navigates.
const ClosedHref = "/"

// ModalHref returns the page URL with m open.
func ModalHref(m model.ModalID) string {
	q := url.Values{}
	q.Set(ModalQueryParam, m.String())

	return "/?" + q.Encode()
}
