package routes

// PageDocument is the overlay document for one server render. Nothing runs in
// the browser until the response arrives, so acquiring a resource here only
// records that the rendered body must carry it: the scroll lock becomes
// data-scroll-lock and the cancel listener becomes data-cancel-href, which
// overlay.js turns into a real keydown listener.
type PageDocument struct {
	scrollLocked    bool
	cancelListeners int
}

func (d *PageDocument) LockScroll() func() {
	prev := d.scrollLocked
	d.scrollLocked = true

	return func() {
		d.scrollLocked = prev
	}
}

// ListenCancel counts the registration. The handler is never called on the
// server; pressing Escape in the browser navigates to the close URL instead.
func (d *PageDocument) ListenCancel(func()) func() {
	d.cancelListeners++
	removed := false

	return func() {
		if removed {
			return
		}

		removed = true
		d.cancelListeners--
	}
}

func (d *PageDocument) ScrollLocked() bool {
	return d.scrollLocked
}

func (d *PageDocument) CancelListeners() int {
	return d.cancelListeners
}
