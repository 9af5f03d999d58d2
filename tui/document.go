package tui

import "slices"

// Document is the terminal side of the overlay. The scroll lock freezes the
// link viewport and cancel listeners fire when the cancel key is pressed.
type Document struct {
	scrollLocked bool
	listeners    map[int]func()
	nextID       int
}

func NewDocument() *Document {
	return &Document{listeners: make(map[int]func())}
}

func (d *Document) LockScroll() func() {
	prev := d.scrollLocked
	d.scrollLocked = true

	return func() {
		d.scrollLocked = prev
	}
}

func (d *Document) ListenCancel(fn func()) func() {
	id := d.nextID
	d.nextID++
	d.listeners[id] = fn

	return func() {
		delete(d.listeners, id)
	}
}

// Cancel delivers the cancel key to every registered listener. It reports
// whether anyone was listening.
func (d *Document) Cancel() bool {
	if len(d.listeners) == 0 {
		return false
	}

	// listeners remove themselves while running
	ids := make([]int, 0, len(d.listeners))
	for id := range d.listeners {
		ids = append(ids, id)
	}

	slices.Sort(ids)

	for _, id := range ids {
		if fn, ok := d.listeners[id]; ok {
			fn()
		}
	}

	return true
}

func (d *Document) ScrollLocked() bool {
	return d.scrollLocked
}

func (d *Document) Listeners() int {
	return len(d.listeners)
}
