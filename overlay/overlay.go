// Package overlay tracks which informational dialog, if any, covers the page.
//
// The controller owns two document-wide resources while a dialog is open: the
// scroll lock and a single cancel-key listener. Both are taken together when
// the first dialog opens and given back together when the last one closes,
// including when the page is unmounted with a dialog still showing.
package overlay

import (
	"errors"
	"fmt"

	"github.com/dohaquest/questlinks/model"
)

var (
	ErrNotMounted   = errors.New("overlay controller is not mounted")
	ErrUnknownModal = errors.New("unknown modal")
)

// Document is the rendering surface the controller acquires resources from.
type Document interface {
	// LockScroll suspends background scrolling. The returned func restores
	// whatever scroll state was in effect before the call.
	LockScroll() (restore func())
	// ListenCancel registers handler for the cancel key (Escape). The
	// returned func unregisters it.
	ListenCancel(handler func()) (remove func())
}

// State is either Closed or Open(modal).
type State struct {
	modal model.ModalID
	open  bool
}

func Closed() State {
	return State{}
}

func Open(m model.ModalID) State {
	return State{modal: m, open: true}
}

func (s State) IsOpen() bool {
	return s.open
}

// Modal returns the open modal, ok is false when closed.
func (s State) Modal() (m model.ModalID, ok bool) {
	return s.modal, s.open
}

func (s State) String() string {
	if !s.open {
		return "closed"
	}

	return "open(" + s.modal.String() + ")"
}

// Observer is notified after every state change.
type Observer func(prev, next State)

type Option func(*Controller)

func WithObserver(o Observer) Option {
	return func(c *Controller) {
		c.observers = append(c.observers, o)
	}
}

// Controller is the overlay state machine. It is not safe for concurrent use;
// every transition is expected to run on the surface's event goroutine.
type Controller struct {
	doc       Document
	state     State
	mounted   bool
	lease     *lease
	observers []Observer
}

// lease pairs the scroll lock with the cancel listener so that neither can be
// released without the other.
type lease struct {
	restoreScroll  func()
	removeListener func()
}

func (l *lease) release() {
	l.removeListener()
	l.restoreScroll()
}

func New(doc Document, opts ...Option) *Controller {
	c := &Controller{doc: doc}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Mount starts an interaction cycle in the Closed state. Mounting an already
// mounted controller is a no-op.
func (c *Controller) Mount() {
	if c.mounted {
		return
	}

	c.mounted = true
	c.state = Closed()
}

// Unmount closes any open dialog and releases every resource the controller
// holds.
func (c *Controller) Unmount() {
	if !c.mounted {
		return
	}

	c.transition(Closed())
	c.mounted = false
}

func (c *Controller) Mounted() bool {
	return c.mounted
}

func (c *Controller) State() State {
	return c.state
}

// RequestOpen shows m. Switching from another open dialog keeps the scroll
// lock and listener in place.
func (c *Controller) RequestOpen(m model.ModalID) error {
	if !c.mounted {
		return ErrNotMounted
	}

	if !m.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownModal, int(m))
	}

	c.transition(Open(m))

	return nil
}

// RequestClose returns to Closed. Closing while already closed does nothing.
func (c *Controller) RequestClose() {
	if !c.mounted {
		return
	}

	c.transition(Closed())
}

func (c *Controller) transition(next State) {
	prev := c.state
	if prev == next {
		return
	}

	switch {
	case !prev.open && next.open:
		c.acquire()
	case prev.open && !next.open:
		c.release()
	}

	c.state = next

	for _, o := range c.observers {
		o(prev, next)
	}
}

func (c *Controller) acquire() {
	if c.lease != nil {
		return
	}

	restore := c.doc.LockScroll()
	remove := c.doc.ListenCancel(c.RequestClose)
	c.lease = &lease{restoreScroll: restore, removeListener: remove}
}

func (c *Controller) release() {
	if c.lease == nil {
		return
	}

	l := c.lease
	c.lease = nil
	l.release()
}
