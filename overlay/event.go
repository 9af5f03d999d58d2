package overlay

import (
	"fmt"

	"github.com/dohaquest/questlinks/model"
)

type EventKind int

const (
	// EventOpen is a footer trigger for Event.Modal.
	EventOpen EventKind = iota
	// EventCloseControl is the dialog's close button.
	EventCloseControl
	// EventBackdrop is activation of the dimmed area outside the panel.
	EventBackdrop
	// EventContentClick is activation inside the panel. It never closes.
	EventContentClick
	// EventCancelKey is the Escape key.
	EventCancelKey
)

func (k EventKind) String() string {
	switch k {
	case EventOpen:
		return "open"
	case EventCloseControl:
		return "close-control"
	case EventBackdrop:
		return "backdrop"
	case EventContentClick:
		return "content-click"
	case EventCancelKey:
		return "cancel-key"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event is a user interaction delivered by a rendering surface.
type Event struct {
	Kind  EventKind
	Modal model.ModalID
}

func OpenEvent(m model.ModalID) Event {
	return Event{Kind: EventOpen, Modal: m}
}

// Dispatch maps an interaction onto the state machine.
func (c *Controller) Dispatch(ev Event) error {
	if !c.mounted {
		return ErrNotMounted
	}

	switch ev.Kind {
	case EventOpen:
		return c.RequestOpen(ev.Modal)
	case EventCloseControl, EventBackdrop, EventCancelKey:
		c.RequestClose()
	case EventContentClick:
	default:
		return fmt.Errorf("unhandled event %s", ev.Kind)
	}

	return nil
}
