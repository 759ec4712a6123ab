// Copyright (c) 2024 The Flokicoin developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

package lock

import "context"

type EventKind int

const (
	// EventDigit presses the digit button at Event.Pos.
	EventDigit EventKind = iota
	EventDelete
	// EventClear is the long press on delete.
	EventClear
	EventConfirm
	EventBack
)

func (k EventKind) String() string {
	switch k {
	case EventDigit:
		return "digit"
	case EventDelete:
		return "delete"
	case EventClear:
		return "clear"
	case EventConfirm:
		return "confirm"
	case EventBack:
		return "back"
	default:
		return "unknown"
	}
}

type Event struct {
	Kind EventKind
	Pos  int
}

func Digit(pos int) Event { return Event{Kind: EventDigit, Pos: pos} }

// Controller is the input surface shared by Entry and Creation.
type Controller interface {
	Digit(pos int) bool
	Delete() bool
	Clear() bool
	Confirm(ctx context.Context) error
	Back()
	View() View
}

// Apply feeds ev to c. Errors come from Confirm only.
func Apply(ctx context.Context, c Controller, ev Event) error {
	switch ev.Kind {
	case EventDigit:
		c.Digit(ev.Pos)
	case EventDelete:
		c.Delete()
	case EventClear:
		c.Clear()
	case EventConfirm:
		return c.Confirm(ctx)
	case EventBack:
		c.Back()
	}
	return nil
}
