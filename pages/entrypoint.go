// Copyright (c) 2024 The Flokicoin developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

package pages

import (
	"context"

	"github.com/rivo/tview"

	"github.com/flokiorg/tpinlock/load"
	"github.com/flokiorg/tpinlock/pages/create"
	"github.com/flokiorg/tpinlock/pages/root"
	"github.com/flokiorg/tpinlock/pages/settings"
	"github.com/flokiorg/tpinlock/pages/unlock"
	"github.com/flokiorg/tpinlock/pages/unlocked"
	. "github.com/flokiorg/tpinlock/shared"
)

type Router struct {
	load *load.Load
}

func (r *Router) Go(p Page) {

	var layout tview.Primitive

	switch p {
	case UNLOCK:
		layout = root.NewLayout(r.load, unlock.NewPage(r.load))
	case CREATE:
		back := ReturnPage(r.load.Notif.LastState())
		r.load.Notif.Broadcast(load.StateCreating)
		layout = root.NewLayout(r.load, create.NewPage(r.load, back))
	case UNLOCKED:
		layout = root.NewLayout(r.load, unlocked.NewPage(r.load))
	case SETTINGS:
		layout = root.NewLayout(r.load, settings.NewPage(r.load))
	}

	if layout != nil {
		r.load.Logger.Debug().Int("page", int(p)).Msg("navigate")
		r.load.Nav.NavigateTo(layout)
	}

}

// StartPage is the first page: creation when no pin is stored under the key
// or --new is set, unlock otherwise. External mode creates when no digest
// was given.
func StartPage(l *load.Load) Page {
	if l.AppConfig.New {
		return CREATE
	}
	if l.AppConfig.External {
		if l.AppConfig.Digest == "" {
			return CREATE
		}
		return UNLOCK
	}

	exists, err := l.Pins.Exists(context.Background(), l.PinKey())
	if err != nil {
		l.Logger.Error().Err(err).Str("key", l.PinKey()).Msg("failed to look up pin")
		return UNLOCK
	}
	if !exists {
		return CREATE
	}
	return UNLOCK
}

// ReturnPage is where a canceled pin change goes back to, given the lock
// state before the creation page opened.
func ReturnPage(state load.LockState) Page {
	if state == load.StateUnlocked {
		return UNLOCKED
	}
	return UNLOCK
}

func NewEntrypoint(l *load.Load) tview.Primitive {

	l.RegisterRouter(&Router{load: l})

	var page tview.Primitive
	switch StartPage(l) {
	case CREATE:
		l.Notif.Broadcast(load.StateCreating)
		page = create.NewPage(l, UNLOCK)
	default:
		page = unlock.NewPage(l)
	}

	return root.NewLayout(l, page)
}
