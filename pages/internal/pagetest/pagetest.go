// Copyright (c) 2024 The Flokicoin developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

// Package pagetest builds pages over a memory store without a terminal.
package pagetest

import (
	"sync"
	"testing"

	"github.com/rivo/tview"

	"github.com/flokiorg/tpinlock/components"
	"github.com/flokiorg/tpinlock/config"
	"github.com/flokiorg/tpinlock/load"
	"github.com/flokiorg/tpinlock/lock"
	"github.com/flokiorg/tpinlock/settings"
	"github.com/flokiorg/tpinlock/shared"
	"github.com/flokiorg/tpinlock/store"
)

// Router records navigation instead of building layouts.
type Router struct {
	mu    sync.Mutex
	pages []shared.Page
}

func (r *Router) Go(p shared.Page) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pages = append(r.pages, p)
}

func (r *Router) Pages() []shared.Page {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]shared.Page(nil), r.pages...)
}

// Last returns the latest navigation, false when there was none.
func (r *Router) Last() (shared.Page, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.pages) == 0 {
		return 0, false
	}
	return r.pages[len(r.pages)-1], true
}

// Config is a memory store config for the default key.
func Config() *config.AppConfig {
	return &config.AppConfig{
		Store:  "memory",
		Key:    shared.DefaultPinKey,
		Repeat: -1,
	}
}

// NewLoad returns a Load over a fresh memory store with default settings and
// a recording router.
func NewLoad(t *testing.T, cfg *config.AppConfig) (*load.Load, *Router) {
	t.Helper()
	if cfg == nil {
		cfg = Config()
	}
	l := load.NewLoad(cfg, store.NewMemory(), settings.Default(), tview.NewApplication(), tview.NewPages())
	r := &Router{}
	l.RegisterRouter(r)
	return l, r
}

// Enter types pin on pad and confirms it.
func Enter(t *testing.T, pad *components.PinPad, pin string) {
	t.Helper()
	layout := pad.Controller().View().Layout
	for _, c := range pin {
		pos := layout.Position(int(c - '0'))
		if pos < 0 {
			t.Fatalf("no button for %q", c)
		}
		pad.Dispatch(lock.Digit(pos))
	}
	pad.Dispatch(lock.Event{Kind: lock.EventConfirm})
}

// Toast returns the pending toast, or "" when there is none.
func Toast(l *load.Load) string {
	select {
	case text := <-l.Notif.Toast():
		return text
	default:
		return ""
	}
}
