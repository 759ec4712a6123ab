// Copyright (c) 2024 The Flokicoin developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

package load

import (
	"context"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/rs/zerolog"

	"github.com/flokiorg/tpinlock/config"
	"github.com/flokiorg/tpinlock/pinstore"
	"github.com/flokiorg/tpinlock/settings"
	. "github.com/flokiorg/tpinlock/shared"
	"github.com/flokiorg/tpinlock/store"
)

type LockState string

const (
	StateLocked   LockState = "locked"
	StateUnlocked LockState = "unlocked"
	StateCreating LockState = "creating"
)

type Router interface {
	Go(Page)
}

type Load struct {
	*tview.Application
	Router
	Nav       *Navigator
	Notif     *notification
	Logger    zerolog.Logger
	AppConfig *config.AppConfig
	KV        store.KV
	Pins      *pinstore.Store

	mu       sync.RWMutex
	settings settings.Settings
}

func NewLoad(cfg *config.AppConfig, kv store.KV, s settings.Settings, tapp *tview.Application, pages *tview.Pages) *Load {
	l := &Load{
		Application: tapp,
		Nav:         newNavigator(tapp, pages),
		Notif:       newNotification(NamedLogger("notification")),
		Logger:      NamedLogger("load"),
		AppConfig:   cfg,
		KV:          kv,
		Pins:        pinstore.New(kv, nil),
		settings:    s,
	}

	l.Application.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyESC {
			l.Notif.CancelToast()
		}
		return event
	})

	return l
}

func (l *Load) RegisterRouter(r Router) {
	l.Router = r
}

// Settings returns the settings screens are built with.
func (l *Load) Settings() settings.Settings {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.settings
}

// ApplySettings validates and persists s. Screens built afterwards use it.
func (l *Load) ApplySettings(ctx context.Context, s settings.Settings) error {
	if err := settings.Configure(ctx, l.KV, s); err != nil {
		return err
	}
	l.mu.Lock()
	l.settings = s
	l.mu.Unlock()

	l.Logger.Info().
		Int("min_length", s.MinLength).
		Int("max_length", s.MaxLength).
		Bool("placeholder", s.ShowPlaceholder).
		Bool("preview", s.ShowPreview).
		Bool("shuffle", s.ShuffleButtons).
		Msg("settings updated")
	return nil
}

// PinKey is the storage key of the lock, empty in external mode.
func (l *Load) PinKey() string {
	if l.AppConfig.External {
		return ""
	}
	return l.AppConfig.Key
}

type notification struct {
	toast chan string

	mu     sync.Mutex
	subs   []chan LockState
	last   LockState
	logger zerolog.Logger
}

func newNotification(logger zerolog.Logger) *notification {
	return &notification{
		toast:  make(chan string, 5),
		subs:   make([]chan LockState, 0),
		last:   StateLocked,
		logger: logger,
	}
}

func (n *notification) Subscribe() (<-chan LockState, func()) {
	ch := make(chan LockState, 1)

	n.mu.Lock()
	n.subs = append(n.subs, ch)
	n.mu.Unlock()

	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			n.mu.Lock()
			for i := range n.subs {
				if n.subs[i] == ch {
					n.subs = append(n.subs[:i], n.subs[i+1:]...)
					break
				}
			}
			n.mu.Unlock()
			close(ch)
		})
	}

	return ch, unsubscribe
}

// Broadcast publishes a lock state change. Slow subscribers miss updates.
func (n *notification) Broadcast(state LockState) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.last = state
	n.logger.Debug().Str("state", string(state)).Msg("lock state")
	for _, ch := range n.subs {
		select {
		case ch <- state:
		default:
		}
	}
}

func (n *notification) LastState() LockState {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.last
}

func (n *notification) Shutdown() {
	n.mu.Lock()
	defer n.mu.Unlock()

	for _, ch := range n.subs {
		close(ch)
	}
	n.subs = nil
}

func (n *notification) Toast() <-chan string {
	return n.toast
}

func (n *notification) ShowToast(text string) {
	select {
	case n.toast <- text:
	default:
	}
}

func (n *notification) CancelToast() {
	n.ShowToast("")
}

func (n *notification) ShowToastWithTimeout(text string, d time.Duration) {
	n.ShowToast(text)
	time.AfterFunc(d, n.CancelToast)
}
