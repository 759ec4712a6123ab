// Copyright (c) 2024 The Flokicoin developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

package create

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rivo/tview"

	"github.com/flokiorg/tpinlock/components"
	"github.com/flokiorg/tpinlock/load"
	"github.com/flokiorg/tpinlock/lock"
	"github.com/flokiorg/tpinlock/pinhash"
	"github.com/flokiorg/tpinlock/shared"
	"github.com/flokiorg/tpinlock/utils/clip"
)

// Create asks for a new pin until it was repeated enough times, then stores
// it under the lock key. In external mode the digest is shown instead.
type Create struct {
	*tview.Flex
	load     *load.Load
	nav      *load.Navigator
	creation *lock.Creation
	pad      *components.PinPad
	back     shared.Page
	digest   string
}

// NewPage builds the creation page. back is the page a cancel returns to
// when a pin is already stored.
func NewPage(l *load.Load, back shared.Page) *Create {
	p := &Create{
		Flex: tview.NewFlex(),
		load: l,
		nav:  l.Nav,
		back: back,
	}

	p.SetBorder(true).
		SetTitle(" 🔑 New PIN ").
		SetTitleAlign(tview.AlignCenter).
		SetTitleColor(shared.AccentColor).
		SetBorderColor(shared.AccentColor)

	opts := []lock.Option{lock.WithLogger(shared.NamedLogger("creation"))}
	if key := l.PinKey(); key != "" {
		opts = append(opts, lock.WithKey(l.Pins, key))
	}
	p.creation = lock.NewCreation(l.Settings(), p, l.AppConfig.Repeat, opts...)
	p.pad = components.NewPinPad(context.Background(), p.creation, shared.AccentColor, p.showError)

	hint := components.PadHint("cancel")
	if r := p.creation.Repeat(); r > 1 {
		hint = fmt.Sprintf("Enter the PIN %d times. %s", r, hint)
	}

	p.AddItem(components.NewLockFrame(shared.UNLOCK_IMAGE, shared.AccentColor, p.pad, hint), 0, 1, true)

	return p
}

func (p *Create) OnDone(c *lock.Creation, pin string) bool {
	if c.Key() != "" {
		return true
	}

	digest, err := pinhash.Hash(pin)
	if err != nil {
		p.showError(err)
		p.restart()
		return false
	}
	p.showDigest(digest)
	return false
}

func (p *Create) OnSaved(c *lock.Creation, digest string) {
	p.load.Logger.Info().Str("key", c.Key()).Msg("pin saved")
	p.load.Notif.ShowToastWithTimeout("🔑 PIN saved", time.Second*3)
	p.load.Notif.Broadcast(load.StateUnlocked)
	p.load.Go(shared.UNLOCKED)
}

func (p *Create) OnError(c *lock.Creation, err error) {
	if !errors.Is(err, lock.ErrCanceled) {
		p.showError(err)
		p.restart()
		return
	}

	exists, existsErr := p.load.Pins.Exists(context.Background(), c.Key())
	if existsErr == nil && exists {
		if p.back == shared.UNLOCKED {
			p.load.Notif.Broadcast(load.StateUnlocked)
		} else {
			p.load.Notif.Broadcast(load.StateLocked)
		}
		p.load.Go(p.back)
		return
	}

	dialog := components.NewDialog("Quit", "No PIN was created. Leave tpinlock?", p.closeDialog,
		[]string{"Quit", "Continue"},
		p.load.Stop,
		p.closeDialog,
	)
	p.nav.ShowModal(dialog)
}

func (p *Create) closeDialog() {
	p.nav.CloseModal()
	p.restart()
}

func (p *Create) restart() {
	p.creation.Restart()
	p.pad.Refresh()
}

func (p *Create) showDigest(digest string) {
	p.load.Logger.Info().Msg("external pin digest generated")
	p.digest = digest

	copyDigest := func() {
		method, err := clip.CopyText(digest)
		if err != nil {
			p.showError(err)
			return
		}
		p.load.Notif.ShowToastWithTimeout(fmt.Sprintf("📋 Digest copied (%s)", method), time.Second*3)
	}

	text := fmt.Sprintf("Store this digest and pass it with --digest to unlock:\n\n%s", digest)
	dialog := components.NewDialog("PIN digest", text, p.load.Stop,
		[]string{"Copy", "Done"},
		copyDigest,
		p.load.Stop,
	)
	p.nav.ShowModal(dialog)
}

func (p *Create) showError(err error) {
	p.load.Notif.ShowToastWithTimeout(fmt.Sprintf("[red:-:-]Error:[-:-:-] %s", err.Error()), time.Second*30)
}
