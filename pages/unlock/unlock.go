// Copyright (c) 2024 The Flokicoin developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

package unlock

import (
	"context"
	"fmt"
	"time"

	"github.com/rivo/tview"

	"github.com/flokiorg/tpinlock/components"
	"github.com/flokiorg/tpinlock/load"
	"github.com/flokiorg/tpinlock/lock"
	"github.com/flokiorg/tpinlock/pinhash"
	"github.com/flokiorg/tpinlock/shared"
)

const wrongPinMessage = "[red:-:-]Wrong PIN[-:-:-], try again"

// Unlock asks for the stored pin, or for the pin matching --digest in
// external mode.
type Unlock struct {
	*tview.Flex
	load     *load.Load
	nav      *load.Navigator
	entry    *lock.Entry
	pad      *components.PinPad
	failures int
}

func NewPage(l *load.Load) *Unlock {
	p := &Unlock{
		Flex: tview.NewFlex(),
		load: l,
		nav:  l.Nav,
	}

	p.SetBorder(true).
		SetTitle(" 🔒 Locked ").
		SetTitleAlign(tview.AlignCenter).
		SetTitleColor(shared.AccentColor).
		SetBorderColor(shared.AccentColor)

	opts := []lock.Option{lock.WithLogger(shared.NamedLogger("entry"))}
	if key := l.PinKey(); key != "" {
		opts = append(opts, lock.WithKey(l.Pins, key))
	}
	p.entry = lock.NewEntry(l.Settings(), p, opts...)
	p.pad = components.NewPinPad(context.Background(), p.entry, shared.AccentColor, p.showError)

	p.AddItem(components.NewLockFrame(shared.LOCK_IMAGE, shared.AccentColor, p.pad, components.PadHint("quit")), 0, 1, true)

	return p
}

func (p *Unlock) OnEnterPin(pin string) bool {
	digest, err := pinhash.Hash(pin)
	if err != nil {
		p.showError(err)
		return false
	}
	return pinhash.Equal(digest, p.load.AppConfig.Digest)
}

func (p *Unlock) OnCorrectPin(e *lock.Entry) {
	p.load.Logger.Info().Str("key", e.Key()).Int("failures", p.failures).Msg("unlocked")
	p.failures = 0
	p.load.Notif.ShowToastWithTimeout("🔓 Unlocked", time.Second*2)
	p.load.Notif.Broadcast(load.StateUnlocked)
	p.load.Go(shared.UNLOCKED)
}

func (p *Unlock) OnWrongPin(e *lock.Entry) {
	p.failures++
	p.load.Logger.Warn().Str("key", e.Key()).Int("failures", p.failures).Msg("wrong pin")
	e.SetDescription(fmt.Sprintf("%s (%d)", wrongPinMessage, p.failures))
	p.load.Notif.ShowToastWithTimeout("🔒 Wrong PIN", time.Second*5)
}

func (p *Unlock) OnBack(*lock.Entry) {
	dialog := components.NewDialog("Quit", "Leave tpinlock without unlocking?", p.nav.CloseModal,
		[]string{"Quit", "Cancel"},
		p.load.Stop,
		p.nav.CloseModal,
	)
	p.nav.ShowModal(dialog)
}

func (p *Unlock) showError(err error) {
	p.load.Notif.ShowToastWithTimeout(fmt.Sprintf("[red:-:-]Error:[-:-:-] %s", err.Error()), time.Second*30)
}
