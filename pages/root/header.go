// Copyright (c) 2024 The Flokicoin developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

package root

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/flokiorg/tpinlock/load"
	. "github.com/flokiorg/tpinlock/shared"
	"github.com/flokiorg/tpinlock/utils"
)

type Header struct {
	*tview.Flex
	logo    *tview.TextView
	state   *tview.TextView
	load    *load.Load
	destroy chan struct{}
	dcancel func()
	nsub    <-chan load.LockState
}

func NewHeader(l *load.Load) *Header {
	h := &Header{
		Flex:    tview.NewFlex(),
		load:    l,
		destroy: make(chan struct{}),
	}

	h.logo = h.buildLogo()
	h.state = tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignRight)
	h.state.SetBorderPadding(1, 0, 0, 2)
	h.state.SetText(stateView(l.Notif.LastState(), h.keyLabel()))

	h.AddItem(h.logo, 42, 1, false).
		AddItem(nil, 0, 1, false).
		AddItem(h.state, 30, 1, false)

	h.nsub, h.dcancel = h.load.Notif.Subscribe()
	go h.updates()

	return h
}

func (h *Header) updates() {

	for {
		select {
		case state, ok := <-h.nsub:
			if !ok {
				return
			}
			h.load.Logger.Trace().Str("state", string(state)).Msg("header received notification")
			text := stateView(state, h.keyLabel())
			h.load.Application.QueueUpdateDraw(func() {
				h.state.SetText(text)
			})

		case <-h.destroy:
			return
		}
	}
}

func (h *Header) keyLabel() string {
	if h.load.AppConfig.External {
		return "external"
	}
	return h.load.AppConfig.Key
}

func (h *Header) Destroy() {
	if h.dcancel != nil {
		h.dcancel()
	}
	select {
	case <-h.destroy:
		return
	default:
		close(h.destroy)
	}
}

func (h *Header) buildLogo() *tview.TextView {

	logo := tview.NewTextView().SetDynamicColors(true)
	logo.SetBorder(false)

	lines := strings.Split(LOGO_TEXT, "\n")
	fmt.Fprintf(logo, "[%s:-:-]", AccentColor)
	for i := 1; i < len(lines); i++ {
		fmt.Fprintf(logo, "   [%s::b]%s", "", lines[i])
		fmt.Fprintf(logo, "\n")
	}

	version := fmt.Sprintf("\t v%s", utils.Version)
	fmt.Fprint(logo, version)
	return logo
}

func stateView(state load.LockState, key string) string {
	color := tcell.ColorOrange
	label := "🔒 Locked"
	switch state {
	case load.StateUnlocked:
		color, label = tcell.ColorGreen, "🔓 Unlocked"
	case load.StateCreating:
		color, label = tcell.ColorYellow, "🔑 New PIN"
	}
	return fmt.Sprintf("[%s:-:b]%s[-:-:-]\n[gray:-:-]key: %s", color, label, key)
}
