// Copyright (c) 2024 The Flokicoin developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

package unlocked

import (
	"fmt"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/flokiorg/tpinlock/load"
	"github.com/flokiorg/tpinlock/shared"
)

type Unlocked struct {
	*tview.Flex
	load *load.Load
}

func NewPage(l *load.Load) *Unlocked {
	p := &Unlocked{
		Flex: tview.NewFlex(),
		load: l,
	}

	p.SetBorder(true).
		SetTitle(" 🔓 Unlocked ").
		SetTitleAlign(tview.AlignCenter).
		SetTitleColor(tcell.ColorGreen).
		SetBorderColor(tcell.ColorGreen)

	p.SetInputCapture(p.handleKeys)

	logo := tview.NewTextView().SetDynamicColors(true).SetTextAlign(tview.AlignCenter)
	fmt.Fprintf(logo, "[%s:-:-]\n%s[-:-:-]\n", tcell.ColorGreen, shared.UNLOCK_IMAGE)

	hotkey := func(key, label string) string {
		return fmt.Sprintf("[%s:-:b]<%s>[-:-:-] %s", shared.HotkeyColor, key, label)
	}
	if !l.AppConfig.External {
		fmt.Fprintf(logo, "%s  ", hotkey("c", "Change PIN"))
	}
	fmt.Fprintf(logo, "%s  %s  %s", hotkey("s", "Settings"), hotkey("l", "Lock"), hotkey("q", "Quit"))

	hFlex := tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(logo, 0, 3, true).
		AddItem(nil, 0, 1, false)

	vFlex := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(nil, 0, 1, false).
		AddItem(hFlex, 15, 1, true).
		AddItem(nil, 0, 1, false)

	p.AddItem(vFlex, 0, 1, true)

	return p
}

func (p *Unlocked) handleKeys(event *tcell.EventKey) *tcell.EventKey {
	if event.Key() != tcell.KeyRune {
		return event
	}

	switch unicode.ToLower(event.Rune()) {
	case 'c':
		if p.load.AppConfig.External {
			return event
		}
		p.load.Go(shared.CREATE)
	case 's':
		p.load.Go(shared.SETTINGS)
	case 'l':
		p.load.Notif.Broadcast(load.StateLocked)
		p.load.Go(shared.UNLOCK)
	case 'q':
		p.load.Stop()
	default:
		return event
	}
	return nil
}
