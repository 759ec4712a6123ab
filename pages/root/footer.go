// Copyright (c) 2024 The Flokicoin developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

package root

import (
	"fmt"

	"github.com/rivo/tview"

	"github.com/flokiorg/tpinlock/load"
	. "github.com/flokiorg/tpinlock/shared"
)

type Footer struct {
	*tview.Grid
	load      *load.Load
	storeText *tview.TextView
	infoText  *tview.TextView
	destroy   chan struct{}
}

func NewFooter(l *load.Load) *Footer {
	f := &Footer{
		Grid:      tview.NewGrid(),
		storeText: tview.NewTextView().SetTextAlign(tview.AlignRight).SetDynamicColors(true),
		infoText:  tview.NewTextView().SetTextAlign(tview.AlignCenter).SetDynamicColors(true),
		load:      l,
		destroy:   make(chan struct{}),
	}

	f.storeText.SetBorderPadding(0, 0, 0, 2)
	f.storeText.SetText(fmt.Sprintf("[gray:-:-]store: [%s:-:-]%s", HotkeyColor, l.AppConfig.Store))

	leftSide := tview.NewTextView()
	leftSide.SetDynamicColors(true).
		SetTextAlign(tview.AlignLeft).
		SetBorderPadding(0, 0, 1, 1)
	fmt.Fprintf(leftSide, "[%s:-:b]<ctrl+c> [white:-:-]Quit", HotkeyColor)

	f.SetRows(0).SetColumns(20, 0, 24).
		AddItem(leftSide, 0, 0, 1, 1, 0, 0, false).
		AddItem(f.infoText, 0, 1, 1, 1, 0, 0, false).
		AddItem(f.storeText, 0, 2, 1, 1, 0, 0, false)

	go f.updates()

	return f
}

func (f *Footer) updates() {

	for {
		select {

		case text := <-f.load.Notif.Toast():
			f.updateInfoText(text)

		case <-f.destroy:
			return
		}

	}
}

func (f *Footer) updateInfoText(notif string) {
	f.load.Application.QueueUpdateDraw(func() {
		f.infoText.SetText(notif)
	})
}

func (f *Footer) Destroy() {
	select {
	case <-f.destroy:
		return
	default:
		close(f.destroy)
	}
}
