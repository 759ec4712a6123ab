// Copyright (c) 2024 The Flokicoin developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

package components

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const (
	imageWidth  = 22
	frameHeight = PinPadHeight + 2
)

// NewLockFrame centers a pin pad next to a lock image, with a hint line
// below.
func NewLockFrame(image string, color tcell.Color, pad *PinPad, hint string) *tview.Flex {
	logo := tview.NewTextView().SetDynamicColors(true).SetTextAlign(tview.AlignCenter)
	fmt.Fprintf(logo, "[%s:-:-]%s[-:-:-]", color, image)

	help := tview.NewTextView().SetDynamicColors(true).SetTextAlign(tview.AlignCenter)
	help.SetText(hint)

	hFlex := tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(logo, imageWidth, 0, false).
		AddItem(nil, 4, 0, false).
		AddItem(pad, PinPadWidth, 0, true).
		AddItem(nil, 0, 1, false)

	return tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(nil, 0, 1, false).
		AddItem(hFlex, frameHeight, 0, true).
		AddItem(help, 1, 0, false).
		AddItem(nil, 0, 1, false)
}

// PadHint describes the keyboard shortcuts of a pin pad.
func PadHint(back string) string {
	return fmt.Sprintf("[%[1]s:-:b]<0-9>[-:-:-] digit  [%[1]s:-:b]<backspace>[-:-:-] delete  [%[1]s:-:b]<ctrl+u>[-:-:-] clear  [%[1]s:-:b]<enter>[-:-:-] ok  [%[1]s:-:b]<esc>[-:-:-] %[2]s",
		tcell.ColorLightSkyBlue, back)
}
