// Copyright (c) 2024 The Flokicoin developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

package components

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// NewDialog asks a question with one button per label. handlers[i] runs when
// labels[i] is selected; Esc calls onClose.
func NewDialog(title, text string, onClose func(), labels []string, handlers ...func()) tview.Primitive {
	m := tview.NewModal().
		SetText(text).
		AddButtons(labels).
		SetDoneFunc(func(index int, _ string) {
			if index >= 0 && index < len(handlers) && handlers[index] != nil {
				handlers[index]()
				return
			}
			if onClose != nil {
				onClose()
			}
		})

	m.SetTitle(title).
		SetTitleColor(tcell.ColorGray).
		SetBorder(true)

	return m
}
