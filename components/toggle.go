// Copyright (c) 2024 The Flokicoin developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

package components

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

type ToggleStyle struct {
	LabelWidth  int
	ActiveColor tcell.Color
	IdleColor   tcell.Color
}

func DefaultToggleStyle() ToggleStyle {
	return ToggleStyle{
		LabelWidth:  22,
		ActiveColor: tcell.ColorOrange,
		IdleColor:   tcell.ColorGray,
	}
}

// Toggle is an on/off switch for a boolean setting. Enter, space or a click
// flips it.
type Toggle struct {
	*tview.Box
	label    string
	on       bool
	style    ToggleStyle
	onChange func(bool)
}

func NewToggle(label string, on bool, onChange func(bool)) *Toggle {
	return NewToggleWithStyle(label, on, DefaultToggleStyle(), onChange)
}

func NewToggleWithStyle(label string, on bool, style ToggleStyle, onChange func(bool)) *Toggle {
	if style.LabelWidth <= 0 {
		style.LabelWidth = DefaultToggleStyle().LabelWidth
	}
	return &Toggle{
		Box:      tview.NewBox(),
		label:    label,
		on:       on,
		style:    style,
		onChange: onChange,
	}
}

func (t *Toggle) IsOn() bool {
	return t.on
}

func (t *Toggle) SetOn(on bool) {
	if t.on == on {
		return
	}
	t.on = on
	if t.onChange != nil {
		t.onChange(on)
	}
}

func (t *Toggle) flip() {
	t.SetOn(!t.on)
}

func (t *Toggle) text() string {
	onColor, offColor := t.style.IdleColor, t.style.ActiveColor
	if t.on {
		onColor, offColor = t.style.ActiveColor, t.style.IdleColor
	}
	return fmt.Sprintf("%-*s [%s::b]ON[-:-:-] / [%s::b]OFF[-:-:-]", t.style.LabelWidth, t.label, onColor, offColor)
}

func (t *Toggle) Draw(screen tcell.Screen) {
	t.Box.DrawForSubclass(screen, t)
	x, y, width, height := t.GetInnerRect()
	if height <= 0 {
		return
	}
	label := t.text()
	if t.HasFocus() {
		label = "[::u]" + label
	}
	tview.Print(screen, label, x, y, width, tview.AlignLeft, tcell.ColorWhite)
}

func (t *Toggle) InputHandler() func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
	return t.WrapInputHandler(func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
		if event.Key() == tcell.KeyEnter || (event.Key() == tcell.KeyRune && event.Rune() == ' ') {
			t.flip()
		}
	})
}

func (t *Toggle) MouseHandler() func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
	return t.WrapMouseHandler(func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
		if !t.InRect(event.Position()) {
			return false, nil
		}
		if action == tview.MouseLeftClick {
			setFocus(t)
			t.flip()
			return true, nil
		}
		return false, nil
	})
}
