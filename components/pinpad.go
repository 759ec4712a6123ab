// Copyright (c) 2024 The Flokicoin developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

package components

import (
	"context"
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/flokiorg/tpinlock/lock"
)

const (
	PinPadWidth  = 23
	PinPadHeight = 17

	buttonRows = 4
	buttonCols = 3
	buttonSize = 3
)

// PinPad renders a lock controller and feeds it keyboard and mouse input.
type PinPad struct {
	*tview.Flex
	ctx         context.Context
	ctrl        lock.Controller
	color       tcell.Color
	description *tview.TextView
	circles     *Circles
	grid        *tview.Grid
	digits      [lock.Keys]*tview.Button
	del         *tview.Button
	ok          *tview.Button
	onError     func(error)
}

// NewPinPad builds a pad for ctrl. onError receives the errors of Confirm.
func NewPinPad(ctx context.Context, ctrl lock.Controller, color tcell.Color, onError func(error)) *PinPad {
	p := &PinPad{
		Flex:    tview.NewFlex(),
		ctx:     ctx,
		ctrl:    ctrl,
		color:   color,
		circles: NewCircles(color),
		grid:    tview.NewGrid(),
		onError: onError,
	}

	p.description = tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter)

	rows := make([]int, buttonRows)
	for i := range rows {
		rows[i] = buttonSize
	}
	p.grid.SetRows(rows...).SetColumns(0, 0, 0).SetGap(0, 1)

	layout := ctrl.View().Layout
	for pos := range p.digits {
		pos := pos
		b := p.newButton(strconv.Itoa(layout[pos]), func() {
			p.Dispatch(lock.Digit(pos))
		})
		row, col := PadCell(pos)
		p.grid.AddItem(b, row, col, 1, 1, 0, 0, pos == layout.Position(5))
		p.digits[pos] = b
	}

	p.del = p.newButton("DEL", func() {
		p.Dispatch(lock.Event{Kind: lock.EventDelete})
	})
	p.del.SetMouseCapture(func(action tview.MouseAction, event *tcell.EventMouse) (tview.MouseAction, *tcell.EventMouse) {
		if action == tview.MouseRightClick && p.del.InRect(event.Position()) {
			p.Dispatch(lock.Event{Kind: lock.EventClear})
			return tview.MouseConsumed, nil
		}
		return action, event
	})
	p.ok = p.newButton("OK", func() {
		p.Dispatch(lock.Event{Kind: lock.EventConfirm})
	})

	p.grid.AddItem(p.del, buttonRows-1, 0, 1, 1, 0, 0, false).
		AddItem(p.ok, buttonRows-1, 2, 1, 1, 0, 0, false)

	p.SetDirection(tview.FlexRow).
		AddItem(p.description, 2, 0, false).
		AddItem(p.circles, 2, 0, false).
		AddItem(p.grid, 0, 1, true)

	p.SetInputCapture(p.handleKeys)
	p.Refresh()

	return p
}

func (p *PinPad) newButton(label string, selected func()) *tview.Button {
	b := tview.NewButton(label).SetSelectedFunc(selected)
	b.SetStyle(tcell.StyleDefault.Background(tcell.ColorDarkSlateGray).Foreground(tcell.ColorWhite))
	b.SetActivatedStyle(tcell.StyleDefault.Background(p.color).Foreground(tcell.ColorBlack))
	return b
}

// PadCell returns the grid cell of a pad position: 1-9 fill the first three
// rows like a phone keypad and 0 sits in the middle of the last one.
func PadCell(pos int) (row, col int) {
	if pos == 0 {
		return buttonRows - 1, 1
	}
	return (pos - 1) / buttonCols, (pos - 1) % buttonCols
}

// KeyEvent translates a terminal key into a controller event.
func KeyEvent(layout lock.Layout, event *tcell.EventKey) (lock.Event, bool) {
	switch event.Key() {
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return lock.Event{Kind: lock.EventDelete}, true
	case tcell.KeyDelete, tcell.KeyCtrlU:
		return lock.Event{Kind: lock.EventClear}, true
	case tcell.KeyEnter:
		return lock.Event{Kind: lock.EventConfirm}, true
	case tcell.KeyESC:
		return lock.Event{Kind: lock.EventBack}, true
	case tcell.KeyRune:
		r := event.Rune()
		if r < '0' || r > '9' {
			return lock.Event{}, false
		}
		pos := layout.Position(int(r - '0'))
		if pos < 0 {
			return lock.Event{}, false
		}
		return lock.Digit(pos), true
	}
	return lock.Event{}, false
}

func (p *PinPad) handleKeys(event *tcell.EventKey) *tcell.EventKey {
	ev, ok := KeyEvent(p.ctrl.View().Layout, event)
	if !ok {
		return event
	}
	p.Dispatch(ev)
	return nil
}

// Dispatch applies ev to the controller and redraws the pad.
func (p *PinPad) Dispatch(ev lock.Event) {
	err := lock.Apply(p.ctx, p.ctrl, ev)
	p.Refresh()
	if err != nil && p.onError != nil {
		p.onError(err)
	}
}

// Refresh copies the controller state into the widgets.
func (p *PinPad) Refresh() {
	v := p.ctrl.View()

	p.description.SetText(v.Description)
	p.circles.Update(v)

	for pos, b := range p.digits {
		b.SetLabel(strconv.Itoa(v.Layout[pos]))
		b.SetDisabled(v.Finished)
	}
	p.del.SetDisabled(v.Finished || v.Length == 0)
	p.ok.SetDisabled(v.Finished || !v.ConfirmEnabled)
}

func (p *PinPad) Controller() lock.Controller {
	return p.ctrl
}
