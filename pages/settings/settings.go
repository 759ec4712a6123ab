// Copyright (c) 2024 The Flokicoin developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

package settings

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/flokiorg/tpinlock/components"
	"github.com/flokiorg/tpinlock/load"
	pinsettings "github.com/flokiorg/tpinlock/settings"
	"github.com/flokiorg/tpinlock/shared"
	"github.com/flokiorg/tpinlock/utils"
)

// Settings edits the pad settings. They apply to the screens built after a
// save.
type Settings struct {
	*tview.Flex
	load      *load.Load
	focusable []tview.Primitive
	focused   int

	placeholder *components.Toggle
	preview     *components.Toggle
	shuffle     *components.Toggle
	form        *tview.Form
}

func NewPage(l *load.Load) *Settings {
	p := &Settings{
		Flex: tview.NewFlex(),
		load: l,
	}

	current := l.Settings()

	p.placeholder = components.NewToggle("Placeholder circles", current.ShowPlaceholder, nil)
	p.preview = components.NewToggle("Preview circles", current.ShowPreview, nil)
	p.shuffle = components.NewToggle("Shuffle buttons", current.ShuffleButtons, nil)

	p.form = tview.NewForm()
	p.form.SetBorderPadding(1, 0, 0, 0).SetBackgroundColor(tcell.ColorDefault)
	p.form.AddInputField("Minimum length", strconv.Itoa(current.MinLength), 4, tview.InputFieldInteger, nil).
		AddInputField("Maximum length", strconv.Itoa(current.MaxLength), 4, tview.InputFieldInteger, nil).
		AddButton("Save", p.save).
		AddButton("Back", p.back)

	body := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(p.placeholder, 1, 0, true).
		AddItem(p.preview, 1, 0, false).
		AddItem(p.shuffle, 1, 0, false).
		AddItem(p.form, 0, 1, false)
	body.SetBorder(true).
		SetTitle(" ⚙ Settings ").
		SetTitleColor(shared.AccentColor).
		SetBorderColor(shared.AccentColor).
		SetBorderPadding(1, 0, 2, 2)

	help := tview.NewTextView().SetDynamicColors(true).SetTextAlign(tview.AlignCenter)
	fmt.Fprintf(help, "[%[1]s:-:b]<tab>[-:-:-] next  [%[1]s:-:b]<space>[-:-:-] toggle  [%[1]s:-:b]<esc>[-:-:-] back", shared.HotkeyColor)

	hFlex := tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(body, 50, 0, true).
		AddItem(nil, 0, 1, false)

	p.SetDirection(tview.FlexRow).
		AddItem(nil, 0, 1, false).
		AddItem(hFlex, 16, 0, true).
		AddItem(help, 1, 0, false).
		AddItem(nil, 0, 1, false)

	p.focusable = []tview.Primitive{p.placeholder, p.preview, p.shuffle, p.form}
	p.SetInputCapture(p.handleKeys)

	return p
}

func (p *Settings) handleKeys(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyESC:
		p.back()
		return nil
	case tcell.KeyTab:
		if p.focused == len(p.focusable)-1 {
			// the form cycles through its own items first
			if _, button := p.form.GetFocusedItemIndex(); button < p.form.GetButtonCount()-1 {
				return event
			}
		}
		p.focused = (p.focused + 1) % len(p.focusable)
		p.load.SetFocus(p.focusable[p.focused])
		return nil
	}
	return event
}

// Values reads the edited settings exactly as typed. A length that is not a
// number is an ErrConfiguration; an empty one reads as 0 and fails
// validation.
func (p *Settings) Values() (pinsettings.Settings, error) {
	minLen, err := p.length(0, "minLength")
	if err != nil {
		return pinsettings.Settings{}, err
	}
	maxLen, err := p.length(1, "maxLength")
	if err != nil {
		return pinsettings.Settings{}, err
	}

	return pinsettings.Settings{
		ShowPlaceholder: p.placeholder.IsOn(),
		ShowPreview:     p.preview.IsOn(),
		MinLength:       minLen,
		MaxLength:       maxLen,
		ShuffleButtons:  p.shuffle.IsOn(),
	}, nil
}

func (p *Settings) length(item int, name string) (int, error) {
	text := p.form.GetFormItem(item).(*tview.InputField).GetText()
	v, err := utils.ParseIntWithDefault(text, 0)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not a number", pinsettings.ErrConfiguration, name, text)
	}
	return v, nil
}

func (p *Settings) save() {
	s, err := p.Values()
	if err == nil {
		err = p.load.ApplySettings(context.Background(), s)
	}
	switch {
	case errors.Is(err, pinsettings.ErrConfiguration):
		p.load.Notif.ShowToastWithTimeout(fmt.Sprintf("[red:-:-]Error:[-:-:-] %s", err.Error()), time.Second*10)
	case err != nil:
		p.load.Notif.ShowToastWithTimeout(fmt.Sprintf("[red:-:-]Error:[-:-:-] %s", utils.FormatBootError(err)), time.Second*30)
	default:
		p.load.Notif.ShowToastWithTimeout("⚙ Settings saved", time.Second*3)
		p.load.Go(shared.UNLOCKED)
	}
}

func (p *Settings) back() {
	p.load.Go(shared.UNLOCKED)
}
