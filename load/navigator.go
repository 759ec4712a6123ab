// Copyright (c) 2024 The Flokicoin developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

package load

import (
	"github.com/rivo/tview"
)

const (
	mainPage  = "main"
	modalPage = "modal"
)

type Navigator struct {
	*tview.Application
	pages   *tview.Pages
	current tview.Primitive
}

func newNavigator(app *tview.Application, pages *tview.Pages) *Navigator {
	return &Navigator{
		Application: app,
		pages:       pages,
	}
}

func (n *Navigator) NavigateTo(p tview.Primitive) {
	n.CloseModal()
	n.current = p
	n.pages.AddAndSwitchToPage(mainPage, p, true)
	n.SetFocus(p)
}

func (n *Navigator) ShowModal(m tview.Primitive) {
	n.pages.AddPage(modalPage, m, true, true)
	n.SetFocus(m)
}

func (n *Navigator) CloseModal() {
	if !n.pages.HasPage(modalPage) {
		return
	}
	n.pages.RemovePage(modalPage)
	if n.current != nil {
		n.SetFocus(n.current)
	}
}
