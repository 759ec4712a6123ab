// Copyright (c) 2024 The Flokicoin developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

package pages

import (
	"fmt"
	"strings"
	"sync"

	"github.com/rivo/tview"

	. "github.com/flokiorg/tpinlock/shared"
)

const (
	startupLogWidth  = 72
	startupLogHeight = 8
)

// Splash is the startup screen. A status line tells what is being checked;
// the startup log only opens once something went wrong.
type Splash struct {
	*tview.Flex
	app    *tview.Application
	status *tview.TextView
	logs   *tview.TextView
	logRow *tview.Flex
	logBox *tview.Flex

	mu    sync.Mutex
	lines []string
}

func NewSplash(app *tview.Application) *Splash {
	s := &Splash{
		Flex: tview.NewFlex(),
		app:  app,
	}

	logo := tview.NewTextView().SetDynamicColors(true)
	fmt.Fprintf(logo, "[%s:-:b]%s[-:-:-]", AccentColor, strings.Trim(LOGO_TEXT, "\n"))

	welcome := tview.NewTextView().
		SetText(WELCOME_MESSAGE).
		SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter)

	s.status = tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter)

	s.logs = tview.NewTextView().SetDynamicColors(true)
	s.logs.SetBorder(true).
		SetBorderColor(AccentColor).
		SetTitle("[::b]Startup").
		SetTitleAlign(tview.AlignLeft)

	s.logBox = centered(s.logs, startupLogWidth)
	s.logRow = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(s.logBox, 0, 0, false)

	s.SetDirection(tview.FlexRow).
		AddItem(nil, 0, 1, false).
		AddItem(centered(logo, 38), 6, 0, false).
		AddItem(welcome, 2, 0, false).
		AddItem(s.status, 1, 0, false).
		AddItem(s.logRow, 0, 1, false)

	return s
}

func centered(p tview.Primitive, width int) *tview.Flex {
	return tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(p, width, 0, false).
		AddItem(nil, 0, 1, false)
}

// SetStatus replaces the status line. Safe to call from any goroutine.
func (s *Splash) SetStatus(text string) {
	s.app.QueueUpdateDraw(func() {
		s.status.SetText(fmt.Sprintf("[gray:-:-]%s", text))
	})
}

// Log appends a line to the startup log and opens it. Safe to call from any
// goroutine.
func (s *Splash) Log(text string) {
	s.mu.Lock()
	s.lines = append(s.lines, text)
	joined := strings.Join(s.lines, "\n")
	s.mu.Unlock()

	s.app.QueueUpdateDraw(func() {
		s.logRow.ResizeItem(s.logBox, startupLogHeight, 0)
		s.logs.SetText(joined)
		s.logs.ScrollToEnd()
	})
}
